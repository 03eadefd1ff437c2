package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long:  "Parse the config file and run structural validation without sending anything.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	o := newOrchestrator(cmd)
	if err := o.RequireNormal("validate"); err != nil {
		return err
	}

	path, err := o.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := o.LoadConfig(); err != nil {
		return err
	}

	fmt.Printf("%s: ok\n", path)
	return nil
}
