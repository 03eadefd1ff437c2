package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slafling/slafling/internal/cmdutil"
	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/slack"
	"github.com/slafling/slafling/internal/ui"
)

var (
	searchOutput string
	searchTypes  string
)

func init() {
	searchCmd.Flags().StringVarP(&searchOutput, "output", "o", "", "Output format (table, tsv, json)")
	searchCmd.Flags().StringVar(&searchTypes, "types", "", "Comma-separated conversation types (public_channel, private_channel, im, mpim)")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search channels by name",
	Long: `Search channels whose name contains the query.

Examples:
  slafling search general
  slafling search dev --types public_channel,private_channel -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	o := newOrchestrator(cmd)
	if o.Mode() == config.ModeHeadless && profileRequested(cmd) {
		ui.Warning("--profile is ignored in headless mode")
	}

	rc, err := o.ResolveSearch(profileFlag(cmd))
	if err != nil {
		return err
	}

	types, err := resolveSearchTypes(rc.Settings)
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(rc.Settings)
	if err != nil {
		return err
	}

	client := newClient(rc.Token)
	channels, err := client.SearchChannels(cmd.Context(), query, types)
	if err != nil {
		return err
	}
	if len(channels) == 0 {
		return fmt.Errorf("no channels matching '%s'", query)
	}

	switch format {
	case config.OutputJSON:
		return cmdutil.OutputJSON(os.Stdout, channels)
	case config.OutputTSV:
		return cmdutil.OutputTSV(os.Stdout, channelRows(channels))
	default:
		return renderChannelTable(channels)
	}
}

// resolveSearchTypes の優先順: --types > 設定/環境 > public_channel
func resolveSearchTypes(settings *config.Settings) ([]string, error) {
	if searchTypes != "" {
		var types []string
		for _, t := range strings.Split(searchTypes, ",") {
			t = strings.ToLower(strings.TrimSpace(t))
			if t != "" {
				types = append(types, t)
			}
		}
		if err := config.ValidateSearchTypes(types); err != nil {
			return nil, err
		}
		return types, nil
	}
	if settings.SearchTypes != nil {
		return settings.SearchTypes, nil
	}
	return []string{"public_channel"}, nil
}

// resolveOutputFormat の優先順: -o > 設定/環境 > TTY自動判定
// （端末なら table、パイプなら tsv）
func resolveOutputFormat(settings *config.Settings) (string, error) {
	if searchOutput != "" {
		if err := config.ValidateOutput(searchOutput); err != nil {
			return "", err
		}
		return strings.ToLower(searchOutput), nil
	}
	if settings.Output != "" {
		return settings.Output, nil
	}
	if cmdutil.StdoutIsTerminal() {
		return config.OutputTable, nil
	}
	return config.OutputTSV, nil
}

func channelRows(channels []slack.ChannelInfo) [][]string {
	rows := make([][]string, 0, len(channels))
	for _, ch := range channels {
		rows = append(rows, []string{ch.Name, ch.ChannelType, ch.ChannelID, ch.UserID})
	}
	return rows
}

func renderChannelTable(channels []slack.ChannelInfo) error {
	hasUserID := false
	for _, ch := range channels {
		if ch.UserID != "" {
			hasUserID = true
			break
		}
	}

	var table *ui.Table
	if hasUserID {
		table = ui.NewTable("NAME", "TYPE", "CHANNEL_ID", "USER_ID")
		for _, ch := range channels {
			table.AddRow(ch.Name, ch.ChannelType, ch.ChannelID, ch.UserID)
		}
	} else {
		table = ui.NewTable("NAME", "TYPE", "CHANNEL_ID")
		for _, ch := range channels {
			table.AddRow(ch.Name, ch.ChannelType, ch.ChannelID)
		}
	}
	table.Render(os.Stdout)
	return nil
}
