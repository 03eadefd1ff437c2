package cmdutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputJSON outputs data as pretty-printed JSON.
func OutputJSON(w io.Writer, data any) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, jsonBytes, "", "  "); err != nil {
		return fmt.Errorf("failed to indent JSON: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

// OutputTSV outputs rows as tab-separated values.
func OutputTSV(w io.Writer, rows [][]string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// StdoutIsTerminal は標準出力が端末かどうかを返す
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StdinIsTerminal は標準入力が端末かどうかを返す
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
