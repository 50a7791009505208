package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-human/flagval"
	"github.com/ngrash/go-human/rfc3339"
)

var sinceFlag flagval.Time

var timeCmd = &cobra.Command{
	Use:   "time <literal>",
	Short: "Parse an RFC3339 timestamp and print its Unix time",
	Example: "  human time 2006-01-02T15:04:05+08:00\n" +
		"  human time --since 2024-01-01T00:00:00Z 2024-06-01T00:00:00Z",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := rfc3339.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[0], err)
		}

		if cmd.Flags().Changed("since") {
			e, ok := t.Since(sinceFlag.Time)
			if !ok {
				return fmt.Errorf("%q is before %q", args[0], sinceFlag.String())
			}
			report(cmd, "elapsed", formatElapsed(e))
			return nil
		}

		e, ok := t.SinceEpoch()
		if !ok {
			return fmt.Errorf("%q predates the Unix epoch", args[0])
		}
		report(cmd, "unix", formatElapsed(e))
		return nil
	},
}

func formatElapsed(e rfc3339.Elapsed) string {
	return fmt.Sprintf("%d.%09d", e.Seconds, e.Nanos)
}

func init() {
	timeCmd.Flags().Var(&sinceFlag, "since", "earlier RFC3339 timestamp to measure from instead of the Unix epoch")
	rootCmd.AddCommand(timeCmd)
}
