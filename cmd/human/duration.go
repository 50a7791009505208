package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-human/duration"
)

var durationCmd = &cobra.Command{
	Use:   "duration <literal>",
	Short: "Parse a duration literal and print the nanosecond count",
	Example: "  human duration 1h30m\n" +
		"  human duration '1d 12h'",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := duration.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[0], err)
		}
		report(cmd, "nanoseconds", strconv.FormatInt(d.Nanoseconds(), 10))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(durationCmd)
}
