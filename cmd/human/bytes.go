package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-human/bytesize"
)

var bytesCmd = &cobra.Command{
	Use:   "bytes <literal>",
	Short: "Parse a byte-size literal and print the byte count",
	Example: "  human bytes '64 KiB'\n" +
		"  human bytes 10GB",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bytesize.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[0], err)
		}
		report(cmd, "bytes", strconv.FormatUint(uint64(b), 10))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bytesCmd)
}
