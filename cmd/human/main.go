// Command human parses human-written literals and prints their exact
// typed values. It is a thin front end over the bytesize, duration and
// rfc3339 packages, mainly useful for checking what a config value or
// flag literal will mean to a program using them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "human",
	Short: "Parse human-written literals into exact typed values",
	Long: "human converts byte-size, duration and RFC3339 timestamp literals\n" +
		"into the exact values a program would see, or explains why a literal\n" +
		"is rejected.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .human.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "print bare values without labels")
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".human")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("HUMAN")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// report prints a parsed value, honoring the quiet setting.
func report(cmd *cobra.Command, label, value string) {
	if viper.GetBool("quiet") {
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", label, value)
}
