package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colf",
	Short: "COLF columnar file tool",
	Long: `colf packs CSV tables into COLF columnar files, unpacks them back to
CSV, and inspects their schema and compression statistics.

COLF stores each column as an independently compressed block with an
indexed offset, so readers can fetch a subset of columns without
touching the rest of the file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
