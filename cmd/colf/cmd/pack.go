package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/colf/file"
	"github.com/arloliu/colf/internal/csvio"
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack <input.csv> <output.colf>",
	Short: "Pack a CSV table into a COLF file",
	Long: `Pack reads a CSV table with a header row and writes it as a COLF file.

Column types are inferred per column: Int32 when every value is a 32-bit
integer, Float64 when every value is numeric, String otherwise.

Example:
  colf pack people.csv people.colf`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		cols, err := csvio.Read(in)
		if err != nil {
			return err
		}

		w := file.NewWriter()
		if err := w.AddColumns(cols...); err != nil {
			return err
		}

		if err := w.WriteFile(args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "packed %d columns, %d rows into %s\n",
			len(cols), w.RowCount(), args[1])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
}
