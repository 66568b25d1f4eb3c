package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/colf/file"
	"github.com/arloliu/colf/format"
	"github.com/arloliu/colf/internal/csvio"
)

var (
	unpackColumns []string
	unpackOutput  string
)

// unpackCmd represents the unpack command
var unpackCmd = &cobra.Command{
	Use:   "unpack <input.colf>",
	Short: "Unpack a COLF file back to CSV",
	Long: `Unpack decodes a COLF file and renders it as CSV on stdout or to a file.

With --columns only the named columns are read from disk; the blocks of
all other columns are skipped entirely.

Example:
  colf unpack people.colf --columns name,score -o subset.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := file.OpenFile(args[0])
		if err != nil {
			return err
		}
		defer r.Close()

		var cols []format.Column
		if len(unpackColumns) > 0 {
			byName, err := r.ReadColumns(unpackColumns...)
			if err != nil {
				return err
			}
			for _, name := range unpackColumns {
				cols = append(cols, byName[name])
			}
		} else {
			cols, err = r.ReadAll()
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if unpackOutput != "" {
			f, err := os.Create(unpackOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return csvio.Write(out, cols)
	},
}

func init() {
	unpackCmd.Flags().StringSliceVarP(&unpackColumns, "columns", "c", nil, "Comma-separated column names to read (default all)")
	unpackCmd.Flags().StringVarP(&unpackOutput, "output", "o", "", "Output CSV path (default stdout)")
	rootCmd.AddCommand(unpackCmd)
}
