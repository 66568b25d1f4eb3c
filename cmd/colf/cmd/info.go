package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/colf/file"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <input.colf>",
	Short: "Show a COLF file's schema and compression statistics",
	Long: `Info prints the file's row count and, for each column, its type, block
offset and compressed versus uncompressed sizes. Only the header and
metadata table are read; no column data is decompressed.

Example:
  colf info people.colf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := file.OpenFile(args[0])
		if err != nil {
			return err
		}
		defer r.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "columns: %d\nrows:    %d\n\n", r.ColumnCount(), r.RowCount())

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTYPE\tOFFSET\tCOMPRESSED\tUNCOMPRESSED\tRATIO")

		for _, meta := range r.ColumnMetas() {
			ratio := 0.0
			if meta.UncompressedSize > 0 {
				ratio = float64(meta.CompressedSize) / float64(meta.UncompressedSize)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.2f\n",
				meta.Name, meta.Type, meta.Offset, meta.CompressedSize, meta.UncompressedSize, ratio)
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
