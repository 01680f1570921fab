package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emdf-go/emdf/recfmt"
)

func newExportCmd() *cobra.Command {
	var format, compress, out string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export every instrument's records to JSON or CSV.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := recKind(kindFlag)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			sink, closeSink, err := wrapCompress(w, compress)
			if err != nil {
				return err
			}
			defer closeSink()

			switch kind {
			case recfmt.KindDay:
				return exportGeneric[recfmt.Day](args[0], format, sink)
			case recfmt.KindMinute:
				return exportGeneric[recfmt.Minute](args[0], format, sink)
			case recfmt.KindHisMin:
				return exportGeneric[recfmt.HisMin](args[0], format, sink)
			case recfmt.KindBargain:
				return exportGeneric[recfmt.Bargain](args[0], format, sink)
			default:
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "export format: json|csv")
	cmd.Flags().StringVar(&compress, "compress", "none", "output compression: none|gzip|zstd")
	cmd.Flags().StringVar(&out, "out", "", "output file path (default: stdout)")

	return cmd
}
