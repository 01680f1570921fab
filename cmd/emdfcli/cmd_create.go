package main

import (
	"github.com/spf13/cobra"

	"github.com/emdf-go/emdf/recfmt"
)

func newCreateCmd() *cobra.Command {
	var version int

	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Create a new, empty EM_DataFile store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := recKind(kindFlag)
			if err != nil {
				return err
			}

			switch kind {
			case recfmt.KindDay:
				return createGeneric[recfmt.Day](args[0], version)
			case recfmt.KindMinute:
				return createGeneric[recfmt.Minute](args[0], version)
			case recfmt.KindHisMin:
				return createGeneric[recfmt.HisMin](args[0], version)
			case recfmt.KindBargain:
				return createGeneric[recfmt.Bargain](args[0], version)
			default:
				return nil
			}
		},
	}

	cmd.Flags().IntVar(&version, "version", 1, "format version: 1 (8192-byte blocks) or 2 (65536-byte blocks)")

	return cmd
}
