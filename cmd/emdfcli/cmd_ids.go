package main

import (
	"github.com/spf13/cobra"

	"github.com/emdf-go/emdf/recfmt"
)

func newIdsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ids <file>",
		Short: "List every instrument id in the store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := recKind(kindFlag)
			if err != nil {
				return err
			}

			switch kind {
			case recfmt.KindDay:
				return idsGeneric[recfmt.Day](args[0])
			case recfmt.KindMinute:
				return idsGeneric[recfmt.Minute](args[0])
			case recfmt.KindHisMin:
				return idsGeneric[recfmt.HisMin](args[0])
			case recfmt.KindBargain:
				return idsGeneric[recfmt.Bargain](args[0])
			default:
				return nil
			}
		},
	}
}
