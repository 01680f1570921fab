package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emdf-go/emdf/recfmt"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file> [id]",
		Short: "Print the brief-field summary for one instrument, or all of them.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := recKind(kindFlag)
			if err != nil {
				return err
			}

			var id uint64
			all := true
			if len(args) == 2 {
				all = false
				id, err = strconv.ParseUint(args[1], 10, 32)
				if err != nil {
					return err
				}
			}

			switch kind {
			case recfmt.KindDay:
				return showGeneric[recfmt.Day](args[0], uint32(id), all)
			case recfmt.KindMinute:
				return showGeneric[recfmt.Minute](args[0], uint32(id), all)
			case recfmt.KindHisMin:
				return showGeneric[recfmt.HisMin](args[0], uint32(id), all)
			case recfmt.KindBargain:
				return showGeneric[recfmt.Bargain](args[0], uint32(id), all)
			default:
				return nil
			}
		},
	}
}
