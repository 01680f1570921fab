package main

import (
	"fmt"

	"github.com/emdf-go/emdf/recfmt"
)

// recKind resolves the --kind flag value to the recfmt.Kind it names.
func recKind(name string) (recfmt.Kind, error) {
	switch name {
	case "day":
		return recfmt.KindDay, nil
	case "minute":
		return recfmt.KindMinute, nil
	case "hismin":
		return recfmt.KindHisMin, nil
	case "bargain":
		return recfmt.KindBargain, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q (want day|minute|hismin|bargain)", name)
	}
}
