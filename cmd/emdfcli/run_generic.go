package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/recfmt"
	"github.com/emdf-go/emdf/store"
)

func idsGeneric[R recfmt.Record](path string) error {
	s, err := store.Open[R](path)
	if err != nil {
		return err
	}
	defer s.Close()

	for id := range s.Ids() {
		fmt.Println(id)
	}
	return nil
}

func printSummary(rec recfmt.Record) {
	fields := recfmt.BriefFields(rec.Kind())
	summary := rec.Summary()
	label := color.New(color.FgCyan).SprintFunc()
	for _, f := range fields {
		fmt.Printf("%s=%v ", label(f), summary[f])
	}
	fmt.Println()
}

func showGeneric[R recfmt.Record](path string, id uint32, all bool) error {
	s, err := store.Open[R](path)
	if err != nil {
		return err
	}
	defer s.Close()

	if all {
		for iid, recs := range s.Items() {
			fmt.Println(color.GreenString("instrument %d", iid))
			for rec, err := range recs {
				if err != nil {
					return err
				}
				printSummary(rec)
			}
		}
		return nil
	}

	for rec, err := range s.Get(id) {
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return fmt.Errorf("instrument %d not found", id)
			}
			return err
		}
		printSummary(rec)
	}
	return nil
}

func exportGeneric[R recfmt.Record](path, format string, w io.Writer) error {
	s, err := store.Open[R](path)
	if err != nil {
		return err
	}
	defer s.Close()

	var ids []uint32
	for id := range s.Ids() {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	switch format {
	case "json":
		return exportJSON(s, ids, w)
	case "csv":
		return exportCSV(s, ids, w)
	default:
		return fmt.Errorf("unknown export format %q (want json|csv)", format)
	}
}

func createGeneric[R recfmt.Record](path string, version int) error {
	s, err := store.Create[R](path, version)
	if err != nil {
		return err
	}
	return s.Close()
}
