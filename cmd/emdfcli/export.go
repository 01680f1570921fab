package main

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	goccyjson "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"

	"github.com/emdf-go/emdf/recfmt"
	"github.com/emdf-go/emdf/store"
)

// wrapCompress wraps w in the named compressor, returning a writer to use
// in its place and a close func that must run before w is considered done.
func wrapCompress(w io.Writer, compress string) (io.Writer, func() error, error) {
	switch compress {
	case "", "none":
		return w, func() error { return nil }, nil
	case "gzip":
		gz := gzip.NewWriter(w)
		return gz, gz.Close, nil
	case "zstd":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, enc.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression %q (want none|gzip|zstd)", compress)
	}
}

type instrumentExport struct {
	ID      uint32           `json:"id"`
	Records []map[string]any `json:"records"`
}

func exportJSON[R recfmt.Record](s *store.Store[R], ids []uint32, w io.Writer) error {
	enc := goccyjson.NewEncoder(w)

	all := make([]instrumentExport, 0, len(ids))
	for _, id := range ids {
		entry := instrumentExport{ID: id}
		for rec, err := range s.Get(id) {
			if err != nil {
				return err
			}
			entry.Records = append(entry.Records, rec.Summary())
		}
		all = append(all, entry)
	}

	return enc.Encode(all)
}

func exportCSV[R recfmt.Record](s *store.Store[R], ids []uint32, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	var fields []string
	wrote := false

	for _, id := range ids {
		for rec, err := range s.Get(id) {
			if err != nil {
				return err
			}
			if fields == nil {
				fields = recfmt.BriefFields(rec.Kind())
				header := append([]string{"id"}, fields...)
				if err := cw.Write(header); err != nil {
					return err
				}
			}
			summary := rec.Summary()
			row := make([]string, 0, len(fields)+1)
			row = append(row, strconv.FormatUint(uint64(id), 10))
			for _, f := range fields {
				row = append(row, fmt.Sprintf("%v", summary[f]))
			}
			if err := cw.Write(row); err != nil {
				return err
			}
			wrote = true
		}
	}

	if !wrote {
		return cw.Write([]string{"id"})
	}
	return nil
}
