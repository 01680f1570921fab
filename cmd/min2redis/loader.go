package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	goccyjson "github.com/goccy/go-json"
	"github.com/pierrec/lz4/v4"
	"github.com/redis/go-redis/v9"

	"github.com/emdf-go/emdf/recfmt"
	"github.com/emdf-go/emdf/store"
)

type loadOptions struct {
	Host   string
	Port   int
	Date   string
	Path   string
	UseLZ4 bool
}

type loadStats struct {
	Instruments int
	Records     int
	Skipped     int
}

type minuteRow struct {
	Time   uint32 `json:"time"`
	Open   uint32 `json:"open"`
	High   uint32 `json:"high"`
	Low    uint32 `json:"low"`
	Close  uint32 `json:"close"`
	Volume int64  `json:"volume"`
	Amount int64  `json:"amount"`
}

func dayToRow(d recfmt.Day) minuteRow {
	return minuteRow{
		Time:   d.Time,
		Open:   d.Open,
		High:   d.High,
		Low:    d.Low,
		Close:  d.Close,
		Volume: d.Volume,
		Amount: d.Amount,
	}
}

// dateMatches reports whether a Day.Time value (YYYYMMDD or a longer
// timestamp sharing that 8-digit date prefix) falls on date.
func dateMatches(recordTime uint32, date string) bool {
	s := strconv.FormatUint(uint64(recordTime), 10)
	if len(s) < 8 {
		return false
	}
	return s[:8] == date
}

func compressPayload(data []byte, useLZ4 bool) ([]byte, error) {
	if !useLZ4 {
		return data, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	var c lz4.Compressor
	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 {
		// incompressible input: lz4 signals this by returning n == 0
		return data, nil
	}
	return dst[:n], nil
}

func run(ctx context.Context, opts loadOptions) (loadStats, error) {
	s, err := store.Open[recfmt.Day](opts.Path)
	if err != nil {
		return loadStats{}, err
	}
	defer s.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", opts.Host, opts.Port),
	})
	defer rdb.Close()

	var stats loadStats

	for id, recs := range s.Items() {
		var rows []minuteRow
		for rec, err := range recs {
			if err != nil {
				return stats, fmt.Errorf("instrument %d: %w", id, err)
			}
			if !dateMatches(rec.Time, opts.Date) {
				continue
			}
			rows = append(rows, dayToRow(rec))
		}
		if len(rows) == 0 {
			continue
		}

		payload, err := goccyjson.Marshal(rows)
		if err != nil {
			return stats, fmt.Errorf("instrument %d: encode: %w", id, err)
		}

		sum := xxhash.Sum64(payload)
		key := fmt.Sprintf("min1:%07d", id)
		sumKey := key + ":sum"

		prevSum, err := rdb.Get(ctx, sumKey).Result()
		if err == nil {
			if parsed, perr := strconv.ParseUint(prevSum, 16, 64); perr == nil && parsed == sum {
				stats.Skipped++
				continue
			}
		}

		stored, err := compressPayload(payload, opts.UseLZ4)
		if err != nil {
			return stats, fmt.Errorf("instrument %d: %w", id, err)
		}

		if err := rdb.Set(ctx, key, stored, 0).Err(); err != nil {
			return stats, fmt.Errorf("instrument %d: redis set: %w", id, err)
		}
		if err := rdb.Set(ctx, sumKey, strconv.FormatUint(sum, 16), 0).Err(); err != nil {
			return stats, fmt.Errorf("instrument %d: redis set sum: %w", id, err)
		}

		stats.Instruments++
		stats.Records += len(rows)
	}

	return stats, nil
}
