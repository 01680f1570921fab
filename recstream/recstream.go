// Package recstream splices the block-chain walker's raw byte ranges into
// an aligned sequence of fixed-size records, carrying any partial record
// that straddles a block boundary into the next range.
package recstream

import (
	"fmt"
	"iter"

	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/internal/pool"
)

// Decode consumes ranges (as produced by chain.Walk) and yields decoded
// records of type T, splicing records that straddle a block boundary
// using a carry buffer.
//
// If ranges yields an error, it is forwarded and iteration stops. If the
// carry buffer is non-empty once ranges is exhausted, ErrCorruptChain is
// yielded as the final value.
func Decode[T any](ranges iter.Seq2[[]byte, error], recordSize int, decode func([]byte) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		carry := pool.GetCarryBuffer()
		defer pool.PutCarryBuffer(carry)

		var zero T

		for block, err := range ranges {
			if err != nil {
				yield(zero, err)
				return
			}

			start := 0
			if carry.Len() > 0 {
				need := recordSize - carry.Len()
				if need > len(block) {
					carry.MustWrite(block)
					continue
				}

				carry.MustWrite(block[:need])
				rec, err := decode(carry.Bytes())
				carry.Reset()
				if err != nil {
					yield(zero, err)
					return
				}
				if !yield(rec, nil) {
					return
				}
				start = need
			}

			for start+recordSize <= len(block) {
				rec, err := decode(block[start : start+recordSize])
				if err != nil {
					yield(zero, err)
					return
				}
				if !yield(rec, nil) {
					return
				}
				start += recordSize
			}

			if start < len(block) {
				carry.MustWrite(block[start:])
			}
		}

		if carry.Len() > 0 {
			yield(zero, fmt.Errorf("%w: %d leftover bytes at end of stream", errs.ErrCorruptChain, carry.Len()))
		}
	}
}
