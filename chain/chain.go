// Package chain walks an instrument's singly-linked block chain and yields
// each block's raw payload bytes.
package chain

import (
	"fmt"
	"iter"

	"github.com/emdf-go/emdf/blockio"
	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/header"
	"github.com/emdf-go/emdf/internal/pool"
)

// Walk returns a lazy sequence of raw payload byte ranges for one
// instrument's block chain, one range per chain block, totaling
// entry.DataNum * recordSize bytes in the common case.
//
// Each yielded slice is only valid until the next call to the iterator's
// yield function; callers that need to retain a range across iterations
// must copy it.
func Walk(r blockio.Reader, entry header.InstrumentEntry, blockSize, recordSize int, fileSize int64) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if entry.DataNum == 0 {
			return
		}

		recordsPerBlock := (blockSize - 4) / recordSize
		if recordsPerBlock <= 0 {
			yield(nil, fmt.Errorf("%w: block size %d too small for record size %d", errs.ErrFormat, blockSize, recordSize))
			return
		}

		totalBlocks := int((entry.DataNum + uint32(recordsPerBlock) - 1) / uint32(recordsPerBlock))
		currentBlock := entry.BlockFirst

		buf := pool.GetBlockBuffer()
		defer pool.PutBlockBuffer(buf)

		for i := 0; i < totalBlocks; i++ {
			offset := int64(currentBlock) * int64(blockSize)
			if offset >= fileSize {
				return
			}

			var nextIDBytes [4]byte
			if err := r.ReadFullAt(nextIDBytes[:], offset); err != nil {
				yield(nil, err)
				return
			}
			nextID := uint32(nextIDBytes[0]) | uint32(nextIDBytes[1])<<8 | uint32(nextIDBytes[2])<<16 | uint32(nextIDBytes[3])<<24

			// The sentinel only matters when the chain must continue: the
			// last expected block's next id is never followed.
			if i < totalBlocks-1 && nextID > entry.BlockLast {
				return
			}

			var payloadBytes int
			if i == totalBlocks-1 {
				payloadBytes = int(entry.DataNum%uint32(recordsPerBlock)) * recordSize
				if payloadBytes == 0 {
					payloadBytes = recordsPerBlock * recordSize
				}
			} else {
				payloadBytes = recordsPerBlock * recordSize
			}

			buf.Reset()
			buf.Grow(payloadBytes)
			buf.SetLength(payloadBytes)
			if err := r.ReadFullAt(buf.Bytes(), offset+4); err != nil {
				yield(nil, err)
				return
			}

			if !yield(buf.Bytes(), nil) {
				return
			}

			currentBlock = nextID
		}
	}
}
