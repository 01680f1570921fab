// Package store is the top-level facade: open or create an EM_DataFile,
// look up instruments, and iterate their decoded record streams.
package store

import (
	"fmt"
	"iter"

	"github.com/emdf-go/emdf/blockio"
	"github.com/emdf-go/emdf/chain"
	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/header"
	"github.com/emdf-go/emdf/recfmt"
	"github.com/emdf-go/emdf/recstream"
)

// Store is a read/write handle onto one EM_DataFile, parameterized over
// the record kind it stores. Go has no duck typing, so the record kind is
// fixed at the type-parameter level rather than discovered at runtime:
// every instrument in a given file is assumed to share the same kind,
// matching how the original format is actually used (one file per record
// kind — a day-bar file, a minute-bar file, and so on).
type Store[R recfmt.Record] struct {
	file       *blockio.File
	head       *header.Header
	index      map[uint32]int
	orderedIDs []uint32
	blockSize  int
	recordSize int
	fileSize   int64
}

// Open opens an existing EM_DataFile at path for reading (and, for writer
// operations, writing) records of kind R.
func Open[R recfmt.Record](path string) (*Store[R], error) {
	f, err := blockio.Open(path)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, header.Size)
	if err := f.ReadFullAt(buf, 0); err != nil {
		f.Close()
		return nil, err
	}

	h, err := header.Parse(buf)
	if err != nil {
		f.Close()
		return nil, err
	}

	blockSize, _, ok := header.BlockSizeFor([]byte(h.Info.Magic))
	if !ok {
		f.Close()
		return nil, fmt.Errorf("%w: unrecognized magic %q", errs.ErrFormat, h.Info.Magic)
	}

	size, err := f.Size()
	if err != nil {
		f.Close()
		return nil, err
	}

	var zero R
	s := &Store[R]{
		file:       f,
		head:       h,
		index:      h.Index(),
		blockSize:  blockSize,
		recordSize: recfmt.SizeOf(zero.Kind()),
		fileSize:   size,
	}
	s.buildOrderedIDs()

	return s, nil
}

// Create writes a new EM_DataFile at path with an all-zero header except
// for the magic corresponding to version, then opens it.
func Create[R recfmt.Record](path string, version int) (*Store[R], error) {
	f, err := blockio.Open(path)
	if err != nil {
		return nil, err
	}

	h := header.New(version)
	if err := f.WriteAt(h.Bytes(), 0); err != nil {
		f.Close()
		return nil, err
	}
	f.Close()

	return Open[R](path)
}

func (s *Store[R]) buildOrderedIDs() {
	n := int(s.head.Info.GoodsNum)
	if n > len(s.head.Instruments) {
		n = len(s.head.Instruments)
	}
	s.orderedIDs = make([]uint32, 0, len(s.index))
	for i := 0; i < n; i++ {
		if gid := s.head.Instruments[i].GoodsID; gid > 0 {
			s.orderedIDs = append(s.orderedIDs, gid)
		}
	}
}

// Close releases the store's underlying file handle.
func (s *Store[R]) Close() error {
	return s.file.Close()
}

// Len returns the number of instruments in the store.
func (s *Store[R]) Len() int {
	return len(s.index)
}

// Contains reports whether id is present in the instrument table.
func (s *Store[R]) Contains(id uint32) bool {
	_, ok := s.index[id]
	return ok
}

// Ids yields every instrument id in table insertion order.
func (s *Store[R]) Ids() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, id := range s.orderedIDs {
			if !yield(id) {
				return
			}
		}
	}
}

// Get returns the lazy, decoded record sequence for id. It fails with
// ErrNotFound if id is absent from the instrument table.
func (s *Store[R]) Get(id uint32) iter.Seq2[R, error] {
	idx, ok := s.index[id]
	if !ok {
		return func(yield func(R, error) bool) {
			var zero R
			yield(zero, fmt.Errorf("%w: instrument %d", errs.ErrNotFound, id))
		}
	}

	entry := s.head.Instruments[idx]
	ranges := chain.Walk(s.file, entry, s.blockSize, s.recordSize, s.fileSize)

	var zero R
	decode := recfmt.DecodeFunc(zero.Kind())

	return func(yield func(R, error) bool) {
		for rec, err := range recstream.Decode(ranges, s.recordSize, func(b []byte) (R, error) {
			r, err := decode(b)
			if err != nil {
				var zero R
				return zero, err
			}
			return r.(R), nil
		}) {
			if !yield(rec, err) {
				return
			}
		}
	}
}

// Items yields (id, record-sequence) pairs for every instrument in table
// insertion order.
func (s *Store[R]) Items() iter.Seq2[uint32, iter.Seq2[R, error]] {
	return func(yield func(uint32, iter.Seq2[R, error]) bool) {
		for _, id := range s.orderedIDs {
			if !yield(id, s.Get(id)) {
				return
			}
		}
	}
}

// Append adds records to the end of id's chain. Writer semantics (block
// allocation from the free list, blocks_total/blocks_use bookkeeping) are
// undefined in the source format this module was built from, so this
// operation is declared but not implemented.
func (s *Store[R]) Append(id uint32, records []R) error {
	return errs.ErrNotImplemented
}

// Set replaces id's entire record sequence. See Append for why this is
// unimplemented.
func (s *Store[R]) Set(id uint32, records []R) error {
	return errs.ErrNotImplemented
}
