// Package header parses and serializes the fixed-size EM_DataFile header:
// a 256-byte info segment followed by a fixed-length instrument table.
package header

import (
	"bytes"
	"fmt"

	"github.com/emdf-go/emdf/endian"
	"github.com/emdf-go/emdf/errs"
)

const (
	// MaxInstruments is the maximum number of instrument table entries a
	// header can hold (DF_MAX_GOODSUM in the original format).
	MaxInstruments = 21840

	// BlockGrowBy is the original format's block-chain growth quantum: how
	// many blocks a writer allocates at a time when a chain runs out of
	// room. No writer in this module currently consumes it; it is kept so
	// a future writer doesn't have to rediscover the constant.
	BlockGrowBy = 64

	// InfoSize is the fixed size in bytes of the info segment.
	InfoSize = 32 + 4*4 + 208

	// InstrumentEntrySize is the fixed size in bytes of one instrument
	// table entry.
	InstrumentEntrySize = 6*4 + CodeLen

	// CodeLen is the fixed size of an instrument's code field.
	CodeLen = 24

	// MagicV1 identifies an 8192-byte-block (version 1) file.
	MagicV1 = "EM_DataFile"

	// MagicV2 identifies a 65536-byte-block (version 2) file.
	MagicV2 = "EM_DataFile2"

	// BlockSizeV1 is the block size of a version 1 file.
	BlockSizeV1 = 8192

	// BlockSizeV2 is the block size of a version 2 file.
	BlockSizeV2 = 65536
)

// Size is the total fixed size in bytes of the header: the info segment
// plus MaxInstruments instrument entries.
const Size = InfoSize + InstrumentEntrySize*MaxInstruments

// Info is the 256-byte segment at the start of a header.
type Info struct {
	// Magic is the file's type tag: MagicV1 or MagicV2, NUL-padded to 32
	// bytes on the wire.
	Magic string
	// Version is the format's internal version counter, distinct from the
	// v1/v2 block-size variant implied by Magic.
	Version uint32
	// BlocksTotal is the number of blocks currently allocated in the file.
	BlocksTotal uint32
	// BlocksUse is the number of blocks currently in use by some
	// instrument's chain.
	BlocksUse uint32
	// GoodsNum is the number of populated entries in the instrument table;
	// it may legitimately exceed the number of non-zero GoodsID entries.
	GoodsNum uint32
}

// InstrumentEntry is one 48-byte row of the instrument table.
type InstrumentEntry struct {
	// GoodsID is the instrument's numeric identifier. A GoodsID of 0 marks
	// an unused table slot and is skipped when building an id index.
	GoodsID uint32
	// DataNum is the total number of records stored for this instrument.
	DataNum uint32
	// BlockFirst is the id of the first block in this instrument's chain.
	BlockFirst uint32
	// BlockData is the id of the block currently being appended to.
	BlockData uint32
	// BlockLast is the id of the last block allocated to this instrument;
	// a next_block_id greater than BlockLast marks end-of-chain.
	BlockLast uint32
	// DataLastIdx is the index of the last record within the last block.
	DataLastIdx uint32
	// Code is the instrument's ticker code, NUL-padded to CodeLen bytes.
	Code string
}

// Header is the parsed header of an EM_DataFile: the info segment plus
// MaxInstruments instrument table entries (including unused, zero-GoodsID
// slots).
type Header struct {
	Info        Info
	Instruments [MaxInstruments]InstrumentEntry
}

// New returns a zero-valued Header with its magic set for the given
// version (1 or 2); version 2 files use a 65536-byte block size.
func New(version int) *Header {
	h := &Header{}
	if version == 2 {
		h.Info.Magic = MagicV2
	} else {
		h.Info.Magic = MagicV1
	}

	return h
}

// BlockSizeFor inspects the first bytes of a magic-bearing info segment and
// returns the block size and version it implies. ok is false if magic
// matches neither MagicV1 nor MagicV2.
func BlockSizeFor(magic []byte) (blockSize int, version int, ok bool) {
	trimmed := bytes.TrimRight(magic, "\x00")
	switch {
	case bytes.Equal(trimmed, []byte(MagicV2)):
		return BlockSizeV2, 2, true
	case bytes.Equal(trimmed, []byte(MagicV1)):
		return BlockSizeV1, 1, true
	default:
		return 0, 0, false
	}
}

// Parse decodes a Size-byte slice into a Header. It validates the magic
// and that GoodsNum does not exceed MaxInstruments; it does not validate
// individual instrument entries.
func Parse(data []byte) (*Header, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrFormat, Size, len(data))
	}

	e := endian.GetLittleEndianEngine()
	h := &Header{}

	magicRaw := data[0:32]
	if _, _, ok := BlockSizeFor(magicRaw); !ok {
		return nil, fmt.Errorf("%w: unrecognized magic %q", errs.ErrFormat, bytes.TrimRight(magicRaw, "\x00"))
	}
	h.Info.Magic = string(bytes.TrimRight(magicRaw, "\x00"))
	h.Info.Version = e.Uint32(data[32:36])
	h.Info.BlocksTotal = e.Uint32(data[36:40])
	h.Info.BlocksUse = e.Uint32(data[40:44])
	h.Info.GoodsNum = e.Uint32(data[44:48])

	if h.Info.GoodsNum > MaxInstruments {
		return nil, fmt.Errorf("%w: goods_num %d exceeds max %d", errs.ErrFormat, h.Info.GoodsNum, MaxInstruments)
	}

	off := InfoSize
	for i := range h.Instruments {
		entry := data[off : off+InstrumentEntrySize]
		h.Instruments[i] = InstrumentEntry{
			GoodsID:     e.Uint32(entry[0:4]),
			DataNum:     e.Uint32(entry[4:8]),
			BlockFirst:  e.Uint32(entry[8:12]),
			BlockData:   e.Uint32(entry[12:16]),
			BlockLast:   e.Uint32(entry[16:20]),
			DataLastIdx: e.Uint32(entry[20:24]),
			Code:        string(bytes.TrimRight(entry[24:24+CodeLen], "\x00")),
		}
		off += InstrumentEntrySize
	}

	return h, nil
}

// Bytes serializes h back to its Size-byte wire form.
func (h *Header) Bytes() []byte {
	buf := make([]byte, Size)
	e := endian.GetLittleEndianEngine()

	copy(buf[0:32], []byte(h.Info.Magic))
	e.PutUint32(buf[32:36], h.Info.Version)
	e.PutUint32(buf[36:40], h.Info.BlocksTotal)
	e.PutUint32(buf[40:44], h.Info.BlocksUse)
	e.PutUint32(buf[44:48], h.Info.GoodsNum)
	// buf[48:256] (reserved) stays zero.

	off := InfoSize
	for _, entry := range h.Instruments {
		e.PutUint32(buf[off:off+4], entry.GoodsID)
		e.PutUint32(buf[off+4:off+8], entry.DataNum)
		e.PutUint32(buf[off+8:off+12], entry.BlockFirst)
		e.PutUint32(buf[off+12:off+16], entry.BlockData)
		e.PutUint32(buf[off+16:off+20], entry.BlockLast)
		e.PutUint32(buf[off+20:off+24], entry.DataLastIdx)
		copy(buf[off+24:off+24+CodeLen], []byte(entry.Code))
		off += InstrumentEntrySize
	}

	return buf
}

// Index returns a GoodsID-to-table-index map, skipping zero-GoodsID
// (unused) slots, mirroring the original format's goodsidx construction.
func (h *Header) Index() map[uint32]int {
	idx := make(map[uint32]int, h.Info.GoodsNum)
	n := int(h.Info.GoodsNum)
	if n > len(h.Instruments) {
		n = len(h.Instruments)
	}
	for i := 0; i < n; i++ {
		if gid := h.Instruments[i].GoodsID; gid > 0 {
			idx[gid] = i
		}
	}

	return idx
}
