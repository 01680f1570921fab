package chain

import (
	"encoding/binary"
	"testing"

	"github.com/emdf-go/emdf/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memReader is an in-memory stand-in for blockio.Reader backed by a flat
// byte slice addressed exactly like a real file.
type memReader struct {
	data []byte
}

func (m *memReader) ReadFullAt(buf []byte, offset int64) error {
	if offset < 0 || offset+int64(len(buf)) > int64(len(m.data)) {
		return assertShortRead
	}
	copy(buf, m.data[offset:offset+int64(len(buf))])
	return nil
}

var assertShortRead = shortReadErr{}

type shortReadErr struct{}

func (shortReadErr) Error() string { return "short read" }

// buildFile constructs a flat file with the header occupying the first
// headerSize bytes and a sequence of blocks of the given size following,
// each block prefixed with its next_block_id. blockIDs gives the chain's
// next-id sequence (block N's header points at blockIDs[N]); the last
// entry should exceed blockLast to act as the sentinel.
func buildFile(headerSize, blockSize int, blockIDs []uint32, payloadPerBlock int) []byte {
	total := headerSize + blockSize*len(blockIDs)
	buf := make([]byte, total)
	for i, nextID := range blockIDs {
		off := headerSize + i*blockSize
		binary.LittleEndian.PutUint32(buf[off:off+4], nextID)
		for j := 0; j < payloadPerBlock && j < blockSize-4; j++ {
			buf[off+4+j] = byte(i + 1)
		}
	}

	return buf
}

func TestWalk_DataNumZero_YieldsNothing(t *testing.T) {
	entry := header.InstrumentEntry{DataNum: 0}
	r := &memReader{data: make([]byte, 1024)}

	count := 0
	for range Walk(r, entry, 8192, 100, int64(len(r.data))) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestWalk_SingleBlock_ExactFill(t *testing.T) {
	const blockSize = 8192
	const recordSize = 100
	recordsPerBlock := (blockSize - 4) / recordSize

	// Single block whose data_num is an exact multiple of recordsPerBlock.
	// block 1's next id is 2, which exceeds blockLast=1, so it's the sentinel.
	headerSize := blockSize // block 0 overlaps a degenerate "header"
	file := buildFile(headerSize, blockSize, []uint32{2}, blockSize-4)

	entry := header.InstrumentEntry{
		DataNum:    uint32(recordsPerBlock),
		BlockFirst: 1,
		BlockLast:  1,
	}
	r := &memReader{data: file}

	var gotLens []int
	for payload, err := range Walk(r, entry, blockSize, recordSize, int64(len(file))) {
		require.NoError(t, err)
		gotLens = append(gotLens, len(payload))
	}

	require.Len(t, gotLens, 1)
	assert.Equal(t, recordsPerBlock*recordSize, gotLens[0])
}

func TestWalk_MultiBlock_LastBlockPartial(t *testing.T) {
	const blockSize = 8192
	const recordSize = 100
	recordsPerBlock := (blockSize - 4) / recordSize

	headerSize := blockSize
	// Two blocks: block 1 -> block 2 -> sentinel (3 > blockLast=2).
	file := buildFile(headerSize, blockSize, []uint32{2, 3}, blockSize-4)

	dataNum := uint32(recordsPerBlock + 7) // second block holds 7 records
	entry := header.InstrumentEntry{
		DataNum:    dataNum,
		BlockFirst: 1,
		BlockLast:  2,
	}
	r := &memReader{data: file}

	var gotLens []int
	for payload, err := range Walk(r, entry, blockSize, recordSize, int64(len(file))) {
		require.NoError(t, err)
		gotLens = append(gotLens, len(payload))
	}

	require.Len(t, gotLens, 2)
	assert.Equal(t, recordsPerBlock*recordSize, gotLens[0])
	assert.Equal(t, 7*recordSize, gotLens[1])
}

func TestWalk_LastBlockModuloZero_TreatedAsFull(t *testing.T) {
	const blockSize = 8192
	const recordSize = 100
	recordsPerBlock := (blockSize - 4) / recordSize

	headerSize := blockSize
	file := buildFile(headerSize, blockSize, []uint32{2, 3}, blockSize-4)

	dataNum := uint32(recordsPerBlock * 2) // modulo is exactly zero
	entry := header.InstrumentEntry{
		DataNum:    dataNum,
		BlockFirst: 1,
		BlockLast:  2,
	}
	r := &memReader{data: file}

	var gotLens []int
	for payload, err := range Walk(r, entry, blockSize, recordSize, int64(len(file))) {
		require.NoError(t, err)
		gotLens = append(gotLens, len(payload))
	}

	require.Len(t, gotLens, 2)
	assert.Equal(t, recordsPerBlock*recordSize, gotLens[1])
}

func TestWalk_StopsAtSentinelBeforeTotalBlocks(t *testing.T) {
	const blockSize = 8192
	const recordSize = 100
	recordsPerBlock := (blockSize - 4) / recordSize

	headerSize := blockSize
	// Declares data_num needing 3 blocks, but chain terminates after 1.
	file := buildFile(headerSize, blockSize, []uint32{99}, blockSize-4)

	dataNum := uint32(recordsPerBlock*3 - 5)
	entry := header.InstrumentEntry{
		DataNum:    dataNum,
		BlockFirst: 1,
		BlockLast:  1, // next id 99 > 1: sentinel on the very first block
	}
	r := &memReader{data: file}

	var gotLens []int
	for payload, err := range Walk(r, entry, blockSize, recordSize, int64(len(file))) {
		require.NoError(t, err)
		gotLens = append(gotLens, len(payload))
	}

	assert.Empty(t, gotLens, "sentinel on first block should stop the walk immediately")
}

func TestWalk_OffsetBeyondFileSize_Stops(t *testing.T) {
	const blockSize = 8192
	const recordSize = 100

	entry := header.InstrumentEntry{
		DataNum:    uint32(recordSize),
		BlockFirst: 1000, // far beyond the tiny file below
		BlockLast:  1000,
	}
	r := &memReader{data: make([]byte, blockSize)}

	count := 0
	for range Walk(r, entry, blockSize, recordSize, int64(len(r.data))) {
		count++
	}
	assert.Equal(t, 0, count)
}
