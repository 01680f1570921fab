package recfmt

import (
	"fmt"

	"github.com/emdf-go/emdf/endian"
	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/xint"
)

// HisMinSize is the fixed wire size of a HisMin record: 5 u32 fields.
const HisMinSize = 5 * 4

// HisMin is one historical-minute snapshot. Volume and Zjjl are
// XInt32-encoded on the wire.
type HisMin struct {
	Time  uint32
	Price uint32
	Ave   uint32

	Volume    int64
	VolumeRaw xint.Raw
	Zjjl      int64
	ZjjlRaw   xint.Raw
}

func (HisMin) Kind() Kind { return KindHisMin }

// Summary returns the brief-field subset (time, price, ave, volume, zjjl)
// used for human-readable display.
func (h HisMin) Summary() map[string]any {
	return map[string]any{
		"time":   h.Time,
		"price":  h.Price,
		"ave":    h.Ave,
		"volume": h.Volume,
		"zjjl":   h.Zjjl,
	}
}

// DecodeHisMin decodes a HisMinSize-byte slice into a HisMin record.
func DecodeHisMin(data []byte) (HisMin, error) {
	if len(data) != HisMinSize {
		return HisMin{}, fmt.Errorf("%w: HisMin record needs %d bytes, got %d", errs.ErrFormat, HisMinSize, len(data))
	}

	e := endian.GetLittleEndianEngine()
	var h HisMin

	h.Time = e.Uint32(data[0:4])
	h.Price = e.Uint32(data[4:8])
	h.Ave = e.Uint32(data[8:12])
	h.VolumeRaw = xint.Raw(e.Uint32(data[12:16]))
	h.Volume = h.VolumeRaw.Value()
	h.ZjjlRaw = xint.Raw(e.Uint32(data[16:20]))
	h.Zjjl = h.ZjjlRaw.Value()

	return h, nil
}

// Encode serializes h back to its HisMinSize-byte wire form.
func (h HisMin) Encode() []byte {
	buf := make([]byte, HisMinSize)
	e := endian.GetLittleEndianEngine()

	e.PutUint32(buf[0:4], h.Time)
	e.PutUint32(buf[4:8], h.Price)
	e.PutUint32(buf[8:12], h.Ave)

	volumeRaw := h.VolumeRaw
	if volumeRaw == 0 {
		if encoded, err := xint.Encode(h.Volume); err == nil {
			volumeRaw = xint.Raw(encoded)
		}
	}
	e.PutUint32(buf[12:16], uint32(volumeRaw))

	zjjlRaw := h.ZjjlRaw
	if zjjlRaw == 0 {
		if encoded, err := xint.Encode(h.Zjjl); err == nil {
			zjjlRaw = xint.Raw(encoded)
		}
	}
	e.PutUint32(buf[16:20], uint32(zjjlRaw))

	return buf
}
