package recfmt

import (
	"fmt"

	"github.com/emdf-go/emdf/endian"
	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/xint"
)

// BargainSize is the fixed wire size of a Bargain record: 5 u32 fields
// plus 1 i8 field.
const BargainSize = 5*4 + 1

// Bargain is one individual trade tick. Volume is XInt32-encoded on the
// wire; BS (buy/sell side) is a single signed byte.
type Bargain struct {
	Date  uint32
	Time  uint32
	Price uint32

	Volume    int64
	VolumeRaw xint.Raw

	TradeNum uint32
	BS       int8
}

func (Bargain) Kind() Kind { return KindBargain }

// Summary returns the brief-field subset (date, time, price, volume,
// tradenum, bs) used for human-readable display.
func (b Bargain) Summary() map[string]any {
	return map[string]any{
		"date":     b.Date,
		"time":     b.Time,
		"price":    b.Price,
		"volume":   b.Volume,
		"tradenum": b.TradeNum,
		"bs":       b.BS,
	}
}

// DecodeBargain decodes a BargainSize-byte slice into a Bargain record.
func DecodeBargain(data []byte) (Bargain, error) {
	if len(data) != BargainSize {
		return Bargain{}, fmt.Errorf("%w: Bargain record needs %d bytes, got %d", errs.ErrFormat, BargainSize, len(data))
	}

	e := endian.GetLittleEndianEngine()
	var b Bargain

	b.Date = e.Uint32(data[0:4])
	b.Time = e.Uint32(data[4:8])
	b.Price = e.Uint32(data[8:12])
	b.VolumeRaw = xint.Raw(e.Uint32(data[12:16]))
	b.Volume = b.VolumeRaw.Value()
	b.TradeNum = e.Uint32(data[16:20])
	b.BS = int8(data[20])

	return b, nil
}

// Encode serializes b back to its BargainSize-byte wire form.
func (b Bargain) Encode() []byte {
	buf := make([]byte, BargainSize)
	e := endian.GetLittleEndianEngine()

	e.PutUint32(buf[0:4], b.Date)
	e.PutUint32(buf[4:8], b.Time)
	e.PutUint32(buf[8:12], b.Price)

	volumeRaw := b.VolumeRaw
	if volumeRaw == 0 {
		if encoded, err := xint.Encode(b.Volume); err == nil {
			volumeRaw = xint.Raw(encoded)
		}
	}
	e.PutUint32(buf[12:16], uint32(volumeRaw))

	e.PutUint32(buf[16:20], b.TradeNum)
	buf[20] = byte(b.BS)

	return buf
}
