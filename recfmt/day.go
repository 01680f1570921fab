package recfmt

import (
	"fmt"

	"github.com/emdf-go/emdf/endian"
	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/xint"
)

// DaySize is the fixed wire size of a Day record: 23 u32 fields, 2 i16
// fields, and 1 i32 field.
const DaySize = 23*4 + 2*2 + 4

// Day is one daily-bar record: open/high/low/close plus order-book buy/sell
// breakdowns. Volume, Amount, and Neipan are XInt32-encoded on the wire.
type Day struct {
	Time  uint32
	Open  uint32
	High  uint32
	Low   uint32
	Close uint32

	TradeNum uint32

	Volume    int64
	VolumeRaw xint.Raw
	Amount    int64
	AmountRaw xint.Raw
	Neipan    int64
	NeipanRaw xint.Raw

	Buy  uint32
	Sell uint32

	VolBuy  [3]uint32
	VolSell [3]uint32
	AmtBuy  [3]uint32
	AmtSell [3]uint32

	Rise    int16
	Fall    int16
	Reserve int32
}

func (Day) Kind() Kind { return KindDay }

// Summary returns the brief-field subset (time, open, high, low, close,
// volume, amount) used for human-readable display.
func (d Day) Summary() map[string]any {
	return map[string]any{
		"time":   d.Time,
		"open":   d.Open,
		"high":   d.High,
		"low":    d.Low,
		"close":  d.Close,
		"volume": d.Volume,
		"amount": d.Amount,
	}
}

// DecodeDay decodes a DaySize-byte slice into a Day record using
// little-endian field encoding, as the EM_DataFile wire format always is.
func DecodeDay(data []byte) (Day, error) {
	if len(data) != DaySize {
		return Day{}, fmt.Errorf("%w: Day record needs %d bytes, got %d", errs.ErrFormat, DaySize, len(data))
	}

	e := endian.GetLittleEndianEngine()
	var d Day
	off := 0

	readU32 := func() uint32 {
		v := e.Uint32(data[off : off+4])
		off += 4
		return v
	}
	readI16 := func() int16 {
		v := int16(e.Uint16(data[off : off+2]))
		off += 2
		return v
	}
	readI32 := func() int32 {
		v := int32(e.Uint32(data[off : off+4]))
		off += 4
		return v
	}

	d.Time = readU32()
	d.Open = readU32()
	d.High = readU32()
	d.Low = readU32()
	d.Close = readU32()
	d.TradeNum = readU32()

	d.VolumeRaw = xint.Raw(readU32())
	d.Volume = d.VolumeRaw.Value()
	d.AmountRaw = xint.Raw(readU32())
	d.Amount = d.AmountRaw.Value()
	d.NeipanRaw = xint.Raw(readU32())
	d.Neipan = d.NeipanRaw.Value()

	d.Buy = readU32()
	d.Sell = readU32()

	for i := range d.VolBuy {
		d.VolBuy[i] = readU32()
	}
	for i := range d.VolSell {
		d.VolSell[i] = readU32()
	}
	for i := range d.AmtBuy {
		d.AmtBuy[i] = readU32()
	}
	for i := range d.AmtSell {
		d.AmtSell[i] = readU32()
	}

	d.Rise = readI16()
	d.Fall = readI16()
	d.Reserve = readI32()

	return d, nil
}

// Encode serializes d back to its DaySize-byte wire form. Volume, Amount,
// and Neipan are re-emitted using their preserved raw XInt32 encoding
// unless the corresponding *Raw field has been zeroed, in which case the
// decoded value is canonically re-encoded.
func (d Day) Encode() []byte {
	buf := make([]byte, DaySize)
	e := endian.GetLittleEndianEngine()
	off := 0

	writeU32 := func(v uint32) {
		e.PutUint32(buf[off:off+4], v)
		off += 4
	}
	writeI16 := func(v int16) {
		e.PutUint16(buf[off:off+2], uint16(v))
		off += 2
	}
	writeI32 := func(v int32) {
		e.PutUint32(buf[off:off+4], uint32(v))
		off += 4
	}
	writeXInt := func(value int64, raw xint.Raw) {
		if raw != 0 {
			writeU32(uint32(raw))
			return
		}
		encoded, err := xint.Encode(value)
		if err != nil {
			encoded = 0
		}
		writeU32(encoded)
	}

	writeU32(d.Time)
	writeU32(d.Open)
	writeU32(d.High)
	writeU32(d.Low)
	writeU32(d.Close)
	writeU32(d.TradeNum)

	writeXInt(d.Volume, d.VolumeRaw)
	writeXInt(d.Amount, d.AmountRaw)
	writeXInt(d.Neipan, d.NeipanRaw)

	writeU32(d.Buy)
	writeU32(d.Sell)

	for _, v := range d.VolBuy {
		writeU32(v)
	}
	for _, v := range d.VolSell {
		writeU32(v)
	}
	for _, v := range d.AmtBuy {
		writeU32(v)
	}
	for _, v := range d.AmtSell {
		writeU32(v)
	}

	writeI16(d.Rise)
	writeI16(d.Fall)
	writeI32(d.Reserve)

	return buf
}
