package recfmt

import (
	"fmt"

	"github.com/emdf-go/emdf/endian"
	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/xint"
)

// MinuteSize is the fixed wire size of a Minute record: 66 u32 fields,
// 2 i16 fields, and 3 i32 fields.
const MinuteSize = 66*4 + 2*2 + 3*4

// OrderCounts mirrors the original format's per-side order/trade
// breakdown: four buckets each for buy/sell counts, volumes, and amounts.
type OrderCounts struct {
	NumBuy  [4]uint32
	NumSell [4]uint32
	VolBuy  [4]uint32
	VolSell [4]uint32
	AmtBuy  [4]uint32
	AmtSell [4]uint32
}

// Minute is one intraday minute-bar record.
//
// The i32 field after VolumeSell5 is named VolumeBuy5; the original source reads it into
// an undeclared attribute (spec discrepancy), so this field's name is fixed
// here rather than carried over literally.
type Minute struct {
	Time  uint32
	Open  uint32
	High  uint32
	Low   uint32
	Close uint32

	Volume uint32

	Amount    int64
	AmountRaw xint.Raw

	TradeNum uint32
	Ave      uint32
	Buy      uint32
	Sell     uint32
	VolBuy   uint32
	VolSell  uint32

	Order OrderCounts
	Trade OrderCounts

	NewOrder [2]uint32
	DelOrder [2]uint32

	Strong uint32

	Rise int16
	Fall int16

	VolumeSell5 int32
	VolumeBuy5  int32
	Count       int32
}

func (Minute) Kind() Kind { return KindMinute }

// Summary returns the brief-field subset (time, close, ave, amount) used
// for human-readable display.
func (m Minute) Summary() map[string]any {
	return map[string]any{
		"time":   m.Time,
		"close":  m.Close,
		"ave":    m.Ave,
		"amount": m.Amount,
	}
}

// DecodeMinute decodes a MinuteSize-byte slice into a Minute record.
func DecodeMinute(data []byte) (Minute, error) {
	if len(data) != MinuteSize {
		return Minute{}, fmt.Errorf("%w: Minute record needs %d bytes, got %d", errs.ErrFormat, MinuteSize, len(data))
	}

	e := endian.GetLittleEndianEngine()
	var m Minute
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
	readU32Array := func(arr []uint32) {
		for i := range arr {
			arr[i] = readU32()
		}
	}

	m.Time = readU32()
	m.Open = readU32()
	m.High = readU32()
	m.Low = readU32()
	m.Close = readU32()
	m.Volume = readU32()
	m.AmountRaw = xint.Raw(readU32())
	m.Amount = m.AmountRaw.Value()
	m.TradeNum = readU32()
	m.Ave = readU32()
	m.Buy = readU32()
	m.Sell = readU32()
	m.VolBuy = readU32()
	m.VolSell = readU32()

	readU32Array(m.Order.NumBuy[:])
	readU32Array(m.Order.NumSell[:])
	readU32Array(m.Order.VolBuy[:])
	readU32Array(m.Order.VolSell[:])
	readU32Array(m.Order.AmtBuy[:])
	readU32Array(m.Order.AmtSell[:])

	readU32Array(m.Trade.NumBuy[:])
	readU32Array(m.Trade.NumSell[:])
	readU32Array(m.Trade.VolBuy[:])
	readU32Array(m.Trade.VolSell[:])
	readU32Array(m.Trade.AmtBuy[:])
	readU32Array(m.Trade.AmtSell[:])

	readU32Array(m.NewOrder[:])
	readU32Array(m.DelOrder[:])

	m.Strong = readU32()

	m.Rise = readI16()
	m.Fall = readI16()

	m.VolumeSell5 = readI32()
	m.VolumeBuy5 = readI32()
	m.Count = readI32()

	return m, nil
}

// Encode serializes m back to its MinuteSize-byte wire form.
func (m Minute) Encode() []byte {
	buf := make([]byte, MinuteSize)
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
	writeU32Array := func(arr [4]uint32) {
		for _, v := range arr {
			writeU32(v)
		}
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

	writeU32(m.Time)
	writeU32(m.Open)
	writeU32(m.High)
	writeU32(m.Low)
	writeU32(m.Close)
	writeU32(m.Volume)
	writeXInt(m.Amount, m.AmountRaw)
	writeU32(m.TradeNum)
	writeU32(m.Ave)
	writeU32(m.Buy)
	writeU32(m.Sell)
	writeU32(m.VolBuy)
	writeU32(m.VolSell)

	writeU32Array(m.Order.NumBuy)
	writeU32Array(m.Order.NumSell)
	writeU32Array(m.Order.VolBuy)
	writeU32Array(m.Order.VolSell)
	writeU32Array(m.Order.AmtBuy)
	writeU32Array(m.Order.AmtSell)

	writeU32Array(m.Trade.NumBuy)
	writeU32Array(m.Trade.NumSell)
	writeU32Array(m.Trade.VolBuy)
	writeU32Array(m.Trade.VolSell)
	writeU32Array(m.Trade.AmtBuy)
	writeU32Array(m.Trade.AmtSell)

	for _, v := range m.NewOrder {
		writeU32(v)
	}
	for _, v := range m.DelOrder {
		writeU32(v)
	}

	writeU32(m.Strong)

	writeI16(m.Rise)
	writeI16(m.Fall)

	writeI32(m.VolumeSell5)
	writeI32(m.VolumeBuy5)
	writeI32(m.Count)

	return buf
}
