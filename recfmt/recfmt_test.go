package recfmt

import (
	"errors"
	"testing"

	"github.com/emdf-go/emdf/endian"
	"github.com/emdf-go/emdf/errs"
	"github.com/emdf-go/emdf/xint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizes(t *testing.T) {
	assert.Equal(t, 100, DaySize)
	assert.Equal(t, 20, HisMinSize)
	assert.Equal(t, 21, BargainSize)
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, DaySize, SizeOf(KindDay))
	assert.Equal(t, MinuteSize, SizeOf(KindMinute))
	assert.Equal(t, HisMinSize, SizeOf(KindHisMin))
	assert.Equal(t, BargainSize, SizeOf(KindBargain))
	assert.Equal(t, 0, SizeOf(Kind(99)))
}

func TestDecodeFunc_UnknownKind(t *testing.T) {
	assert.Nil(t, DecodeFunc(Kind(99)))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Day", KindDay.String())
	assert.Equal(t, "Minute", KindMinute.String())
	assert.Equal(t, "HisMin", KindHisMin.String())
	assert.Equal(t, "Bargain", KindBargain.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestDay_DecodeEncode_RoundTrip(t *testing.T) {
	buf := make([]byte, DaySize)
	e := endian.GetLittleEndianEngine()
	e.PutUint32(buf[0:4], 20260101)   // time
	e.PutUint32(buf[4:8], 1000)       // open
	e.PutUint32(buf[8:12], 1100)      // high
	e.PutUint32(buf[12:16], 950)      // low
	e.PutUint32(buf[16:20], 1050)     // close
	e.PutUint32(buf[20:24], 500)      // tradenum
	e.PutUint32(buf[24:28], 0x200001) // volume xint

	day, err := DecodeDay(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(20260101), day.Time)
	assert.Equal(t, uint32(1000), day.Open)

	encoded := day.Encode()
	assert.Len(t, encoded, DaySize)
	assert.Equal(t, buf, encoded)
}

func TestDay_Decode_WrongSize(t *testing.T) {
	_, err := DecodeDay(make([]byte, DaySize-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFormat))
}

func TestDay_Kind(t *testing.T) {
	assert.Equal(t, KindDay, Day{}.Kind())
}

func TestMinute_DecodeEncode_RoundTrip(t *testing.T) {
	buf := make([]byte, MinuteSize)
	e := endian.GetLittleEndianEngine()
	e.PutUint32(buf[0:4], 93000) // time
	e.PutUint32(buf[4:8], 1000)  // open

	m, err := DecodeMinute(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(93000), m.Time)

	encoded := m.Encode()
	assert.Len(t, encoded, MinuteSize)
	assert.Equal(t, buf, encoded)
}

func TestMinute_Decode_WrongSize(t *testing.T) {
	_, err := DecodeMinute(make([]byte, MinuteSize+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFormat))
}

func TestMinute_VolumeBuy5Field(t *testing.T) {
	// volumeBuy5 follows the 66 u32s, the 2 i16s, and volumeSell5.
	buf := make([]byte, MinuteSize)
	e := endian.GetLittleEndianEngine()
	offset := 66*4 + 2*2 + 4 // past the 66 u32s, 2 i16s (rise,fall), and volumeSell5
	e.PutUint32(buf[offset:offset+4], 777)

	m, err := DecodeMinute(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(777), m.VolumeBuy5)
}

func TestHisMin_DecodeEncode_RoundTrip(t *testing.T) {
	buf := make([]byte, HisMinSize)
	e := endian.GetLittleEndianEngine()
	e.PutUint32(buf[0:4], 93000)
	e.PutUint32(buf[4:8], 1234)
	e.PutUint32(buf[8:12], 1230)
	e.PutUint32(buf[12:16], 0x1FFFFFFF) // volume xint = -1

	h, err := DecodeHisMin(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), h.Volume)

	encoded := h.Encode()
	assert.Equal(t, buf, encoded)
}

func TestHisMin_Decode_WrongSize(t *testing.T) {
	_, err := DecodeHisMin(make([]byte, 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFormat))
}

func TestBargain_DecodeEncode_RoundTrip(t *testing.T) {
	buf := make([]byte, BargainSize)
	e := endian.GetLittleEndianEngine()
	e.PutUint32(buf[0:4], 20260101)
	e.PutUint32(buf[4:8], 93005)
	e.PutUint32(buf[8:12], 1234)
	e.PutUint32(buf[12:16], 100)
	e.PutUint32(buf[16:20], 7)
	buf[20] = byte(int8(-1))

	b, err := DecodeBargain(buf)
	require.NoError(t, err)
	assert.Equal(t, int8(-1), b.BS)
	assert.Equal(t, int64(100), b.Volume)

	encoded := b.Encode()
	assert.Equal(t, buf, encoded)
}

func TestBargain_Decode_WrongSize(t *testing.T) {
	_, err := DecodeBargain(make([]byte, BargainSize+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFormat))
}

func TestDay_Encode_CanonicalizesWhenRawCleared(t *testing.T) {
	day := Day{Volume: 42}
	encoded := day.Encode()
	decoded, err := DecodeDay(encoded)
	require.NoError(t, err)
	assert.Equal(t, int64(42), decoded.Volume)
}

func TestHisMin_Encode_PreservesRawEncoding(t *testing.T) {
	h := HisMin{Volume: 256, VolumeRaw: xint.Raw(0x20000010)}
	encoded := h.Encode()
	e := endian.GetLittleEndianEngine()
	assert.Equal(t, uint32(0x20000010), e.Uint32(encoded[12:16]))
}

func TestBriefFields_MatchSummaryKeys(t *testing.T) {
	day := Day{Time: 1, Open: 2, High: 3, Low: 4, Close: 5, Volume: 6, Amount: 7}
	for _, f := range BriefFields(KindDay) {
		assert.Contains(t, day.Summary(), f)
	}

	m := Minute{Time: 1, Close: 2, Ave: 3, Amount: 4}
	for _, f := range BriefFields(KindMinute) {
		assert.Contains(t, m.Summary(), f)
	}

	h := HisMin{Time: 1, Price: 2, Ave: 3, Volume: 4, Zjjl: 5}
	for _, f := range BriefFields(KindHisMin) {
		assert.Contains(t, h.Summary(), f)
	}

	b := Bargain{Date: 1, Time: 2, Price: 3, Volume: 4, TradeNum: 5, BS: -1}
	for _, f := range BriefFields(KindBargain) {
		assert.Contains(t, b.Summary(), f)
	}

	assert.Nil(t, BriefFields(Kind(99)))
}

func TestDay_Summary_Values(t *testing.T) {
	day := Day{Time: 20260101, Open: 100, High: 110, Low: 90, Close: 105, Volume: 9000, Amount: 500}
	s := day.Summary()
	assert.Equal(t, uint32(20260101), s["time"])
	assert.Equal(t, int64(9000), s["volume"])
	assert.Equal(t, int64(500), s["amount"])
}
