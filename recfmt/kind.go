package recfmt

// Kind identifies which of the four fixed-layout record types a block's
// payload is sliced into. The numeric values are internal to this module;
// they are never written to the wire.
type Kind uint8

const (
	KindDay Kind = iota
	KindMinute
	KindHisMin
	KindBargain
)

func (k Kind) String() string {
	switch k {
	case KindDay:
		return "Day"
	case KindMinute:
		return "Minute"
	case KindHisMin:
		return "HisMin"
	case KindBargain:
		return "Bargain"
	default:
		return "Unknown"
	}
}

// Record is implemented by every fixed-layout record type this module
// decodes: Day, Minute, HisMin, and Bargain.
type Record interface {
	Kind() Kind
	Encode() []byte

	// Summary returns the record's brief-field subset by name, for
	// human-readable display. The field set and order are fixed per kind.
	Summary() map[string]any
}

// SizeOf returns the fixed wire size in bytes of records of kind k, or 0 if
// k is not a recognized kind.
func SizeOf(k Kind) int {
	switch k {
	case KindDay:
		return DaySize
	case KindMinute:
		return MinuteSize
	case KindHisMin:
		return HisMinSize
	case KindBargain:
		return BargainSize
	default:
		return 0
	}
}

// BriefFields returns the ordered field names Summary populates for kind k,
// mirroring the original format's per-kind brieflist.
func BriefFields(k Kind) []string {
	switch k {
	case KindDay:
		return []string{"time", "open", "high", "low", "close", "volume", "amount"}
	case KindMinute:
		return []string{"time", "close", "ave", "amount"}
	case KindHisMin:
		return []string{"time", "price", "ave", "volume", "zjjl"}
	case KindBargain:
		return []string{"date", "time", "price", "volume", "tradenum", "bs"}
	default:
		return nil
	}
}

// DecodeFunc returns the decoder for records of kind k, or nil if k is not
// a recognized kind.
func DecodeFunc(k Kind) func([]byte) (Record, error) {
	switch k {
	case KindDay:
		return func(b []byte) (Record, error) { return DecodeDay(b) }
	case KindMinute:
		return func(b []byte) (Record, error) { return DecodeMinute(b) }
	case KindHisMin:
		return func(b []byte) (Record, error) { return DecodeHisMin(b) }
	case KindBargain:
		return func(b []byte) (Record, error) { return DecodeBargain(b) }
	default:
		return nil
	}
}

