// Package amidate packs date/time values into the 64-bit bit-field layout the
// host's in-memory record format expects. The packing lives only in this thin
// boundary layer; the core works with plain time.Time values.
package amidate

import "time"

// Date is the packed layout:
//
//	year<<52 | month<<48 | day<<43 | hour<<38 | minute<<32 |
//	second<<26 | millisecond<<16 | microsecond<<6 | futurePad
type Date uint64

// End-of-day rows carry these marker values in every time component.
const (
	eodHour        = 31
	eodMinute      = 63
	eodSecond      = 63
	eodMillisecond = 1023
	eodMicrosecond = 1023
)

// Pack builds a Date from explicit components. isEOD overrides the time
// components with the end-of-day markers.
func Pack(year, month, day, hour, minute, second, millisecond, microsecond int, isEOD, isFuturePad bool) Date {
	if isEOD {
		hour = eodHour
		minute = eodMinute
		second = eodSecond
		millisecond = eodMillisecond
		microsecond = eodMicrosecond
	}

	var pad uint64
	if isFuturePad {
		pad = 1
	}

	return Date(uint64(year)<<52 | uint64(month)<<48 | uint64(day)<<43 |
		uint64(hour)<<38 | uint64(minute)<<32 | uint64(second)<<26 |
		uint64(millisecond)<<16 | uint64(microsecond)<<6 | pad)
}

// New packs a time.Time.
func New(t time.Time, isEOD bool) Date {
	return Pack(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond()/1e6, 0, isEOD, false)
}

func (d Date) Year() int        { return int(d >> 52) }
func (d Date) Month() int       { return int(d>>48) & 15 }
func (d Date) Day() int         { return int(d>>43) & 31 }
func (d Date) Hour() int        { return int(d>>38) & 31 }
func (d Date) Minute() int      { return int(d>>32) & 63 }
func (d Date) Second() int      { return int(d>>26) & 63 }
func (d Date) Millisecond() int { return int(d>>16) & 1023 }
func (d Date) Microsecond() int { return int(d>>6) & 1023 }
func (d Date) IsFuturePad() bool { return d&1 == 1 }

// AsInt returns the calendar date as yyyymmdd.
func (d Date) AsInt() int {
	return d.Year()*10_000 + d.Month()*100 + d.Day()
}

// Compare orders two packed dates chronologically by calendar date, then by
// the raw packed time components (EOD markers sort after any real time).
func (d Date) Compare(other Date) int {
	switch {
	case d.AsInt() < other.AsInt():
		return -1
	case d.AsInt() > other.AsInt():
		return 1
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}
