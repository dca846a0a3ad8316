package prim

import (
	"fmt"
	"time"

	"github.com/indexsupply/chainabi/internal/xerr"
)

const (
	dateLayout          = "2006-01-02T15:04:05"
	dateLayoutFrac      = "2006-01-02T15:04:05.999999"
	dateLayoutCondensed = "20060102T150405"
)

// parseDateTime accepts both the dashed ISO-8601-style form (with an
// optional, and for time_point_sec ignored, fractional-second suffix)
// and the condensed form abieos also accepts on parse.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayoutFrac, s); err == nil {
		return t, nil
	}
	return time.Parse(dateLayoutCondensed, s)
}

// timePointSecCodec packs whole seconds since the Unix epoch into a
// little-endian uint32.
type timePointSecCodec struct{}

func (timePointSecCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	t, err := parseDateTime(s)
	if err != nil {
		return nil, xerr.ExpectedStringContaining("time_point_sec")
	}
	return appendLE(dst, uint64(uint32(t.Unix())), 4), nil
}

// Number is false: timestamps are quoted ISO-8601-style strings.
func (timePointSecCodec) Number() bool { return false }

func (timePointSecCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 4 {
		return "", 0, xerr.ErrReadPastEnd
	}
	secs := int64(uint32(readLE(src[:4])))
	return time.Unix(secs, 0).UTC().Format(dateLayout) + ".000", 4, nil
}

// timePointCodec packs microseconds since the Unix epoch into a
// little-endian uint64. Its JSON form is truncated to millisecond
// precision on both parse and emit, the same lossy rounding abieos
// applies to time_point.
type timePointCodec struct{}

func (timePointCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	t, err := time.Parse(dateLayoutFrac, s)
	if err != nil {
		return nil, xerr.ExpectedStringContaining("time_point")
	}
	millis := t.Unix()*1000 + int64(t.Nanosecond())/1_000_000
	return appendLE(dst, uint64(millis)*1000, 8), nil
}

// Number is false: timestamps are quoted ISO-8601-style strings.
func (timePointCodec) Number() bool { return false }

func (timePointCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 8 {
		return "", 0, xerr.ErrReadPastEnd
	}
	micros := int64(readLE(src[:8]))
	secs := micros / 1_000_000
	msec := (micros % 1_000_000) / 1000
	t := time.Unix(secs, 0).UTC()
	return fmt.Sprintf("%s.%03d", t.Format(dateLayout), msec), 8, nil
}

// blockTimestampCodec packs a slot count into a little-endian uint32.
// Slot 0 is epochMS; each slot spans intervalMS milliseconds, so any
// finer-grained time within a slot is lost on encode -- the same
// truncation the reference block_timestamp type accepts in exchange
// for a 4-byte wire size.
type blockTimestampCodec struct{}

const (
	blockTimestampEpochMS    = 946684800000
	blockTimestampIntervalMS = 500
)

func (blockTimestampCodec) DecodeJSON(dst []byte, s string) ([]byte, error) {
	t, err := time.Parse(dateLayoutFrac, s)
	if err != nil {
		return nil, xerr.ExpectedStringContaining("block_timestamp_type")
	}
	ms := t.Unix()*1000 + int64(t.Nanosecond())/1_000_000
	slot := (ms - blockTimestampEpochMS) / blockTimestampIntervalMS
	if slot < 0 || slot > 1<<32-1 {
		return nil, xerr.ErrOutOfRange
	}
	return appendLE(dst, uint64(slot), 4), nil
}

// Number is false: timestamps are quoted ISO-8601-style strings.
func (blockTimestampCodec) Number() bool { return false }

func (blockTimestampCodec) EncodeJSON(src []byte) (string, int, error) {
	if len(src) < 4 {
		return "", 0, xerr.ErrReadPastEnd
	}
	slot := int64(uint32(readLE(src[:4])))
	ms := blockTimestampEpochMS + slot*blockTimestampIntervalMS
	t := time.UnixMilli(ms).UTC()
	return fmt.Sprintf("%s.%03d", t.Format(dateLayout), ms%1000), 4, nil
}
