package sax

import (
	"strings"
	"testing"

	"github.com/indexsupply/chainabi/tc"
)

// drive copies every event from src into dst, the way the json-to-binary
// and binary-to-json engines thread events between a Source and a Sink.
func drive(src Source, dst Sink) error {
	depth := 0
	for {
		ev, err := src.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case Null:
			if err := dst.Null(); err != nil {
				return err
			}
		case Bool:
			if err := dst.Bool(ev.BoolVal); err != nil {
				return err
			}
		case String:
			if err := dst.String(ev.Text); err != nil {
				return err
			}
		case Key:
			if err := dst.Key(ev.Text); err != nil {
				return err
			}
		case StartObject:
			depth++
			if err := dst.StartObject(); err != nil {
				return err
			}
		case EndObject:
			depth--
			if err := dst.EndObject(); err != nil {
				return err
			}
		case StartArray:
			depth++
			if err := dst.StartArray(); err != nil {
				return err
			}
		case EndArray:
			depth--
			if err := dst.EndArray(); err != nil {
				return err
			}
		}
		if depth == 0 {
			return nil
		}
	}
}

// roundTrip copies doc's events into a JSON sink and compares the
// result with want. The source delivers numbers as String events, so
// a number in doc comes back as a quoted string.
func roundTrip(t *testing.T, doc, want string) {
	t.Helper()
	src := NewJSONSource(strings.NewReader(doc))
	// the first event is read here: an opening brace or bracket is
	// replayed into the sink and the rest is copied until the matching
	// close; a bare top-level scalar is written directly.
	sink := NewJSONSink()

	ev, err := src.Next()
	tc.NoErr(t, err)
	switch ev.Kind {
	case StartObject, StartArray:
		// replay the already-consumed open token, then keep draining.
		depth := 1
		if ev.Kind == StartObject {
			tc.NoErr(t, sink.StartObject())
		} else {
			tc.NoErr(t, sink.StartArray())
		}
		for depth > 0 {
			ev, err := src.Next()
			tc.NoErr(t, err)
			switch ev.Kind {
			case Null:
				tc.NoErr(t, sink.Null())
			case Bool:
				tc.NoErr(t, sink.Bool(ev.BoolVal))
			case String:
				tc.NoErr(t, sink.String(ev.Text))
			case Key:
				tc.NoErr(t, sink.Key(ev.Text))
			case StartObject:
				depth++
				tc.NoErr(t, sink.StartObject())
			case EndObject:
				depth--
				tc.NoErr(t, sink.EndObject())
			case StartArray:
				depth++
				tc.NoErr(t, sink.StartArray())
			case EndArray:
				depth--
				tc.NoErr(t, sink.EndArray())
			}
		}
	case Null:
		tc.NoErr(t, sink.Null())
	case Bool:
		tc.NoErr(t, sink.Bool(ev.BoolVal))
	case String:
		tc.NoErr(t, sink.String(ev.Text))
	}

	got := string(sink.Bytes())
	tc.WantGot(t, want, got)
}

func TestRoundTripObject(t *testing.T) {
	roundTrip(t, `{"a":1,"b":"two","c":true,"d":null}`, `{"a":"1","b":"two","c":true,"d":null}`)
}

func TestRoundTripNestedObjectValue(t *testing.T) {
	roundTrip(t, `{"outer":{"inner":1}}`, `{"outer":{"inner":"1"}}`)
}

func TestRoundTripArrayOfArrays(t *testing.T) {
	roundTrip(t, `[[1,2],[3,4]]`, `[["1","2"],["3","4"]]`)
}

func TestRoundTripEmptyContainers(t *testing.T) {
	roundTrip(t, `{"a":{},"b":[]}`, `{"a":{},"b":[]}`)
}

func TestRoundTripArrayOfObjects(t *testing.T) {
	roundTrip(t, `[{"x":1},{"y":2}]`, `[{"x":"1"},{"y":"2"}]`)
}
