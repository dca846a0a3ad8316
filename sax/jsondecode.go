package sax

import (
	"errors"
	"io"

	"github.com/goccy/go-json"
)

var errUnknownToken = errors.New("sax: unrecognized json token")

// frame tracks just enough state to tell, for each token emitted by
// json.Decoder.Token, whether it fills an object's key slot or its
// value slot -- Token itself does not distinguish the two, since a
// bare string token looks identical in both positions.
type frame struct {
	isObject bool
	wantKey  bool // only meaningful when isObject; used by jsonSource

	// jsonSink bookkeeping: wrote is true once an entry has been
	// emitted at this level; pendingValue is true between a Key call
	// and the value that fills it, so the value doesn't get its own
	// leading comma.
	wrote        bool
	pendingValue bool
}

// jsonSource adapts goccy/go-json's streaming Decoder (a drop-in,
// faster encoding/json) into the sax.Source contract. UseNumber keeps
// every numeric literal as a json.Number -- a string under the hood --
// so 64/128-bit values reach the primitive codecs without a lossy
// float64 round trip, per the "numbers as strings" requirement.
type jsonSource struct {
	dec   *json.Decoder
	stack []*frame
}

// NewJSONSource builds a sax.Source reading from r.
func NewJSONSource(r io.Reader) Source {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

func (s *jsonSource) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// closeValue is called once a leaf value (or a just-popped
// object/array) has filled the current frame's value slot.
func (s *jsonSource) closeValue() {
	if f := s.top(); f != nil && f.isObject {
		f.wantKey = true
	}
}

func (s *jsonSource) Next() (Event, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return Event{}, io.EOF
		}
		return Event{}, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, &frame{isObject: true, wantKey: true})
			return Event{Kind: StartObject}, nil
		case '[':
			s.stack = append(s.stack, &frame{isObject: false})
			return Event{Kind: StartArray}, nil
		case '}':
			s.stack = s.stack[:len(s.stack)-1]
			s.closeValue()
			return Event{Kind: EndObject}, nil
		case ']':
			s.stack = s.stack[:len(s.stack)-1]
			s.closeValue()
			return Event{Kind: EndArray}, nil
		}
	case json.Number:
		s.closeValue()
		return Event{Kind: String, Text: string(v)}, nil
	case string:
		if s.atKeyPosition() {
			s.top().wantKey = false
			return Event{Kind: Key, Text: v}, nil
		}
		s.closeValue()
		return Event{Kind: String, Text: v}, nil
	case bool:
		s.closeValue()
		return Event{Kind: Bool, BoolVal: v}, nil
	case nil:
		s.closeValue()
		return Event{Kind: Null}, nil
	}
	return Event{}, errUnknownToken
}

func (s *jsonSource) atKeyPosition() bool {
	f := s.top()
	return f != nil && f.isObject && f.wantKey
}
