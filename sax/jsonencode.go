package sax

import "strconv"

// jsonSink builds a canonical JSON document by appending directly to
// a []byte buffer, in the style of wslog.Handler.Handle -- no
// intermediate tree, one append per token.
type jsonSink struct {
	buf   []byte
	stack []*frame
}

// NewJSONSink builds a sax.Sink that accumulates into an internal
// buffer, retrievable with Bytes.
func NewJSONSink() *jsonSink {
	return &jsonSink{}
}

func (s *jsonSink) Bytes() []byte { return s.buf }

func (s *jsonSink) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// beforeValue writes the comma separating this value from the
// previous entry at the current level, if any, and marks the level as
// having at least one entry.
func (s *jsonSink) beforeValue() {
	f := s.top()
	if f == nil {
		return
	}
	if f.isObject && f.pendingValue {
		f.pendingValue = false
		return
	}
	if f.wrote {
		s.buf = append(s.buf, ',')
	}
	f.wrote = true
}

func (s *jsonSink) Null() error {
	s.beforeValue()
	s.buf = append(s.buf, "null"...)
	return nil
}

func (s *jsonSink) Bool(v bool) error {
	s.beforeValue()
	if v {
		s.buf = append(s.buf, "true"...)
	} else {
		s.buf = append(s.buf, "false"...)
	}
	return nil
}

func (s *jsonSink) String(v string) error {
	s.beforeValue()
	s.buf = appendJSONString(s.buf, v)
	return nil
}

// Number writes text unquoted, for primitives whose JSON form is a bare
// numeric literal.
func (s *jsonSink) Number(text string) error {
	s.beforeValue()
	s.buf = append(s.buf, text...)
	return nil
}

func (s *jsonSink) StartObject() error {
	s.beforeValue()
	s.buf = append(s.buf, '{')
	s.stack = append(s.stack, &frame{isObject: true})
	return nil
}

// Key writes the comma (if this isn't the first field), the quoted
// key, and the colon, then arms pendingValue so the value that
// follows doesn't get a comma of its own.
func (s *jsonSink) Key(name string) error {
	s.beforeValue()
	s.buf = appendJSONString(s.buf, name)
	s.buf = append(s.buf, ':')
	if f := s.top(); f != nil {
		f.pendingValue = true
	}
	return nil
}

func (s *jsonSink) EndObject() error {
	s.buf = append(s.buf, '}')
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

func (s *jsonSink) StartArray() error {
	s.beforeValue()
	s.buf = append(s.buf, '[')
	s.stack = append(s.stack, &frame{isObject: false})
	return nil
}

func (s *jsonSink) EndArray() error {
	s.buf = append(s.buf, ']')
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// appendJSONString appends the quoted, escaped form of s.
func appendJSONString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if r < 0x20 {
				buf = append(buf, '\\', 'u')
				buf = append(buf, fourHex(uint16(r))...)
				continue
			}
			buf = append(buf, string(r)...)
		}
	}
	buf = append(buf, '"')
	return buf
}

func fourHex(v uint16) string {
	s := strconv.FormatUint(uint64(v), 16)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}
