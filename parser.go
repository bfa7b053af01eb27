package nbfx

import (
	"bytes"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// DefaultMaxDepth is the open-element stack depth a Parser enforces unless
// overridden. An unbounded stack lets a malicious or corrupt input nest
// elements arbitrarily deep, so every Parser bounds it.
const DefaultMaxDepth = 1024

// Parser decodes an MC-NBFX byte stream into an Element tree. The zero value
// is usable; NewParser exists for symmetry with Serializer and to take
// MaxDepth from the process-wide Config.
type Parser struct {
	// MaxDepth bounds the open-element stack; exceeding it yields
	// ErrMaxDepth rather than growing the stack unbounded. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// NewParser returns a Parser configured from the process-wide Config
// (see config.go), so NBFX_MAX_DEPTH takes effect without every caller
// having to read it itself.
func NewParser() *Parser {
	return &Parser{MaxDepth: GetConfig().MaxDepth}
}

// Parse decodes one complete MC-NBFX document from r and returns its root
// Element. The top-level record must be an element record; anything else
// fails with an UnexpectedRecordError at offset 0.
func (p *Parser) Parse(r io.Reader) (*Element, error) {
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	s := newStream(r)
	defer s.release()

	var stack []*Element

	for {
		b, err := s.ReadByte()
		if err != nil {
			return nil, ErrTruncated
		}
		t := RecordType(b)

		switch {
		case t.IsElement():
			if len(stack) >= maxDepth {
				return nil, ErrMaxDepth
			}
			el, err := parseElementHeader(s, t)
			if err != nil {
				return nil, err
			}
			log.Debug().Str("name", el.Name.String()).Str("type", t.String()).Msg("nbfx: opened element")
			stack = append(stack, el)

		case t.IsAttribute():
			if len(stack) == 0 {
				return nil, unexpectedRecordError(b, s.Pos()-1)
			}
			attr, err := parseAttributeHeader(s, t)
			if err != nil {
				return nil, err
			}
			top := stack[len(stack)-1]
			top.AddAttribute(attr)

		case t.IsTextRecord():
			if len(stack) == 0 {
				return nil, unexpectedRecordError(b, s.Pos()-1)
			}
			top := stack[len(stack)-1]
			withEnd, err := applyTextRecord(s, t, top)
			if err != nil {
				return nil, err
			}
			if withEnd {
				root, done := popElement(&stack)
				if done {
					return root, nil
				}
			}

		case t == EndElement:
			if len(stack) == 0 {
				return nil, unexpectedRecordError(b, s.Pos()-1)
			}
			root, done := popElement(&stack)
			if done {
				log.Debug().Msg("nbfx: parse complete")
				return root, nil
			}

		default:
			return nil, unexpectedRecordError(b, s.Pos()-1)
		}
	}
}

// popElement pops the innermost open element, attaching it to its new
// parent, or reports it as the finished root if the stack is now empty.
func popElement(stack *[]*Element) (root *Element, done bool) {
	n := len(*stack)
	top := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	if len(*stack) == 0 {
		return top, true
	}
	parent := (*stack)[len(*stack)-1]
	parent.AddChild(top)
	return nil, false
}

// parseElementHeader decodes the name (and, for prefixed/lettered/dictionary
// forms, the prefix) of an element record whose type byte t has already
// been consumed from s.
func parseElementHeader(s *stream, t RecordType) (*Element, error) {
	prefixed := t == QualifiedElement || t == DictionaryElement
	dictionary := t == DictionaryElement || t == ShortDictionaryElement || t.isPrefixDictionaryElement()

	var prefix string
	var err error
	switch {
	case prefixed:
		prefix, err = readName(s)
		if err != nil {
			return nil, err
		}
	case t.isPrefixDictionaryElement(), t.isPrefixElement():
		letter, _ := t.PrefixLetter()
		prefix = string(letter)
	}

	local, err := readElementOrAttributeName(s, dictionary)
	if err != nil {
		return nil, err
	}

	return &Element{Type: t, Name: QName(prefix, local), Value: NullValue()}, nil
}

// parseAttributeHeader decodes an attribute record whose type byte t has
// already been consumed from s, including the xmlns special case where the
// "value" is a bare string/dictionary-id rather than a text record.
func parseAttributeHeader(s *stream, t RecordType) (Attr, error) {
	prefixed := t <= DictionaryXmlnsAttribute && t&1 == 1
	dictionary := t == ShortDictionaryAttribute || t == ShortDictionaryXmlnsAttribute ||
		t == DictionaryAttribute || t == DictionaryXmlnsAttribute || t.isPrefixDictionaryAttribute()

	var prefix string
	var err error
	switch {
	case prefixed:
		prefix, err = readName(s)
		if err != nil {
			return Attr{}, err
		}
	case t.isPrefixDictionaryAttribute(), t.isPrefixAttribute():
		letter, _ := t.PrefixLetter()
		prefix = string(letter)
	}

	isXmlns := t >= ShortXmlnsAttribute && t <= DictionaryXmlnsAttribute
	if isXmlns {
		uri, err := readElementOrAttributeName(s, dictionary)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Type: t, Name: QName(prefix, "xmlns"), Value: StringValue(uri)}, nil
	}

	local, err := readElementOrAttributeName(s, dictionary)
	if err != nil {
		return Attr{}, err
	}

	vb, err := s.ReadByte()
	if err != nil {
		return Attr{}, ErrTruncated
	}
	value, err := parseValueBody(s, RecordType(vb))
	if err != nil {
		return Attr{}, err
	}

	return Attr{Type: t, Name: QName(prefix, local), Value: value}, nil
}

// readElementOrAttributeName reads either a plain length-prefixed name or,
// when dictionary is set, a MultiByteInt31 dictionary id rendered as its
// "D:<id>" token, since resolving the id to text is an external
// collaborator's job, not the codec's.
func readElementOrAttributeName(s *stream, dictionary bool) (string, error) {
	if dictionary {
		id, err := readMultiByteInt31(s)
		if err != nil {
			return "", err
		}
		return dictionaryToken(id), nil
	}
	return readName(s)
}

// applyTextRecord decodes the text record whose type byte t has already been
// consumed from s and installs it on el's Value, honoring the bytes-chunk
// continuation rule: a second consecutive Bytes*Text record on an element
// already holding a non-empty Bytes value is appended rather than
// replacing, and any other record type in that position is a
// TypeAppendMismatch. It returns whether t was the fused "with end element"
// variant.
func applyTextRecord(s *stream, t RecordType, el *Element) (bool, error) {
	withEnd := t.HasEndElement()
	canonical := t.Canonical()

	if el.Value.Kind() == KindBytes {
		if existing, _ := el.Value.Bytes(); len(existing) > 0 {
			if !isBytesText(canonical) {
				return false, ErrTypeAppendMismatch
			}
			chunk, err := readBytesChunk(s, canonical)
			if err != nil {
				return false, err
			}
			el.Value.appendBytes(chunk)
			return withEnd, nil
		}
	}

	v, err := parseValueBody(s, t)
	if err != nil {
		return false, err
	}
	el.Value = v
	return withEnd, nil
}

func isBytesText(canonical RecordType) bool {
	return canonical == Bytes8Text || canonical == Bytes16Text || canonical == Bytes32Text
}

func readBytesChunk(s *stream, canonical RecordType) ([]byte, error) {
	switch canonical {
	case Bytes8Text:
		return readFixedLengthText(s, 1)
	case Bytes16Text:
		return readFixedLengthText(s, 2)
	default:
		return readFixedLengthText(s, 4)
	}
}

// parseValueBody decodes the payload of a text record whose type byte t has
// already been consumed from s. Recognized-but-unimplemented kinds (Decimal,
// TimeSpan, Uuid, UniqueId, BoolText, the Unicode*Chars variants,
// QNameDictionaryText) fail with UnsupportedError rather than a generic
// parse error, so callers can tell "malformed" apart from "not yet handled".
func parseValueBody(s *stream, t RecordType) (Value, error) {
	canonical := t.Canonical()

	switch canonical {
	case ZeroText:
		return Int64Value(0), nil
	case OneText:
		return Int64Value(1), nil
	case TrueText:
		return BoolValue(true), nil
	case FalseText:
		return BoolValue(false), nil

	case Chars8Text, Chars16Text, Chars32Text:
		buf, err := readFixedLengthText(s, charsWidth(canonical))
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(buf) {
			return Value{}, malformedUTF8Error(s.Pos() - int64(len(buf)))
		}
		return StringValue(string(buf)), nil

	case Int8Text:
		v, err := s.readUint8()
		if err != nil {
			return Value{}, err
		}
		return Int64Value(int64(int8(v))), nil

	case Int16Text:
		v, err := s.readUint16LE()
		if err != nil {
			return Value{}, err
		}
		return Int64Value(int64(int16(v))), nil

	case Int32Text:
		v, err := s.readUint32LE()
		if err != nil {
			return Value{}, err
		}
		return Int64Value(int64(int32(v))), nil

	case Int64Text:
		v, err := s.readUint64LE()
		if err != nil {
			return Value{}, err
		}
		return Int64Value(int64(v)), nil

	case UInt64Text:
		v, err := s.readUint64LE()
		if err != nil {
			return Value{}, err
		}
		return UInt64Value(v), nil

	case FloatText:
		v, err := s.readUint32LE()
		if err != nil {
			return Value{}, err
		}
		return Float32Value(math.Float32frombits(v)), nil

	case DoubleText:
		v, err := s.readUint64LE()
		if err != nil {
			return Value{}, err
		}
		return Float64Value(math.Float64frombits(v)), nil

	case DateTimeText:
		raw, err := s.readUint64LE()
		if err != nil {
			return Value{}, err
		}
		tm, err := ticksToTime(raw)
		if err != nil {
			return Value{}, err
		}
		return DateTimeValue(tm), nil

	case Bytes8Text, Bytes16Text, Bytes32Text:
		buf, err := readBytesChunk(s, canonical)
		if err != nil {
			return Value{}, err
		}
		return BytesValue(buf), nil

	case EmptyText:
		return NullValue(), nil

	case DictionaryText:
		id, err := readMultiByteInt31(s)
		if err != nil {
			return Value{}, err
		}
		return StringValue(dictionaryToken(id)), nil

	case DecimalText, TimeSpanText, UuidText, UniqueIDText, BoolText,
		UnicodeChars8Text, UnicodeChars16Text, UnicodeChars32Text,
		QNameDictionaryText, StartListText, EndListText:
		return Value{}, unsupportedError(canonical)

	default:
		return Value{}, unsupportedError(canonical)
	}
}

func charsWidth(canonical RecordType) int {
	switch canonical {
	case Chars8Text:
		return 1
	case Chars16Text:
		return 2
	default:
		return 4
	}
}

// ParseBytes decodes a complete MC-NBFX document held in memory.
func ParseBytes(b []byte) (*Element, error) {
	return NewParser().Parse(bytes.NewReader(b))
}

// ParseFile opens path and decodes a complete MC-NBFX document from it.
func ParseFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewParser().Parse(f)
}
