package nbfx

import (
	"bytes"
	"io"
	"math"
	"sort"
)

// Serializer encodes an Element tree as an MC-NBFX byte stream. The zero
// value is ready to use; NewSerializer exists for symmetry with Parser.
type Serializer struct{}

// NewSerializer returns a ready-to-use Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize writes root to w. When sortMembers is true, every element's
// children are stable-sorted by local name before being written, recursively;
// the source tree is never mutated. The element's stored Type field
// is ignored — the record-type choice for every element and attribute is
// always recomputed from (prefix, name), so that
// serialize(parse(serialize(T))) == serialize(T)
// holds regardless of how T was originally produced.
func (s *Serializer) Serialize(w io.Writer, root *Element, sortMembers bool) error {
	sk := newSink(w)
	if err := writeElementTree(sk, root, sortMembers); err != nil {
		return err
	}
	return sk.flush()
}

// SerializeToBytes is a convenience wrapper around Serialize for callers
// that want an in-memory result.
func SerializeToBytes(root *Element, sortMembers bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewSerializer().Serialize(&buf, root, sortMembers); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeElementTree(w *sink, el *Element, sortMembers bool) error {
	if err := writeElementHeader(w, el.Name); err != nil {
		return err
	}
	for _, attr := range el.Attributes {
		if err := writeAttributeRecord(w, attr); err != nil {
			return err
		}
	}

	children := el.Children
	if sortMembers {
		children = stableSortedByName(children)
	}
	for _, c := range children {
		if err := writeElementTree(w, c, sortMembers); err != nil {
			return err
		}
	}

	// The value write doubles as the element's terminator: a Null value
	// emits a bare EndElement, anything else fuses the terminator into the
	// text record's low bit.
	return writeValue(w, el.Value, true)
}

func stableSortedByName(children []*Element) []*Element {
	sorted := make([]*Element, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name.Local < sorted[j].Name.Local
	})
	return sorted
}

func writeElementHeader(w *sink, name QualifiedName) error {
	t := canonicalElementType(name)
	if err := w.WriteByte(byte(t)); err != nil {
		return err
	}
	if t == QualifiedElement {
		if err := writeName(w, name.Prefix); err != nil {
			return err
		}
	}
	return writeName(w, name.Local)
}

func writeAttributeRecord(w *sink, attr Attr) error {
	t := canonicalAttributeType(attr.Name)
	if err := w.WriteByte(byte(t)); err != nil {
		return err
	}

	if t == XmlnsAttribute || t == ShortXmlnsAttribute {
		if t == XmlnsAttribute {
			if err := writeName(w, attr.Name.Prefix); err != nil {
				return err
			}
		}
		uri, err := attr.Value.Str()
		if err != nil {
			return err
		}
		return writeName(w, uri)
	}

	if t == Attribute {
		if err := writeName(w, attr.Name.Prefix); err != nil {
			return err
		}
	}
	if err := writeName(w, attr.Name.Local); err != nil {
		return err
	}
	return writeValue(w, attr.Value, false)
}

func endBit(withEnd bool) byte {
	if withEnd {
		return 1
	}
	return 0
}

// writeValue encodes v as a text record. withEnd is true only for the value
// that terminates an element (never for an attribute's value).
func writeValue(w *sink, v Value, withEnd bool) error {
	switch v.Kind() {
	case KindNull:
		if withEnd {
			return w.WriteByte(byte(EndElement))
		}
		return nil

	case KindBoolean:
		b, err := v.Bool()
		if err != nil {
			return err
		}
		code := FalseText
		if b {
			code = TrueText
		}
		return w.WriteByte(byte(code) + endBit(withEnd))

	case KindInt64:
		i, err := v.Int64()
		if err != nil {
			return err
		}
		return writeIntValue(w, i, withEnd)

	case KindUInt64:
		u, err := v.UInt64()
		if err != nil {
			return err
		}
		if err := w.WriteByte(byte(UInt64Text) + endBit(withEnd)); err != nil {
			return err
		}
		return w.writeUint64LE(u)

	case KindFloat32:
		f, err := v.Float32()
		if err != nil {
			return err
		}
		if err := w.WriteByte(byte(FloatText) + endBit(withEnd)); err != nil {
			return err
		}
		return w.writeUint32LE(math.Float32bits(f))

	case KindFloat64:
		f, err := v.Float64()
		if err != nil {
			return err
		}
		if err := w.WriteByte(byte(DoubleText) + endBit(withEnd)); err != nil {
			return err
		}
		return w.writeUint64LE(math.Float64bits(f))

	case KindDateTime:
		t, err := v.DateTime()
		if err != nil {
			return err
		}
		if err := w.WriteByte(byte(DateTimeText) + endBit(withEnd)); err != nil {
			return err
		}
		return w.writeUint64LE(timeToTicks(t))

	case KindString:
		str, err := v.Str()
		if err != nil {
			return err
		}
		return writeStringValue(w, str, withEnd)

	case KindBytes:
		b, err := v.Bytes()
		if err != nil {
			return err
		}
		return writeBytesValue(w, b, withEnd)

	default:
		return unsupportedError(0)
	}
}

// writeIntValue picks the narrowest of Int8/16/32/64Text that can hold v.
func writeIntValue(w *sink, v int64, withEnd bool) error {
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		if err := w.WriteByte(byte(Int8Text) + endBit(withEnd)); err != nil {
			return err
		}
		return w.WriteByte(byte(int8(v)))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		if err := w.WriteByte(byte(Int16Text) + endBit(withEnd)); err != nil {
			return err
		}
		return w.writeUint16LE(uint16(int16(v)))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		if err := w.WriteByte(byte(Int32Text) + endBit(withEnd)); err != nil {
			return err
		}
		return w.writeUint32LE(uint32(int32(v)))
	default:
		if err := w.WriteByte(byte(Int64Text) + endBit(withEnd)); err != nil {
			return err
		}
		return w.writeUint64LE(uint64(v))
	}
}

func writeStringValue(w *sink, str string, withEnd bool) error {
	if id, ok := parseDictionaryToken(str); ok {
		if err := w.WriteByte(byte(DictionaryText) + endBit(withEnd)); err != nil {
			return err
		}
		return writeMultiByteInt31(w, id)
	}

	payload := []byte(str)
	chosen := chooseFixedLengthWidth(len(payload), Chars8Text, Chars16Text, Chars32Text)
	if err := w.WriteByte(byte(chosen) + endBit(withEnd)); err != nil {
		return err
	}
	return writeFixedLengthText(w, payload, chosen, Chars8Text, Chars16Text)
}

func writeBytesValue(w *sink, payload []byte, withEnd bool) error {
	chosen := chooseFixedLengthWidth(len(payload), Bytes8Text, Bytes16Text, Bytes32Text)
	if err := w.WriteByte(byte(chosen) + endBit(withEnd)); err != nil {
		return err
	}
	return writeFixedLengthText(w, payload, chosen, Bytes8Text, Bytes16Text)
}
