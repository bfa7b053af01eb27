package nbfx

import (
	"fmt"
	"strconv"
	"time"
)

// ValueKind discriminates the tagged union stored in Value.
type ValueKind uint8

// The value kinds supported by this implementation. Decimal is part of the
// MC-NBFX grammar but is not implemented here (see DESIGN.md); accessors and
// constructors for it are deliberately absent, matching the reference
// implementation's treatment of it as Unsupported.
const (
	KindNull ValueKind = iota
	KindBoolean
	KindInt64
	KindUInt64
	KindFloat32
	KindFloat64
	KindDateTime
	KindString
	KindBytes
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInt64:
		return "Int64"
	case KindUInt64:
		return "UInt64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindDateTime:
		return "DateTime"
	case KindString:
		return "String"
	case KindBytes:
		return "Bytes"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is a tagged union over the value kinds a text record can carry.
// It is a plain struct rather than an interface{} payload so that typed
// accessors are allocation-free and tag mismatches are cheap to detect, in
// the spirit of the element-value dispatch this codec is adapted from.
type Value struct {
	kind ValueKind
	b    bool
	i64  int64
	u64  uint64
	f32  float32
	f64  float64
	t    time.Time
	s    string
	by   []byte
}

// NullValue returns the Null value.
func NullValue() Value { return Value{kind: KindNull} }

// BoolValue returns a Boolean value.
func BoolValue(v bool) Value { return Value{kind: KindBoolean, b: v} }

// Int64Value returns an Int64 value.
func Int64Value(v int64) Value { return Value{kind: KindInt64, i64: v} }

// UInt64Value returns a UInt64 value.
func UInt64Value(v uint64) Value { return Value{kind: KindUInt64, u64: v} }

// Float32Value returns a Float32 value.
func Float32Value(v float32) Value { return Value{kind: KindFloat32, f32: v} }

// Float64Value returns a Float64 value.
func Float64Value(v float64) Value { return Value{kind: KindFloat64, f64: v} }

// DateTimeValue returns a DateTime value. The time is normalized to UTC
// internally; see datetime.go for the wire-tick conversion.
func DateTimeValue(v time.Time) Value { return Value{kind: KindDateTime, t: v.UTC()} }

// StringValue returns a String value.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// BytesValue returns a Bytes value. The slice is stored by reference; callers
// must not mutate it afterwards.
func BytesValue(v []byte) Value { return Value{kind: KindBytes, by: v} }

// Kind returns the value's tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull returns whether the value is the Null tag.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, failing if the tag is not Boolean.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBoolean {
		return false, typeMismatchError(KindBoolean, v.kind)
	}
	return v.b, nil
}

// Int64 returns the signed integer payload, failing if the tag is not Int64.
func (v Value) Int64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, typeMismatchError(KindInt64, v.kind)
	}
	return v.i64, nil
}

// UInt64 returns the unsigned integer payload, failing if the tag is not UInt64.
func (v Value) UInt64() (uint64, error) {
	if v.kind != KindUInt64 {
		return 0, typeMismatchError(KindUInt64, v.kind)
	}
	return v.u64, nil
}

// Float32 returns the single-precision payload, failing if the tag is not Float32.
func (v Value) Float32() (float32, error) {
	if v.kind != KindFloat32 {
		return 0, typeMismatchError(KindFloat32, v.kind)
	}
	return v.f32, nil
}

// Float64 returns the double-precision payload, failing if the tag is not Float64.
func (v Value) Float64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, typeMismatchError(KindFloat64, v.kind)
	}
	return v.f64, nil
}

// DateTime returns the timestamp payload (UTC), failing if the tag is not DateTime.
func (v Value) DateTime() (time.Time, error) {
	if v.kind != KindDateTime {
		return time.Time{}, typeMismatchError(KindDateTime, v.kind)
	}
	return v.t, nil
}

// Str returns the string payload, failing if the tag is not String.
// (Named Str, not String, to leave String() available as fmt.Stringer.)
func (v Value) Str() (string, error) {
	if v.kind != KindString {
		return "", typeMismatchError(KindString, v.kind)
	}
	return v.s, nil
}

// Bytes returns the byte-slice payload, failing if the tag is not Bytes.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, typeMismatchError(KindBytes, v.kind)
	}
	return v.by, nil
}

// appendBytes appends more bytes to an existing Bytes value, implementing
// the bytes-chunk continuation rule: a second consecutive Bytes*Text record
// extends the element's value instead of replacing it. The receiver must
// already be a non-empty Bytes value.
func (v *Value) appendBytes(more []byte) {
	v.by = append(v.by, more...)
}

// ToString renders a lossy, human-readable form of the value for
// diagnostics and tests. It is not a wire format.
func (v Value) ToString() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindInt64:
		return strconv.FormatInt(v.i64, 10)
	case KindUInt64:
		return strconv.FormatUint(v.u64, 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindDateTime:
		return v.t.Format(time.RFC3339Nano)
	case KindString:
		return v.s
	case KindBytes:
		return fmt.Sprintf("%x", v.by)
	default:
		return ""
	}
}
