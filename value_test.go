package nbfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Constructors(t *testing.T) {
	assert.Equal(t, KindNull, NullValue().Kind())
	assert.True(t, NullValue().IsNull())

	b := BoolValue(true)
	got, err := b.Bool()
	require.NoError(t, err)
	assert.True(t, got)

	i := Int64Value(-42)
	iv, err := i.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), iv)

	u := UInt64Value(42)
	uv, err := u.UInt64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uv)

	f32 := Float32Value(1.5)
	f32v, err := f32.Float32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32v)

	f64 := Float64Value(2.5)
	f64v, err := f64.Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f64v)

	now := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	dt := DateTimeValue(now)
	dtv, err := dt.DateTime()
	require.NoError(t, err)
	assert.True(t, now.Equal(dtv))

	s := StringValue("hello")
	sv, err := s.Str()
	require.NoError(t, err)
	assert.Equal(t, "hello", sv)

	by := BytesValue([]byte{1, 2, 3})
	byv, err := by.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, byv)
}

func TestValue_TypeMismatch(t *testing.T) {
	v := Int64Value(5)
	_, err := v.Str()
	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, KindString, mismatch.Expected)
	assert.Equal(t, KindInt64, mismatch.Actual)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestValue_AppendBytes(t *testing.T) {
	v := BytesValue([]byte{1, 2})
	v.appendBytes([]byte{3, 4})
	got, err := v.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestValue_ToString(t *testing.T) {
	assert.Equal(t, "", NullValue().ToString())
	assert.Equal(t, "true", BoolValue(true).ToString())
	assert.Equal(t, "-7", Int64Value(-7).ToString())
	assert.Equal(t, "7", UInt64Value(7).ToString())
	assert.Equal(t, "hello", StringValue("hello").ToString())
	assert.Equal(t, "0102ff", BytesValue([]byte{1, 2, 0xff}).ToString())
}
