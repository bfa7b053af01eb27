package nbfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSampleTree exercises every implemented Value kind across a small,
// nested, multi-attribute tree.
func buildSampleTree() *Element {
	root := NewElement(QName("s", "Envelope"))
	root.AddAttribute(Attr{Name: QName("", "xmlns"), Value: StringValue("http://example/ns")})

	body := NewElement(QName("s", "Body"))
	root.AddChild(body)

	req := NewElement(QName("", "Request"))
	req.AddAttribute(Attr{Name: QName("", "id"), Value: Int64Value(-12345)})
	body.AddChild(req)

	flag := NewElement(QName("", "Flag"))
	flag.Value = BoolValue(true)
	req.AddChild(flag)

	count := NewElement(QName("", "Count"))
	count.Value = UInt64Value(9001)
	req.AddChild(count)

	ratio := NewElement(QName("", "Ratio"))
	ratio.Value = Float32Value(3.5)
	req.AddChild(ratio)

	precise := NewElement(QName("", "Precise"))
	precise.Value = Float64Value(2.71828)
	req.AddChild(precise)

	issued := NewElement(QName("", "Issued"))
	issued.Value = DateTimeValue(time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC))
	req.AddChild(issued)

	name := NewElement(QName("", "Name"))
	name.Value = StringValue("hello, world")
	req.AddChild(name)

	payload := NewElement(QName("", "Payload"))
	payload.Value = BytesValue([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	req.AddChild(payload)

	return root
}

func assertTreesEqual(t *testing.T, want, got *Element) {
	t.Helper()
	require.True(t, want.Name.Equal(got.Name), "name mismatch: %s != %s", want.Name, got.Name)
	assert.Equal(t, want.Value.Kind(), got.Value.Kind())
	assert.Equal(t, want.Value.ToString(), got.Value.ToString())
	require.Len(t, got.Attributes, len(want.Attributes))
	for i := range want.Attributes {
		assert.True(t, want.Attributes[i].Name.Equal(got.Attributes[i].Name))
		assert.Equal(t, want.Attributes[i].Value.ToString(), got.Attributes[i].Value.ToString())
	}
	require.Len(t, got.Children, len(want.Children))
	for i := range want.Children {
		assertTreesEqual(t, want.Children[i], got.Children[i])
	}
}

func TestRoundTrip_SerializeParse(t *testing.T) {
	want := buildSampleTree()

	data, err := SerializeToBytes(want, false)
	require.NoError(t, err)

	got, err := ParseBytes(data)
	require.NoError(t, err)

	assertTreesEqual(t, want, got)
}

func TestRoundTrip_DoubleSerializeIdempotence(t *testing.T) {
	tree := buildSampleTree()

	first, err := SerializeToBytes(tree, false)
	require.NoError(t, err)

	parsed, err := ParseBytes(first)
	require.NoError(t, err)

	second, err := SerializeToBytes(parsed, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoundTrip_DoubleSerializeIdempotence_SortMembers(t *testing.T) {
	tree := buildSampleTree()

	first, err := SerializeToBytes(tree, true)
	require.NoError(t, err)

	parsed, err := ParseBytes(first)
	require.NoError(t, err)

	second, err := SerializeToBytes(parsed, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoundTrip_CanonicalTypeIgnoresStoredType(t *testing.T) {
	// A tree built with a deliberately wrong stored Type still round-trips,
	// because the serializer recomputes the type from (prefix, name).
	el := &Element{Type: RecordType(0), Name: QName("pre", "doc"), Value: NullValue()}
	data, err := SerializeToBytes(el, false)
	require.NoError(t, err)

	got, err := ParseBytes(data)
	require.NoError(t, err)
	assert.True(t, el.Name.Equal(got.Name))
}
