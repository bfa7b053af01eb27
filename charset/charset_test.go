package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_DefaultFallback(t *testing.T) {
	assert.Same(t, Registry["Default"], Lookup(""))
	assert.Same(t, Registry["Default"], Lookup("nonexistent-charset"))
}

func TestTranscoder_UTF8RoundTrip(t *testing.T) {
	tr := Lookup("Default")
	encoded, err := tr.Encode("hello")
	require.NoError(t, err)
	decoded, err := tr.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "hello", decoded)
}

func TestTranscoder_ISO88591(t *testing.T) {
	tr := Lookup("ISO-8859-1")
	require.NotNil(t, tr)
	encoded, err := tr.Encode("café")
	require.NoError(t, err)
	decoded, err := tr.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "café", decoded)
}

func TestTranscoder_NilPassesThrough(t *testing.T) {
	var tr *Transcoder
	decoded, err := tr.Decode([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, "raw", decoded)

	encoded, err := tr.Encode("raw")
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), encoded)
}
