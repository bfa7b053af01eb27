package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapResolver_Resolve(t *testing.T) {
	r := MapResolver{1: "foo", 2: "bar"}

	s, ok := r.Resolve(1)
	assert.True(t, ok)
	assert.Equal(t, "foo", s)

	_, ok = r.Resolve(99)
	assert.False(t, ok)
}

func TestMapDictionary_RoundTrip(t *testing.T) {
	d := NewMapDictionary(map[uint32]string{1: "foo", 2: "bar"})

	s, ok := d.Resolve(2)
	assert.True(t, ok)
	assert.Equal(t, "bar", s)

	id, ok := d.ResolveID("foo")
	assert.True(t, ok)
	assert.Equal(t, uint32(1), id)

	_, ok = d.ResolveID("missing")
	assert.False(t, ok)
}

func TestMapDictionary_DuplicateStringsKeepLowestID(t *testing.T) {
	d := NewMapDictionary(map[uint32]string{5: "dup", 2: "dup"})
	id, ok := d.ResolveID("dup")
	assert.True(t, ok)
	assert.Equal(t, uint32(2), id)
}
