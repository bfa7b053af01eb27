package nbfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordType_Ranges(t *testing.T) {
	assert.True(t, ShortElement.IsElement())
	assert.True(t, PrefixElementZ.IsElement())
	assert.False(t, EndElement.IsElement())

	assert.True(t, ShortAttribute.IsAttribute())
	assert.True(t, PrefixAttributeZ.IsAttribute())
	assert.False(t, ShortElement.IsAttribute())

	assert.True(t, ZeroText.IsTextRecord())
	assert.True(t, QNameDictionaryTextWithEnd.IsTextRecord())
	assert.False(t, EndElement.IsTextRecord())
}

func TestRecordType_HasEndElementAndCanonical(t *testing.T) {
	assert.False(t, Int8Text.HasEndElement())
	assert.True(t, Int8TextWithEnd.HasEndElement())
	assert.Equal(t, Int8Text, Int8TextWithEnd.Canonical())
	assert.Equal(t, Int8Text, Int8Text.Canonical())
}

func TestRecordType_PrefixLetter(t *testing.T) {
	letter, ok := PrefixElementForLetter('q').PrefixLetter()
	assert.True(t, ok)
	assert.Equal(t, byte('q'), letter)

	letter, ok = PrefixAttributeForLetter('z').PrefixLetter()
	assert.True(t, ok)
	assert.Equal(t, byte('z'), letter)

	_, ok = ShortElement.PrefixLetter()
	assert.False(t, ok)
}

func TestRecordType_String(t *testing.T) {
	assert.Equal(t, "ShortElement", ShortElement.String())
	assert.Equal(t, "Element", QualifiedElement.String())
	assert.Equal(t, "PrefixElementQ", PrefixElementForLetter('q').String())
	assert.Contains(t, RecordType(0xFE).String(), "RecordType(0x")
}
