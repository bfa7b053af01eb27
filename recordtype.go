package nbfx

import "fmt"

// RecordType is the single-byte discriminator found at the head of every
// MC-NBFX record. Its numeric values are part of the wire contract: do not
// renumber them.
type RecordType uint8

// Record type constants, grouped as per the MC-NBFX grammar. Lettered groups
// (PrefixElement, PrefixDictionaryElement, PrefixAttribute,
// PrefixDictionaryAttribute) only list their 'A' and 'Z' members, the bounds
// of each range; the members in between are reached by offset arithmetic
// (see PrefixLetter).
const (
	EndElement RecordType = 0x01
	Comment    RecordType = 0x02
	Array      RecordType = 0x03

	ShortAttribute                RecordType = 0x04
	Attribute                     RecordType = 0x05
	ShortDictionaryAttribute      RecordType = 0x06
	DictionaryAttribute           RecordType = 0x07
	ShortXmlnsAttribute           RecordType = 0x08
	XmlnsAttribute                RecordType = 0x09
	ShortDictionaryXmlnsAttribute RecordType = 0x0A
	DictionaryXmlnsAttribute      RecordType = 0x0B

	PrefixDictionaryAttributeA RecordType = 0x0C
	PrefixDictionaryAttributeZ RecordType = 0x25

	PrefixAttributeA RecordType = 0x26
	PrefixAttributeZ RecordType = 0x3F

	ShortElement           RecordType = 0x40
	QualifiedElement       RecordType = 0x41
	ShortDictionaryElement RecordType = 0x42
	DictionaryElement      RecordType = 0x43

	PrefixDictionaryElementA RecordType = 0x44
	PrefixDictionaryElementZ RecordType = 0x5D

	PrefixElementA RecordType = 0x5E
	PrefixElementZ RecordType = 0x77

	ZeroText                   RecordType = 0x80
	ZeroTextWithEnd            RecordType = 0x81
	OneText                    RecordType = 0x82
	OneTextWithEnd             RecordType = 0x83
	FalseText                  RecordType = 0x84
	FalseTextWithEnd           RecordType = 0x85
	TrueText                   RecordType = 0x86
	TrueTextWithEnd            RecordType = 0x87
	Int8Text                   RecordType = 0x88
	Int8TextWithEnd            RecordType = 0x89
	Int16Text                  RecordType = 0x8A
	Int16TextWithEnd           RecordType = 0x8B
	Int32Text                  RecordType = 0x8C
	Int32TextWithEnd           RecordType = 0x8D
	Int64Text                  RecordType = 0x8E
	Int64TextWithEnd           RecordType = 0x8F
	FloatText                  RecordType = 0x90
	FloatTextWithEnd           RecordType = 0x91
	DoubleText                 RecordType = 0x92
	DoubleTextWithEnd          RecordType = 0x93
	DecimalText                RecordType = 0x94
	DecimalTextWithEnd         RecordType = 0x95
	DateTimeText               RecordType = 0x96
	DateTimeTextWithEnd        RecordType = 0x97
	Chars8Text                 RecordType = 0x98
	Chars8TextWithEnd          RecordType = 0x99
	Chars16Text                RecordType = 0x9A
	Chars16TextWithEnd         RecordType = 0x9B
	Chars32Text                RecordType = 0x9C
	Chars32TextWithEnd         RecordType = 0x9D
	Bytes8Text                 RecordType = 0x9E
	Bytes8TextWithEnd          RecordType = 0x9F
	Bytes16Text                RecordType = 0xA0
	Bytes16TextWithEnd         RecordType = 0xA1
	Bytes32Text                RecordType = 0xA2
	Bytes32TextWithEnd         RecordType = 0xA3
	StartListText              RecordType = 0xA4
	EndListText                RecordType = 0xA6
	EmptyText                  RecordType = 0xA8
	EmptyTextWithEnd           RecordType = 0xA9
	DictionaryText             RecordType = 0xAA
	DictionaryTextWithEnd      RecordType = 0xAB
	UniqueIDText               RecordType = 0xAC
	UniqueIDTextWithEnd        RecordType = 0xAD
	TimeSpanText               RecordType = 0xAE
	TimeSpanTextWithEnd        RecordType = 0xAF
	UuidText                   RecordType = 0xB0
	UuidTextWithEnd            RecordType = 0xB1
	UInt64Text                 RecordType = 0xB2
	UInt64TextWithEnd          RecordType = 0xB3
	BoolText                   RecordType = 0xB4
	BoolTextWithEnd            RecordType = 0xB5
	UnicodeChars8Text          RecordType = 0xB6
	UnicodeChars8TextWithEnd   RecordType = 0xB7
	UnicodeChars16Text         RecordType = 0xB8
	UnicodeChars16TextWithEnd  RecordType = 0xB9
	UnicodeChars32Text         RecordType = 0xBA
	UnicodeChars32TextWithEnd  RecordType = 0xBB
	QNameDictionaryText        RecordType = 0xBC
	QNameDictionaryTextWithEnd RecordType = 0xBD
)

// IsElement returns whether t lies in the element record range.
func (t RecordType) IsElement() bool {
	return t >= ShortElement && t <= PrefixElementZ
}

// IsAttribute returns whether t lies in the attribute record range.
func (t RecordType) IsAttribute() bool {
	return t >= ShortAttribute && t <= PrefixAttributeZ
}

// IsTextRecord returns whether t lies in the text record range.
func (t RecordType) IsTextRecord() bool {
	return t >= ZeroText && t <= QNameDictionaryTextWithEnd
}

// HasEndElement returns whether t is the odd-coded "with-end-element"
// variant of a text record. Only meaningful when IsTextRecord(t).
func (t RecordType) HasEndElement() bool {
	return t&1 == 1
}

// Canonical strips the "with-end-element" bit from a text record code,
// returning the even-numbered base code shared by both variants.
func (t RecordType) Canonical() RecordType {
	return t &^ 1
}

// isPrefixDictionaryElement, isPrefixElement, isPrefixDictionaryAttribute and
// isPrefixAttribute report membership of the four "single lowercase letter
// prefix" lettered groups.
func (t RecordType) isPrefixDictionaryElement() bool {
	return t >= PrefixDictionaryElementA && t <= PrefixDictionaryElementZ
}

func (t RecordType) isPrefixElement() bool {
	return t >= PrefixElementA && t <= PrefixElementZ
}

func (t RecordType) isPrefixDictionaryAttribute() bool {
	return t >= PrefixDictionaryAttributeA && t <= PrefixDictionaryAttributeZ
}

func (t RecordType) isPrefixAttribute() bool {
	return t >= PrefixAttributeA && t <= PrefixAttributeZ
}

// PrefixLetter returns the single lowercase ASCII prefix letter implied by a
// lettered element/attribute record type, and whether t belongs to one of
// the four lettered groups at all.
func (t RecordType) PrefixLetter() (byte, bool) {
	switch {
	case t.isPrefixDictionaryElement():
		return 'a' + byte(t-PrefixDictionaryElementA), true
	case t.isPrefixElement():
		return 'a' + byte(t-PrefixElementA), true
	case t.isPrefixDictionaryAttribute():
		return 'a' + byte(t-PrefixDictionaryAttributeA), true
	case t.isPrefixAttribute():
		return 'a' + byte(t-PrefixAttributeA), true
	default:
		return 0, false
	}
}

// PrefixElementForLetter returns the PrefixElement{X} record type for the
// given lowercase ASCII letter. The caller must ensure c is in 'a'..'z'.
func PrefixElementForLetter(c byte) RecordType {
	return PrefixElementA + RecordType(c-'a')
}

// PrefixAttributeForLetter returns the PrefixAttribute{X} record type for the
// given lowercase ASCII letter. The caller must ensure c is in 'a'..'z'.
func PrefixAttributeForLetter(c byte) RecordType {
	return PrefixAttributeA + RecordType(c-'a')
}

// String renders a human-readable name for t. Members of the lettered groups
// get a generated name such as "PrefixElementQ"; codes with no assigned
// meaning fall back to their hex value.
func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	if letter, ok := t.PrefixLetter(); ok {
		switch {
		case t.isPrefixElement():
			return fmt.Sprintf("PrefixElement%c", letter-'a'+'A')
		case t.isPrefixDictionaryElement():
			return fmt.Sprintf("PrefixDictionaryElement%c", letter-'a'+'A')
		case t.isPrefixAttribute():
			return fmt.Sprintf("PrefixAttribute%c", letter-'a'+'A')
		case t.isPrefixDictionaryAttribute():
			return fmt.Sprintf("PrefixDictionaryAttribute%c", letter-'a'+'A')
		}
	}
	return fmt.Sprintf("RecordType(0x%02X)", uint8(t))
}

var recordTypeNames = map[RecordType]string{
	EndElement:                    "EndElement",
	Comment:                       "Comment",
	Array:                         "Array",
	ShortAttribute:                "ShortAttribute",
	Attribute:                     "Attribute",
	ShortDictionaryAttribute:      "ShortDictionaryAttribute",
	DictionaryAttribute:           "DictionaryAttribute",
	ShortXmlnsAttribute:           "ShortXmlnsAttribute",
	XmlnsAttribute:                "XmlnsAttribute",
	ShortDictionaryXmlnsAttribute: "ShortDictionaryXmlnsAttribute",
	DictionaryXmlnsAttribute:      "DictionaryXmlnsAttribute",
	ShortElement:                  "ShortElement",
	QualifiedElement:              "Element",
	ShortDictionaryElement:        "ShortDictionaryElement",
	DictionaryElement:             "DictionaryElement",
	ZeroText:                      "ZeroText",
	ZeroTextWithEnd:               "ZeroTextWithEnd",
	OneText:                       "OneText",
	OneTextWithEnd:                "OneTextWithEnd",
	FalseText:                     "FalseText",
	FalseTextWithEnd:              "FalseTextWithEnd",
	TrueText:                      "TrueText",
	TrueTextWithEnd:               "TrueTextWithEnd",
	Int8Text:                      "Int8Text",
	Int8TextWithEnd:               "Int8TextWithEnd",
	Int16Text:                     "Int16Text",
	Int16TextWithEnd:              "Int16TextWithEnd",
	Int32Text:                     "Int32Text",
	Int32TextWithEnd:              "Int32TextWithEnd",
	Int64Text:                     "Int64Text",
	Int64TextWithEnd:              "Int64TextWithEnd",
	FloatText:                     "FloatText",
	FloatTextWithEnd:              "FloatTextWithEnd",
	DoubleText:                    "DoubleText",
	DoubleTextWithEnd:             "DoubleTextWithEnd",
	DecimalText:                   "DecimalText",
	DecimalTextWithEnd:            "DecimalTextWithEnd",
	DateTimeText:                  "DateTimeText",
	DateTimeTextWithEnd:           "DateTimeTextWithEnd",
	Chars8Text:                    "Chars8Text",
	Chars8TextWithEnd:             "Chars8TextWithEnd",
	Chars16Text:                   "Chars16Text",
	Chars16TextWithEnd:            "Chars16TextWithEnd",
	Chars32Text:                   "Chars32Text",
	Chars32TextWithEnd:            "Chars32TextWithEnd",
	Bytes8Text:                    "Bytes8Text",
	Bytes8TextWithEnd:             "Bytes8TextWithEnd",
	Bytes16Text:                   "Bytes16Text",
	Bytes16TextWithEnd:            "Bytes16TextWithEnd",
	Bytes32Text:                   "Bytes32Text",
	Bytes32TextWithEnd:            "Bytes32TextWithEnd",
	StartListText:                 "StartListText",
	EndListText:                   "EndListText",
	EmptyText:                     "EmptyText",
	EmptyTextWithEnd:              "EmptyTextWithEnd",
	DictionaryText:                "DictionaryText",
	DictionaryTextWithEnd:         "DictionaryTextWithEnd",
	UniqueIDText:                  "UniqueIDText",
	UniqueIDTextWithEnd:           "UniqueIDTextWithEnd",
	TimeSpanText:                  "TimeSpanText",
	TimeSpanTextWithEnd:           "TimeSpanTextWithEnd",
	UuidText:                      "UuidText",
	UuidTextWithEnd:               "UuidTextWithEnd",
	UInt64Text:                    "UInt64Text",
	UInt64TextWithEnd:             "UInt64TextWithEnd",
	BoolText:                      "BoolText",
	BoolTextWithEnd:               "BoolTextWithEnd",
	UnicodeChars8Text:             "UnicodeChars8Text",
	UnicodeChars8TextWithEnd:      "UnicodeChars8TextWithEnd",
	UnicodeChars16Text:            "UnicodeChars16Text",
	UnicodeChars16TextWithEnd:     "UnicodeChars16TextWithEnd",
	UnicodeChars32Text:            "UnicodeChars32Text",
	UnicodeChars32TextWithEnd:     "UnicodeChars32TextWithEnd",
	QNameDictionaryText:           "QNameDictionaryText",
	QNameDictionaryTextWithEnd:    "QNameDictionaryTextWithEnd",
}
