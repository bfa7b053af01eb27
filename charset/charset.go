// Package charset is a transcoding collaborator for consumers that need to
// interpret element/attribute text as something other than its wire
// encoding. MC-NBFX itself only ever puts UTF-8 on the wire (the core nbfx
// codec has no notion of a character set), but callers bridging to systems
// that tag their strings with a legacy character-set name - the way a SOAP
// intermediary or a downstream consumer sometimes does - need a place to
// look that name up and get a working encoding.Encoding out of it.
//
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Transcoder links a human-readable character-set name to its
// encoding.Encoding, lazily instantiating the decoder/encoder pair on first
// use and reusing them after that.
type Transcoder struct {
	Name        string
	Description string
	Encoding    encoding.Encoding

	decoder *encoding.Decoder
	encoder *encoding.Encoder
}

// Decode converts src from this Transcoder's encoding into a UTF-8 string.
// A nil Transcoder (or one with a nil Encoding) passes src through
// unchanged.
func (t *Transcoder) Decode(src []byte) (string, error) {
	if t == nil || t.Encoding == nil {
		return string(src), nil
	}
	if t.decoder == nil {
		t.decoder = t.Encoding.NewDecoder()
	}
	decoded, err := t.decoder.Bytes(src)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Encode converts s from UTF-8 into this Transcoder's encoding. A nil
// Transcoder passes s through unchanged.
func (t *Transcoder) Encode(s string) ([]byte, error) {
	if t == nil || t.Encoding == nil {
		return []byte(s), nil
	}
	if t.encoder == nil {
		t.encoder = t.Encoding.NewEncoder()
	}
	return t.encoder.Bytes([]byte(s))
}

// Registry maps a character-set name to its Transcoder. "Default" is plain
// UTF-8, which is what every conforming MC-NBFX producer already puts on the
// wire; the rest are here so a consuming application can transcode text it
// received tagged with one of these names from some other layer of its
// protocol stack.
var Registry = map[string]*Transcoder{
	"Default":  {Name: "Default", Description: "UTF-8", Encoding: unicode.UTF8},
	"UTF-8":    {Name: "UTF-8", Description: "UTF-8", Encoding: unicode.UTF8},
	"US-ASCII": {Name: "US-ASCII", Description: "ASCII", Encoding: unicode.UTF8},

	"ISO-8859-1": {Name: "ISO-8859-1", Description: "Latin alphabet No. 1", Encoding: charmap.ISO8859_1},
	"ISO-8859-2": {Name: "ISO-8859-2", Description: "Latin alphabet No. 2", Encoding: charmap.ISO8859_2},
	"ISO-8859-3": {Name: "ISO-8859-3", Description: "Latin alphabet No. 3", Encoding: charmap.ISO8859_3},
	"ISO-8859-4": {Name: "ISO-8859-4", Description: "Latin alphabet No. 4", Encoding: charmap.ISO8859_4},
	"ISO-8859-5": {Name: "ISO-8859-5", Description: "Cyrillic", Encoding: charmap.ISO8859_5},
	"ISO-8859-6": {Name: "ISO-8859-6", Description: "Arabic", Encoding: charmap.ISO8859_6},
	"ISO-8859-7": {Name: "ISO-8859-7", Description: "Greek", Encoding: charmap.ISO8859_7},
	"ISO-8859-8": {Name: "ISO-8859-8", Description: "Hebrew", Encoding: charmap.ISO8859_8},
	"ISO-8859-9": {Name: "ISO-8859-9", Description: "Latin alphabet No. 5", Encoding: charmap.ISO8859_9},

	"Shift_JIS": {Name: "Shift_JIS", Description: "Japanese", Encoding: japanese.ShiftJIS},
	"ISO-2022-JP": {Name: "ISO-2022-JP", Description: "Japanese", Encoding: japanese.ISO2022JP},
	"EUC-KR":    {Name: "EUC-KR", Description: "Korean", Encoding: korean.EUCKR},
	"GB18030":   {Name: "GB18030", Description: "Chinese (Simplified)", Encoding: simplifiedchinese.GB18030},
	"Windows-874": {Name: "Windows-874", Description: "Thai", Encoding: charmap.Windows874},
}

// Lookup returns the named Transcoder, or the Default one (UTF-8) if name is
// empty or unrecognized.
func Lookup(name string) *Transcoder {
	if name == "" {
		return Registry["Default"]
	}
	if t, ok := Registry[name]; ok {
		return t
	}
	return Registry["Default"]
}
