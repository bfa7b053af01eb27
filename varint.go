package nbfx

import "io"

// maxVarintBytes is the maximum number of bytes a MultiByteInt31 may occupy.
// Five base-128 groups give 35 payload bits, of which only the low 31 are
// ever valid; a sixth continuation byte is always malformed.
const maxVarintBytes = 5

// maxVarintValue is the largest value a MultiByteInt31 may encode (2^31 - 1).
const maxVarintValue = 1<<31 - 1

// readMultiByteInt31 decodes an unsigned base-128 little-endian
// variable-length integer (continuation bit in the high bit of each byte)
// from r. It fails with ErrTruncated if r runs out of bytes mid-sequence,
// and ErrMalformedVarint if the sequence exceeds 5 bytes or encodes a value
// larger than 2^31-1.
func readMultiByteInt31(r io.ByteReader) (uint32, error) {
	var result uint64
	for i := 0; i < maxVarintBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncated
		}
		result |= uint64(b&0x7F) << uint(7*i)
		if b&0x80 == 0 {
			if result > maxVarintValue {
				return 0, ErrMalformedVarint
			}
			return uint32(result), nil
		}
	}
	return 0, ErrMalformedVarint
}

// writeMultiByteInt31 encodes v using the minimal base-128 little-endian
// byte sequence. The caller is responsible for ensuring v <= 2^31-1; this
// codec never constructs a larger value internally (string/name lengths are
// bounded well below it in practice).
func writeMultiByteInt31(w io.ByteWriter, v uint32) error {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}
