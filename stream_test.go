package nbfx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_ReadByteTracksPosition(t *testing.T) {
	s := newStream(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	defer s.release()

	b, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)
	assert.Equal(t, int64(1), s.Pos())
}

func TestStream_UnreadByte(t *testing.T) {
	s := newStream(bytes.NewReader([]byte{0x01, 0x02}))
	defer s.release()

	first, err := s.ReadByte()
	require.NoError(t, err)
	require.NoError(t, s.UnreadByte())
	assert.Equal(t, int64(0), s.Pos())

	again, err := s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestStream_ReadFull_Truncated(t *testing.T) {
	s := newStream(bytes.NewReader([]byte{0x01}))
	defer s.release()

	_, err := s.readFull(4)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestStream_FixedWidthReads(t *testing.T) {
	s := newStream(bytes.NewReader([]byte{0xFF, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}))
	defer s.release()

	u8, err := s.readUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), u8)

	u16, err := s.readUint16LE()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), u16)

	u32, err := s.readUint32LE()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x06050403), u32)

	_, err = s.readUint64LE()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSink_WriteAndFlush(t *testing.T) {
	var buf bytes.Buffer
	sk := newSink(&buf)
	require.NoError(t, sk.WriteByte(0x01))
	require.NoError(t, sk.writeUint16LE(0x0201))
	require.NoError(t, sk.writeUint32LE(0x07060504))
	require.NoError(t, sk.writeUint64LE(0x0807060504030201))
	require.NoError(t, sk.flush())

	assert.Equal(t, []byte{
		0x01,
		0x01, 0x02,
		0x04, 0x05, 0x06, 0x07,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}, buf.Bytes())
}
