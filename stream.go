package nbfx

import (
	"bufio"
	"encoding/binary"
	"io"
	"sync"
)

// readerPool recycles bufio.Readers sized at the configured read buffer
// size, avoiding a fresh allocation per Parse call under sustained load.
var readerPool = sync.Pool{
	New: func() interface{} { return bufio.NewReaderSize(nil, GetConfig().ReadBufferSize) },
}

// stream is a forward-only cursor over the input with a running byte offset,
// so that every decode error can report exactly where in the input it
// occurred.
type stream struct {
	r      *bufio.Reader
	pos    int64
	pooled bool
}

// newStream wraps r in a bufio.Reader sized per the process-wide Config. If
// that size matches the pool's size, a pooled reader is reused; otherwise a
// reader is allocated fresh. The caller must call release when done.
func newStream(r io.Reader) *stream {
	size := GetConfig().ReadBufferSize
	if size == defaultReadBufferSize {
		br := readerPool.Get().(*bufio.Reader)
		br.Reset(r)
		return &stream{r: br, pooled: true}
	}
	return &stream{r: bufio.NewReaderSize(r, size)}
}

// release returns the underlying bufio.Reader to the pool when it came from
// one. The stream must not be used afterwards.
func (s *stream) release() {
	if !s.pooled {
		return
	}
	s.r.Reset(nil)
	readerPool.Put(s.r)
}

// Pos returns the number of bytes consumed so far.
func (s *stream) Pos() int64 { return s.pos }

// ReadByte implements io.ByteReader, advancing pos on success.
func (s *stream) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, err
	}
	s.pos++
	return b, nil
}

// UnreadByte implements io.ByteScanner, stepping pos back by one. The parser
// does not call it: a fused TextWithEnd record closes its element directly
// via popElement.
func (s *stream) UnreadByte() error {
	if err := s.r.UnreadByte(); err != nil {
		return err
	}
	s.pos--
	return nil
}

// readFull reads exactly n bytes, translating any short read into
// ErrTruncated.
func (s *stream) readFull(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(s.r, buf)
	s.pos += int64(read)
	if err != nil {
		return nil, ErrTruncated
	}
	return buf, nil
}

func (s *stream) readUint8() (uint8, error) {
	b, err := s.ReadByte()
	if err != nil {
		return 0, ErrTruncated
	}
	return b, nil
}

func (s *stream) readUint16LE() (uint16, error) {
	buf, err := s.readFull(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func (s *stream) readUint32LE() (uint32, error) {
	buf, err := s.readFull(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (s *stream) readUint64LE() (uint64, error) {
	buf, err := s.readFull(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// sink is the serializer's write-side counterpart to stream: a buffered
// writer with the small fixed-width helpers the record encoders need.
type sink struct {
	w *bufio.Writer
}

func newSink(w io.Writer) *sink {
	return &sink{w: bufio.NewWriterSize(w, 4096)}
}

func (s *sink) WriteByte(b byte) error { return s.w.WriteByte(b) }

func (s *sink) write(b []byte) error {
	_, err := s.w.Write(b)
	return err
}

func (s *sink) writeUint16LE(v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return s.write(buf[:])
}

func (s *sink) writeUint32LE(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return s.write(buf[:])
}

func (s *sink) writeUint64LE(v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return s.write(buf[:])
}

func (s *sink) flush() error { return s.w.Flush() }
