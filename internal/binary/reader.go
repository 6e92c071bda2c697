// Package binary provides bounds-checked binary reading primitives for the
// container walkers.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Unsigned is the set of fixed-size values the readers decode.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: offset %d out of bounds (size: %d) while reading %s",
			sr.path, off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
			sr.path, len(b), off, sr.size, what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Bytes reads n bytes at off into a new slice.
func (sr *SafeReader) Bytes(off int64, n int, what string) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: negative length %d while reading %s", sr.path, n, what)
	}
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// Read reads a big-endian value of type T from the given offset.
func Read[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	return readOrder[T](sr, off, what, binary.BigEndian)
}

// ReadLE reads a little-endian value of type T from the given offset.
// Used by Vorbis comments, RIFF chunks and APEv2 items.
func ReadLE[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	return readOrder[T](sr, off, what, binary.LittleEndian)
}

func readOrder[T Unsigned](sr *SafeReader, off int64, what string, order binary.ByteOrder) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}
	return decode[T](buf, order), nil
}

func sizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

func decode[T Unsigned](buf []byte, order binary.ByteOrder) T {
	switch len(buf) {
	case 1:
		return T(buf[0])
	case 2:
		return T(order.Uint16(buf))
	case 4:
		return T(order.Uint32(buf))
	default:
		return T(order.Uint64(buf))
	}
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a big-endian value and advances the offset.
func ReadValue[T Unsigned](r *Reader, what string) (T, error) {
	val, err := Read[T](r.SafeReader, r.offset, what)
	if err != nil {
		return val, err
	}
	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadValueLE reads a little-endian value and advances the offset.
func ReadValueLE[T Unsigned](r *Reader, what string) (T, error) {
	val, err := ReadLE[T](r.SafeReader, r.offset, what)
	if err != nil {
		return val, err
	}
	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadString reads a string of the given length and advances the offset.
func (r *Reader) ReadString(length int, what string) (string, error) {
	buf, err := r.ReadBytes(length, what)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadBytes reads length bytes and advances the offset.
func (r *Reader) ReadBytes(length int, what string) ([]byte, error) {
	buf, err := r.SafeReader.Bytes(r.offset, length, what)
	if err != nil {
		return nil, err
	}
	r.offset += int64(length)
	return buf, nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Remaining returns the number of bytes left before the end of input.
func (r *Reader) Remaining() int64 {
	return max(r.size-r.offset, 0)
}
