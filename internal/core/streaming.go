package core

// streaming.go holds the readers every deck passes through on its way to the
// parser, whether it comes from disk or from an upload:
//
//   - BOMSkippingReader: drops a leading UTF-8 BOM written by Excel/Notepad
//   - CountingReader: records how many bytes were consumed
//
// ReadDeckText applies both, enforces the size limit and rejects text that is
// not valid UTF-8.

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
type BOMSkippingReader struct {
	reader  io.Reader
	checked bool
	head    []byte // bytes read while probing that were not a BOM
	err     error  // error seen while probing, returned once head drains
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{reader: r}
}

// Read implements io.Reader.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true

		var probe [3]byte
		n, err := io.ReadFull(r.reader, probe[:])
		if n < 3 || !bytes.Equal(probe[:], utf8BOM) {
			r.head = append([]byte(nil), probe[:n]...)
		}
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			r.err = io.EOF
		default:
			r.err = err
		}
	}

	if len(r.head) > 0 {
		n := copy(p, r.head)
		r.head = r.head[n:]
		return n, nil
	}
	if r.err != nil {
		return 0, r.err
	}
	return r.reader.Read(p)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// ReadDeckText reads at most limit bytes of deck text from r. A leading BOM
// is dropped. It returns the text and the raw byte count. Oversized input
// fails with ErrFileTooLarge, invalid UTF-8 with ErrEncoding.
func ReadDeckText(r io.Reader, limit int64) (string, int64, error) {
	counter := NewCountingReader(r)
	data, err := io.ReadAll(io.LimitReader(NewBOMSkippingReader(counter), limit+1))
	if err != nil {
		return "", counter.BytesRead, fmt.Errorf("read deck: %w", err)
	}
	if int64(len(data)) > limit {
		return "", counter.BytesRead, fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, limit)
	}
	if !utf8.Valid(data) {
		return "", counter.BytesRead, ErrEncoding
	}
	return string(data), counter.BytesRead, nil
}
