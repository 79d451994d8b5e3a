package strbuilder

import (
	"errors"
	"io"
)

const (
	// minRead is the free space ReadFrom tries to make available before each
	// Read.
	minRead = 512
	// maxEmptyReads bounds the (0, nil) reads tolerated while checking
	// whether a full builder's reader has anything left.
	maxEmptyReads = 100
)

var (
	_ io.Writer       = (*Builder)(nil)
	_ io.ByteWriter   = (*Builder)(nil)
	_ io.StringWriter = (*Builder)(nil)
	_ io.ReaderFrom   = (*Builder)(nil)
	_ io.WriterTo     = (*Builder)(nil)
)

// Write appends p. Unlike AppendString it does not stop at NUL bytes.
func (b *Builder) Write(p []byte) (int, error) {
	if err := b.AppendBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString appends all of s, NUL bytes included.
func (b *Builder) WriteString(s string) (int, error) {
	if err := b.reserve(len(s)); err != nil {
		return 0, err
	}
	b.n += copy(b.buf[b.n:], s)
	return len(s), nil
}

// WriteByte appends c; it implements io.ByteWriter.
func (b *Builder) WriteByte(c byte) error {
	return b.AppendByte(c)
}

// ReadFrom appends everything read from r until io.EOF. When the builder
// cannot grow any further, reads go into the space already free and
// ErrAllocation is only reported once r still has data that does not fit.
func (b *Builder) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if err := b.reserve(minRead); err != nil {
			if !errors.Is(err, ErrAllocation) {
				return total, err
			}
			if len(b.buf)-b.n-1 == 0 {
				return total, drained(r, err)
			}
		}
		// the terminator slot is never handed to r
		window := b.buf[b.n : len(b.buf)-1]
		m, err := r.Read(window)
		if m < 0 || m > len(window) {
			clear(window)
			return total, io.ErrShortBuffer
		}
		// r may have used all of window as scratch space
		clear(window[m:])
		b.n += m
		total += int64(m)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes the content to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	if b.spent {
		return 0, ErrSpent
	}
	m, err := w.Write(b.buf[:b.n])
	if err == nil && m < b.n {
		err = io.ErrShortWrite
	}
	return int64(m), err
}

// drained returns nil when r is at io.EOF, r's own error when it fails, and
// full when r still yields data.
func drained(r io.Reader, full error) error {
	var one [1]byte
	for range maxEmptyReads {
		m, err := r.Read(one[:])
		if m > 0 {
			return full
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return io.ErrNoProgress
}
