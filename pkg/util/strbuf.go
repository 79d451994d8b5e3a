// Package util provides small helpers built on top of the builder.
package util

import (
	"strbuilder-go/pkg/strbuilder"
)

// StrBuf is a line oriented wrapper around strbuilder.Builder.
type StrBuf struct {
	b *strbuilder.Builder
}

// NewStrBuf creates an empty StrBuf whose builder is configured by opts.
func NewStrBuf(opts ...strbuilder.Option) (*StrBuf, error) {
	b, err := strbuilder.New(opts...)
	if err != nil {
		return nil, err
	}
	return &StrBuf{b: b}, nil
}

// Write appends the given string to the buffer.
func (sb *StrBuf) Write(s string) error {
	_, err := sb.b.WriteString(s)
	return err
}

// WriteLine appends the given string followed by a newline.
func (sb *StrBuf) WriteLine(s string) error {
	if _, err := sb.b.WriteString(s); err != nil {
		return err
	}
	return sb.b.AppendByte('\n')
}

// Len returns the number of bytes written.
func (sb *StrBuf) Len() int {
	return sb.b.Len()
}

// String returns the accumulated string.
func (sb *StrBuf) String() string {
	return sb.b.String()
}

// Builder exposes the underlying builder.
func (sb *StrBuf) Builder() *strbuilder.Builder {
	return sb.b
}

// Reset clears the buffer.
func (sb *StrBuf) Reset() {
	sb.b.Reset()
}
