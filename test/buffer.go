package test

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

type endianness interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Buffer is an in-memory io.ReadWriteSeeker. Its builder methods append to the end of the buffer.
type Buffer struct {
	byteOrder endianness
	buffer    []byte
	offset    int64
}

func NewBuffer() *Buffer {
	return &Buffer{
		byteOrder: binary.LittleEndian,
		buffer:    make([]byte, 0),
	}
}

// WithByteOrder sets the byte order used by the builder methods that follow.
func (b *Buffer) WithByteOrder(order endianness) *Buffer {
	b.byteOrder = order

	return b
}

func (b *Buffer) WithString(value string) *Buffer {
	b.buffer = append(b.buffer, []byte(value)...)

	return b
}

func (b *Buffer) WithBytes(values ...byte) *Buffer {
	b.buffer = append(b.buffer, values...)

	return b
}

func (b *Buffer) WithUints16(values ...uint16) *Buffer {
	for _, value := range values {
		b.buffer = b.byteOrder.AppendUint16(b.buffer, value)
	}

	return b
}

func (b *Buffer) WithUints32(values ...uint32) *Buffer {
	for _, value := range values {
		b.buffer = b.byteOrder.AppendUint32(b.buffer, value)
	}

	return b
}

// Bytes returns the content of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buffer
}

func (b *Buffer) Len() int {
	return len(b.buffer)
}

func (b *Buffer) Read(p []byte) (int, error) {
	if p == nil {
		return 0, errors.New("destination cannot be nil")
	}

	if b.offset >= int64(len(b.buffer)) {
		return 0, io.EOF
	}

	n := copy(p, b.buffer[b.offset:])
	b.offset += int64(n)
	return n, nil
}

// Write overwrites the buffer at the current offset, growing it as needed.
func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.buffer)) {
		grown := make([]byte, end)
		copy(grown, b.buffer)
		b.buffer = grown
	}

	n := copy(b.buffer[b.offset:], p)
	b.offset += int64(n)
	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = b.offset + offset
	case io.SeekEnd:
		target = int64(len(b.buffer)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}

	if target < 0 {
		return 0, errors.New("negative offset not allowed")
	}

	b.offset = target

	return b.offset, nil
}
