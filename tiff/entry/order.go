package entry

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ByteOrder reads and appends the multi-byte values of a document.
// binary.LittleEndian and binary.BigEndian both satisfy it.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

const (
	// IntelByteOrder is the TIFF standard value to indicate Intel byte ordering (aka little-endian)
	IntelByteOrder = 0x4949
	// MotorolaByteOrder is the TIFF standard value to indicate Motorola byte ordering (aka big-endian)
	MotorolaByteOrder = 0x4D4D
)

var ErrUnknownByteOrder = errors.New("unknown byte order")

// ByteOrderOf returns the byte order announced by the first two bytes of a TIFF header.
func ByteOrderOf(magic []byte) (ByteOrder, error) {
	if len(magic) < 2 {
		return nil, ErrUnknownByteOrder
	}
	// the value of these 2 bytes is endianness-independent, any byte order can read them
	value := binary.LittleEndian.Uint16(magic)
	switch value {
	case IntelByteOrder:
		return binary.LittleEndian, nil
	case MotorolaByteOrder:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: 0x%X", ErrUnknownByteOrder, value)
	}
}

// AppendMagic appends the two bytes announcing order.
func AppendMagic(dst []byte, order ByteOrder) []byte {
	if order == ByteOrder(binary.BigEndian) {
		return append(dst, 'M', 'M')
	}
	return append(dst, 'I', 'I')
}
