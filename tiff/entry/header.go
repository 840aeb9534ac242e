package entry

import "fmt"

const (
	// Size of an IFD entry, in bytes
	Size = 12
	// InlineSize is the size of the value/offset field of an IFD entry: values up to this size are stored in place
	InlineSize = 4
)

// Header represents the on-disk IFD entry preceding each value
type Header struct {
	ID       ID
	DataType DataType
	Length   uint32
	Raw      [InlineSize]byte // value of the entry or offset to read the value from, depending on DataType and Length
}

// DecodeHeader reads a header from the first Size bytes of buffer.
// It never fails on an unknown data type: such a header is considered inline and rejected when its value is decoded.
func DecodeHeader(order ByteOrder, buffer []byte) Header {
	h := Header{
		ID:       ID(order.Uint16(buffer[0:2])),
		DataType: DataType(order.Uint16(buffer[2:4])),
		Length:   order.Uint32(buffer[4:8]),
	}
	copy(h.Raw[:], buffer[8:12])
	return h
}

// DataSize returns the size in bytes of the value the header describes.
func (h Header) DataSize() uint64 {
	return uint64(h.DataType.Size()) * uint64(h.Length)
}

// IsInline reports whether the value is stored in the header itself rather than at an offset.
func (h Header) IsInline() bool {
	return h.DataSize() <= InlineSize
}

// Offset interprets the value field as an offset.
func (h Header) Offset(order ByteOrder) uint32 {
	return order.Uint32(h.Raw[:])
}

// Append appends the Size bytes of the header to dst.
func (h Header) Append(order ByteOrder, dst []byte) []byte {
	dst = order.AppendUint16(dst, uint16(h.ID))
	dst = order.AppendUint16(dst, uint16(h.DataType))
	dst = order.AppendUint32(dst, h.Length)
	return append(dst, h.Raw[:]...)
}

// EncodeHeader builds the header of e. When the value does not fit InlineSize bytes the header points to
// dataOffset and deferred is true: the caller still has to write the value there.
// Otherwise the value is stored in the header, zero-padded.
func EncodeHeader(order ByteOrder, e Entry, dataOffset uint32) (h Header, deferred bool) {
	h = Header{
		ID:       e.ID,
		DataType: e.Value.DataType(),
		Length:   e.Value.Count(),
	}
	if DataSize(e.Value) > InlineSize {
		order.PutUint32(h.Raw[:], dataOffset)
		return h, true
	}
	copy(h.Raw[:], AppendValue(order, make([]byte, 0, InlineSize), e.Value))
	return h, false
}

// PointerHeader builds the header of a sub-directory pointer: always a single inline unsigned long.
func PointerHeader(order ByteOrder, id ID, offset uint32) Header {
	h := Header{
		ID:       id,
		DataType: DataType_ULong,
		Length:   1,
	}
	order.PutUint32(h.Raw[:], offset)
	return h
}

func (h Header) String() string {
	return fmt.Sprintf("ID: 0x%X\nDataType: %s\nLength: %d\n", h.ID, h.DataType, h.Length)
}
