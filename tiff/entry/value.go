package entry

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownDataType   = errors.New("unknown data type")
	ErrMissingTerminator = errors.New("string has no NUL terminator")
	ErrShortPayload      = errors.New("payload shorter than declared value size")
)

// Value is the typed content of an entry. The set of implementations is closed: one per TIFF data type.
type Value interface {
	// DataType returns the TIFF type code of the value.
	DataType() DataType
	// Count returns the number of elements as declared in the entry header.
	Count() uint32

	appendTo(order ByteOrder, dst []byte) []byte
}

// URational is an unsigned fraction.
type URational struct {
	Num, Den uint32
}

func (r URational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// SRational is a signed fraction.
type SRational struct {
	Num, Den int32
}

func (r SRational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

type (
	UBytes     []uint8
	String     string
	UShorts    []uint16
	ULongs     []uint32
	URationals []URational
	SBytes     []int8
	Undefined  []byte
	SShorts    []int16
	SLongs     []int32
	SRationals []SRational
	Floats32   []float32
	Floats64   []float64
)

func (UBytes) DataType() DataType { return DataType_UByte }
func (String) DataType() DataType { return DataType_String }
func (UShorts) DataType() DataType { return DataType_UShort }
func (ULongs) DataType() DataType { return DataType_ULong }
func (URationals) DataType() DataType { return DataType_URational }
func (SBytes) DataType() DataType { return DataType_Byte }
func (Undefined) DataType() DataType { return DataType_UByte_Sequence }
func (SShorts) DataType() DataType { return DataType_Short }
func (SLongs) DataType() DataType { return DataType_Long }
func (SRationals) DataType() DataType { return DataType_Rational }
func (Floats32) DataType() DataType { return DataType_Single_Precision_IEEE_Format }
func (Floats64) DataType() DataType { return DataType_Double_Precision_IEEE_Format }

func (v UBytes) Count() uint32 { return uint32(len(v)) }

// Count includes the NUL terminator.
func (v String) Count() uint32 { return uint32(len(v)) + 1 }
func (v UShorts) Count() uint32 { return uint32(len(v)) }
func (v ULongs) Count() uint32 { return uint32(len(v)) }
func (v URationals) Count() uint32 { return uint32(len(v)) }
func (v SBytes) Count() uint32 { return uint32(len(v)) }
func (v Undefined) Count() uint32 { return uint32(len(v)) }
func (v SShorts) Count() uint32 { return uint32(len(v)) }
func (v SLongs) Count() uint32 { return uint32(len(v)) }
func (v SRationals) Count() uint32 { return uint32(len(v)) }
func (v Floats32) Count() uint32 { return uint32(len(v)) }
func (v Floats64) Count() uint32 { return uint32(len(v)) }

// DataSize returns the number of bytes the value occupies once encoded.
func DataSize(v Value) uint64 {
	return uint64(v.DataType().Size()) * uint64(v.Count())
}

// AppendValue appends the encoding of v to dst. Exactly DataSize(v) bytes are appended.
func AppendValue(order ByteOrder, dst []byte, v Value) []byte {
	return v.appendTo(order, dst)
}

func (v UBytes) appendTo(_ ByteOrder, dst []byte) []byte {
	return append(dst, v...)
}

func (v String) appendTo(_ ByteOrder, dst []byte) []byte {
	dst = append(dst, v...)
	return append(dst, 0)
}

func (v UShorts) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint16(dst, x)
	}
	return dst
}

func (v ULongs) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint32(dst, x)
	}
	return dst
}

func (v URationals) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint32(dst, x.Num)
		dst = order.AppendUint32(dst, x.Den)
	}
	return dst
}

func (v SBytes) appendTo(_ ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = append(dst, byte(x))
	}
	return dst
}

func (v Undefined) appendTo(_ ByteOrder, dst []byte) []byte {
	return append(dst, v...)
}

func (v SShorts) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint16(dst, uint16(x))
	}
	return dst
}

func (v SLongs) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint32(dst, uint32(x))
	}
	return dst
}

func (v SRationals) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint32(dst, uint32(x.Num))
		dst = order.AppendUint32(dst, uint32(x.Den))
	}
	return dst
}

func (v Floats32) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint32(dst, math.Float32bits(x))
	}
	return dst
}

func (v Floats64) appendTo(order ByteOrder, dst []byte) []byte {
	for _, x := range v {
		dst = order.AppendUint64(dst, math.Float64bits(x))
	}
	return dst
}

// DecodeValue converts the raw payload of an entry into its typed value.
// The payload of an inline value is the full 4-byte field; any bytes past the declared size are ignored,
// except for strings, which end at the first NUL byte found anywhere in the payload.
func DecodeValue(order ByteOrder, dt DataType, count uint32, payload []byte) (Value, error) {
	if !dt.Known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDataType, dt)
	}
	if dt == DataType_String {
		n := bytes.IndexByte(payload, 0)
		if n < 0 {
			return nil, ErrMissingTerminator
		}
		return String(payload[:n]), nil
	}

	size := uint64(dt.Size()) * uint64(count)
	if uint64(len(payload)) < size {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrShortPayload, size, len(payload))
	}
	payload = payload[:size]

	switch dt {
	case DataType_UByte:
		return UBytes(bytes.Clone(payload)), nil
	case DataType_UShort:
		v := make(UShorts, count)
		for i := range v {
			v[i] = order.Uint16(payload[2*i:])
		}
		return v, nil
	case DataType_ULong:
		v := make(ULongs, count)
		for i := range v {
			v[i] = order.Uint32(payload[4*i:])
		}
		return v, nil
	case DataType_URational:
		v := make(URationals, count)
		for i := range v {
			v[i] = URational{Num: order.Uint32(payload[8*i:]), Den: order.Uint32(payload[8*i+4:])}
		}
		return v, nil
	case DataType_Byte:
		v := make(SBytes, count)
		for i, b := range payload {
			v[i] = int8(b)
		}
		return v, nil
	case DataType_UByte_Sequence:
		return Undefined(bytes.Clone(payload)), nil
	case DataType_Short:
		v := make(SShorts, count)
		for i := range v {
			v[i] = int16(order.Uint16(payload[2*i:]))
		}
		return v, nil
	case DataType_Long:
		v := make(SLongs, count)
		for i := range v {
			v[i] = int32(order.Uint32(payload[4*i:]))
		}
		return v, nil
	case DataType_Rational:
		v := make(SRationals, count)
		for i := range v {
			v[i] = SRational{Num: int32(order.Uint32(payload[8*i:])), Den: int32(order.Uint32(payload[8*i+4:]))}
		}
		return v, nil
	case DataType_Single_Precision_IEEE_Format:
		v := make(Floats32, count)
		for i := range v {
			v[i] = math.Float32frombits(order.Uint32(payload[4*i:]))
		}
		return v, nil
	case DataType_Double_Precision_IEEE_Format:
		v := make(Floats64, count)
		for i := range v {
			v[i] = math.Float64frombits(order.Uint64(payload[8*i:]))
		}
		return v, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownDataType, dt)
}
