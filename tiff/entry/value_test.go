package entry

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	testCases := []struct {
		dataType DataType
		size     uint32
	}{
		{DataType_UByte, 1},
		{DataType_String, 1},
		{DataType_UShort, 2},
		{DataType_ULong, 4},
		{DataType_URational, 8},
		{DataType_Byte, 1},
		{DataType_UByte_Sequence, 1},
		{DataType_Short, 2},
		{DataType_Long, 4},
		{DataType_Rational, 8},
		{DataType_Single_Precision_IEEE_Format, 4},
		{DataType_Double_Precision_IEEE_Format, 8},
		{DataType(0), 0},
		{DataType(13), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.dataType.String(), func(t *testing.T) {
			assert.Equal(t, tc.size, tc.dataType.Size())
		})
	}
}

func TestValueQueries(t *testing.T) {
	testCases := []struct {
		name     string
		value    Value
		dataType DataType
		count    uint32
		size     uint64
	}{
		{"UBytes", UBytes{1, 2, 3}, DataType_UByte, 3, 3},
		{"String", String("AB"), DataType_String, 3, 3},
		{"EmptyString", String(""), DataType_String, 1, 1},
		{"UShorts", UShorts{1, 2, 3}, DataType_UShort, 3, 6},
		{"ULongs", ULongs{1}, DataType_ULong, 1, 4},
		{"URationals", URationals{{1, 2}}, DataType_URational, 1, 8},
		{"SBytes", SBytes{-1}, DataType_Byte, 1, 1},
		{"Undefined", Undefined{0, 1, 2, 3, 4}, DataType_UByte_Sequence, 5, 5},
		{"SShorts", SShorts{-1, 1}, DataType_Short, 2, 4},
		{"SLongs", SLongs{-1, 1}, DataType_Long, 2, 8},
		{"SRationals", SRationals{{-1, 3}, {1, 3}}, DataType_Rational, 2, 16},
		{"Floats32", Floats32{1.5}, DataType_Single_Precision_IEEE_Format, 1, 4},
		{"Floats64", Floats64{1.5, 2.5}, DataType_Double_Precision_IEEE_Format, 2, 16},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.dataType, tc.value.DataType())
			assert.Equal(t, tc.count, tc.value.Count())
			assert.Equal(t, tc.size, DataSize(tc.value))
			assert.Len(t, AppendValue(binary.LittleEndian, nil, tc.value), int(tc.size))
		})
	}
}

func TestDecodeValue(t *testing.T) {
	testCases := []struct {
		name     string
		order    ByteOrder
		dataType DataType
		count    uint32
		payload  []byte
		expected Value
	}{
		{
			name:     "InlineUBytesIgnorePadding",
			order:    binary.LittleEndian,
			dataType: DataType_UByte,
			count:    2,
			payload:  []byte{0x01, 0x02, 0xAA, 0xBB},
			expected: UBytes{1, 2},
		},
		{
			name:     "StringStopsAtFirstNul",
			order:    binary.LittleEndian,
			dataType: DataType_String,
			count:    4,
			payload:  []byte{0x41, 0x42, 0x00, 0xFF},
			expected: String("AB"),
		},
		{
			name:     "UShortLittleEndian",
			order:    binary.LittleEndian,
			dataType: DataType_UShort,
			count:    2,
			payload:  []byte{0x07, 0x00, 0x00, 0x01},
			expected: UShorts{7, 256},
		},
		{
			name:     "UShortBigEndian",
			order:    binary.BigEndian,
			dataType: DataType_UShort,
			count:    2,
			payload:  []byte{0x07, 0x00, 0x00, 0x01},
			expected: UShorts{0x0700, 1},
		},
		{
			name:     "ULongBigEndian",
			order:    binary.BigEndian,
			dataType: DataType_ULong,
			count:    1,
			payload:  []byte{0x00, 0x00, 0x01, 0x02},
			expected: ULongs{0x0102},
		},
		{
			name:     "URationalBigEndian",
			order:    binary.BigEndian,
			dataType: DataType_URational,
			count:    1,
			payload:  []byte{0, 0, 0, 1, 0, 0, 0, 40},
			expected: URationals{{Num: 1, Den: 40}},
		},
		{
			name:     "SignedByteReinterpretsBits",
			order:    binary.LittleEndian,
			dataType: DataType_Byte,
			count:    3,
			payload:  []byte{0xFF, 0x80, 0x7F, 0x00},
			expected: SBytes{-1, -128, 127},
		},
		{
			name:     "Undefined",
			order:    binary.LittleEndian,
			dataType: DataType_UByte_Sequence,
			count:    4,
			payload:  []byte("0231"),
			expected: Undefined("0231"),
		},
		{
			name:     "SShort",
			order:    binary.LittleEndian,
			dataType: DataType_Short,
			count:    1,
			payload:  []byte{0xFE, 0xFF, 0, 0},
			expected: SShorts{-2},
		},
		{
			name:     "SLong",
			order:    binary.BigEndian,
			dataType: DataType_Long,
			count:    1,
			payload:  []byte{0xFF, 0xFF, 0xFF, 0xFD},
			expected: SLongs{-3},
		},
		{
			name:     "SRational",
			order:    binary.LittleEndian,
			dataType: DataType_Rational,
			count:    1,
			payload:  []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x03, 0, 0, 0},
			expected: SRationals{{Num: -1, Den: 3}},
		},
		{
			name:     "Float32",
			order:    binary.LittleEndian,
			dataType: DataType_Single_Precision_IEEE_Format,
			count:    1,
			payload:  binary.LittleEndian.AppendUint32(nil, math.Float32bits(0.25)),
			expected: Floats32{0.25},
		},
		{
			name:     "Float64",
			order:    binary.BigEndian,
			dataType: DataType_Double_Precision_IEEE_Format,
			count:    1,
			payload:  binary.BigEndian.AppendUint64(nil, math.Float64bits(-1.5)),
			expected: Floats64{-1.5},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := DecodeValue(tc.order, tc.dataType, tc.count, tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestDecodeValue_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		dataType DataType
		count    uint32
		payload  []byte
		err      error
	}{
		{"UnknownDataType", DataType(13), 1, []byte{0, 0, 0, 0}, ErrUnknownDataType},
		{"UnknownDataTypeLargeCount", DataType(13), 1 << 30, []byte{0, 0, 0, 0}, ErrUnknownDataType},
		{"ZeroDataType", DataType(0), 1, []byte{0, 0, 0, 0}, ErrUnknownDataType},
		{"MissingTerminator", DataType_String, 4, []byte("ABCD"), ErrMissingTerminator},
		{"ShortPayload", DataType_ULong, 2, []byte{0, 0, 0, 0}, ErrShortPayload},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeValue(binary.LittleEndian, tc.dataType, tc.count, tc.payload)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestAppendValue_IsInverseOfDecode(t *testing.T) {
	values := []Value{
		UBytes{0, 1, 255},
		String("Canon"),
		UShorts{5184, 3456},
		ULongs{1, 1 << 31},
		URationals{{1, 40}, {28, 10}},
		SBytes{-128, 0, 127},
		Undefined{0x30, 0x32, 0x33, 0x31, 0x00},
		SShorts{-32768, 32767},
		SLongs{-1 << 31, 1<<31 - 1},
		SRationals{{-1, 3}},
		Floats32{float32(math.Pi)},
		Floats64{math.E, math.Inf(-1)},
	}

	for _, order := range []ByteOrder{binary.LittleEndian, binary.BigEndian} {
		for _, value := range values {
			t.Run(value.DataType().String(), func(t *testing.T) {
				payload := AppendValue(order, nil, value)
				decoded, err := DecodeValue(order, value.DataType(), value.Count(), payload)
				require.NoError(t, err)
				assert.Equal(t, value, decoded)
			})
		}
	}
}

func TestAppendValue_String(t *testing.T) {
	assert.Equal(t, []byte{0x41, 0x42, 0x00}, AppendValue(binary.LittleEndian, nil, String("AB")))
}

func TestByteOrderOf(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
		order binary.ByteOrder
		err   bool
	}{
		{"IntelByteOrder", []byte{0x49, 0x49}, binary.LittleEndian, false},
		{"MotorolaByteOrder", []byte{0x4D, 0x4D}, binary.BigEndian, false},
		{"UnknownByteOrder", []byte{0x34, 0x4D}, nil, true},
		{"TooShort", []byte{0x49}, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := ByteOrderOf(tc.input)
			if tc.err {
				assert.ErrorIs(t, err, ErrUnknownByteOrder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.order, order)
			assert.Equal(t, tc.input, AppendMagic(nil, order))
		})
	}
}
