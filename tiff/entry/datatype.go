package entry

type DataType uint16

const (
	DataType_UByte DataType = iota + 1
	DataType_String
	DataType_UShort
	DataType_ULong
	DataType_URational
	DataType_Byte
	DataType_UByte_Sequence
	DataType_Short
	DataType_Long
	DataType_Rational
	DataType_Single_Precision_IEEE_Format
	DataType_Double_Precision_IEEE_Format
)

// Size returns the width in bytes of a single element of the data type, or 0 if the data type is unknown.
func (dt DataType) Size() uint32 {
	switch dt {
	case DataType_UByte, DataType_String, DataType_Byte, DataType_UByte_Sequence:
		return 1
	case DataType_UShort, DataType_Short:
		return 2
	case DataType_ULong, DataType_Long, DataType_Single_Precision_IEEE_Format:
		return 4
	case DataType_URational, DataType_Rational, DataType_Double_Precision_IEEE_Format:
		return 8
	default:
		return 0
	}
}

func (dt DataType) Known() bool {
	return dt.Size() != 0
}

func (dt DataType) String() string {
	switch dt {
	case DataType_UByte:
		return "unsigned byte"
	case DataType_String:
		return "string"
	case DataType_UShort:
		return "unsigned short 16bits"
	case DataType_ULong:
		return "unsigned long 32bits"
	case DataType_URational:
		return "unsigned rational"
	case DataType_Byte:
		return "signed byte"
	case DataType_UByte_Sequence:
		return "unsigned byte sequence"
	case DataType_Short:
		return "signed short 16bits"
	case DataType_Long:
		return "signed long 32bits"
	case DataType_Rational:
		return "signed rational"
	case DataType_Single_Precision_IEEE_Format:
		return "single precision (4 bytes) IEEE format"
	case DataType_Double_Precision_IEEE_Format:
		return "double precision (8 bytes) IEEE format"
	}
	return "UNKNOWN"
}
