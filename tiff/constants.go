package tiff

import "github.com/fedragon/tiff-ifd/tiff/entry"

type (
	Group uint8
)

const (
	GroupIfd0 Group = iota
	GroupIfd1
	GroupExif
	GroupGPSInfo
	GroupInteroperability
	GroupOther

	// HeaderSize is the size of the TIFF header: byte order, magic number and offset to the first IFD
	HeaderSize = 8

	// MagicNumberBigEndian is the TIFF standard value to indicate big-endian byte ordering
	MagicNumberBigEndian = 0x002A
	// MagicNumberLittleEndian is the TIFF standard value to indicate little-endian byte ordering
	MagicNumberLittleEndian = 0x2A00

	// OrfMagicNumberBigEndian is the ORF-specific value to indicate big-endian byte ordering
	OrfMagicNumberBigEndian = 0x4F52
	// OrfMagicNumberLittleEndian is the ORF-specific value to indicate little-endian byte ordering
	OrfMagicNumberLittleEndian = 0x524F

	// DefaultMaxDirectories caps the chain of top-level IFDs
	DefaultMaxDirectories = 0xFFFF
	// DefaultMaxDepth caps the nesting of sub-IFDs
	DefaultMaxDepth = 8
)

// Pointers maps the entries that point to a sub-IFD to the group of that sub-IFD.
// Only these entries are followed when decoding.
var Pointers = map[entry.ID]Group{
	entry.Exif:             GroupExif,
	entry.GPSInfo:          GroupGPSInfo,
	entry.Interoperability: GroupInteroperability,
}

func isPointer(id entry.ID) bool {
	_, ok := Pointers[id]
	return ok
}

func (g Group) String() string {
	switch g {
	case GroupIfd0:
		return "IFD0"
	case GroupIfd1:
		return "IFD1"
	case GroupExif:
		return "Exif"
	case GroupGPSInfo:
		return "GPSInfo"
	case GroupInteroperability:
		return "Interoperability"
	}
	return "IFD"
}
