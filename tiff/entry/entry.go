package entry

import (
	"fmt"
)

type ID uint16

const (
	// IFD #0

	ImageWidth       ID = 0x100
	ImageHeight      ID = 0x101
	BitsPerSample    ID = 0x102
	Compression      ID = 0x103
	ImageDescription ID = 0x10e
	Make             ID = 0x10f
	Model            ID = 0x110
	Orientation      ID = 0x112
	XResolution      ID = 0x11a
	YResolution      ID = 0x11b
	ResolutionUnit   ID = 0x128
	Software         ID = 0x131
	ModifyDate       ID = 0x132
	Exif             ID = 0x8769
	GPSInfo          ID = 0x8825

	// Exif sub-IFD

	ExposureTime       ID = 0x829a
	FNumber            ID = 0x829d
	ISO                ID = 0x8827
	ExifVersion        ID = 0x9000
	DateTimeOriginal   ID = 0x9003
	OffsetTimeOriginal ID = 0x9011
	MakerNote          ID = 0x927c
	UserComment        ID = 0x9286
	Interoperability   ID = 0xa005

	// GPSInfo sub-IFD

	GPSVersionID    ID = 0x0000
	GPSLatitudeRef  ID = 0x0001
	GPSLatitude     ID = 0x0002
	GPSLongitudeRef ID = 0x0003
	GPSLongitude    ID = 0x0004
	GPSAltitudeRef  ID = 0x0005
	GPSAltitude     ID = 0x0006

	// Interoperability sub-IFD

	InteropIndex ID = 0x0001

	// Position depends on actual format

	ThumbnailOffset ID = 0x0201 // in IFD #1 (PreviewImageStart if in IFD #0)
	ThumbnailLength ID = 0x0202 // in IFD #1 (PreviewImageLength if in IFD #0)
)

// Entry is a tagged value of a directory.
type Entry struct {
	ID    ID
	Value Value
}

// Uint returns the i-th element of an unsigned integer value.
func (e Entry) Uint(i int) (uint32, bool) {
	switch v := e.Value.(type) {
	case UBytes:
		if i < len(v) {
			return uint32(v[i]), true
		}
	case UShorts:
		if i < len(v) {
			return uint32(v[i]), true
		}
	case ULongs:
		if i < len(v) {
			return v[i], true
		}
	}
	return 0, false
}

// Text returns the value of an ASCII entry.
func (e Entry) Text() (string, bool) {
	s, ok := e.Value.(String)
	return string(s), ok
}

func (e Entry) String() string {
	if e.Value == nil {
		return fmt.Sprintf("ID: 0x%X\nDataType: UNKNOWN\n", e.ID)
	}
	return fmt.Sprintf("ID: 0x%X\nDataType: %s\nLength: %d\n", e.ID, e.Value.DataType(), e.Value.Count())
}
