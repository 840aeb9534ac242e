package tiff

import (
	"github.com/fedragon/tiff-ifd/test"
	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// header returns a buffer holding a TIFF header pointing to an IFD right after it
func header(order entry.ByteOrder) *test.Buffer {
	return test.NewBuffer().
		WithBytes(entry.AppendMagic(nil, order)...).
		WithByteOrder(order).
		WithUints16(42).
		WithUints32(8)
}

func tag(id entry.ID, dt entry.DataType) []uint16 {
	return []uint16{uint16(id), uint16(dt)}
}

// sample returns a document with two top-level IFDs, an Exif sub-IFD and a thumbnail.
// Up to the thumbnail (excluded) it is laid out exactly as Encode lays it out.
func sample(order entry.ByteOrder) *test.Buffer {
	return header(order).
		// IFD0 at 8
		WithUints16(3).
		WithUints16(tag(entry.Make, entry.DataType_String)...).WithUints32(6, 50).
		WithUints16(tag(entry.Orientation, entry.DataType_UShort)...).WithUints32(1).WithUints16(1, 0).
		WithUints16(tag(entry.Exif, entry.DataType_ULong)...).WithUints32(1, 56).
		WithUints32(94).
		// Make at 50
		WithString("Canon\x00").
		// Exif IFD at 56
		WithUints16(2).
		WithUints16(tag(entry.ExposureTime, entry.DataType_URational)...).WithUints32(1, 86).
		WithUints16(tag(entry.ExifVersion, entry.DataType_UByte_Sequence)...).WithUints32(4).WithString("0231").
		WithUints32(0).
		// ExposureTime at 86
		WithUints32(1, 40).
		// IFD1 at 94
		WithUints16(2).
		WithUints16(tag(entry.ThumbnailOffset, entry.DataType_ULong)...).WithUints32(1, 124).
		WithUints16(tag(entry.ThumbnailLength, entry.DataType_ULong)...).WithUints32(1, 4).
		WithUints32(0).
		// thumbnail at 124
		WithBytes(0xFF, 0xD8, 0xFF, 0xD9)
}

const sampleLayoutSize = 124

func sampleDirectories() []Directory {
	return []Directory{
		{
			ID: 0,
			Entries: []entry.Entry{
				{ID: entry.Make, Value: entry.String("Canon")},
				{ID: entry.Orientation, Value: entry.UShorts{1}},
			},
			Children: []Directory{
				{
					ID: uint16(entry.Exif),
					Entries: []entry.Entry{
						{ID: entry.ExposureTime, Value: entry.URationals{{Num: 1, Den: 40}}},
						{ID: entry.ExifVersion, Value: entry.Undefined("0231")},
					},
				},
			},
		},
		{
			ID: 1,
			Entries: []entry.Entry{
				{ID: entry.ThumbnailOffset, Value: entry.ULongs{124}},
				{ID: entry.ThumbnailLength, Value: entry.ULongs{4}},
			},
		},
	}
}

// chain returns a document of three top-level IFDs, the first one having a sub-IFD
func chain() *Document {
	return &Document{
		Directories: []Directory{
			{
				ID:      0,
				Entries: []entry.Entry{{ID: entry.Make, Value: entry.String("Canon EOS")}},
				Children: []Directory{
					{
						ID:      uint16(entry.Exif),
						Entries: []entry.Entry{{ID: entry.ExposureTime, Value: entry.URationals{{Num: 1, Den: 200}}}},
					},
				},
			},
			{
				ID:      1,
				Entries: []entry.Entry{{ID: entry.ImageWidth, Value: entry.ULongs{4640}}},
			},
			{
				ID:      2,
				Entries: []entry.Entry{{ID: entry.ImageDescription, Value: entry.String("last one")}},
			},
		},
	}
}
