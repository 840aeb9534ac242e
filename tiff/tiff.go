package tiff

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// Document is a decoded TIFF structure: the chain of top-level IFDs, in on-disk order
type Document struct {
	// ByteOrder is the order the document was decoded with. Encoding does not use it.
	ByteOrder   entry.ByteOrder
	Directories []Directory
}

// Directory represents an IFD
type Directory struct {
	// ID is the position of a top-level IFD in the chain, or the ID of the entry pointing to a sub-IFD
	ID       uint16
	Entries  []entry.Entry
	Children []Directory
}

// Decode decodes the TIFF structure starting at the current position of r, using the default settings.
func Decode(r io.ReadSeeker) (*Document, error) {
	return NewDecoder(r).Decode()
}

// Encode writes doc to w, starting at its current position, using the default settings.
func Encode(doc *Document, w io.WriteSeeker) error {
	return NewEncoder(w).Encode(doc)
}

// Find returns the first entry of the IFD with the given ID.
func (d Directory) Find(id entry.ID) (entry.Entry, bool) {
	for _, e := range d.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// Walk visits every IFD depth-first, parents before children, in on-disk order.
func (doc *Document) Walk(fn func(dir Directory, group Group, depth int)) {
	for i, dir := range doc.Directories {
		group := GroupOther
		switch i {
		case 0:
			group = GroupIfd0
		case 1:
			group = GroupIfd1
		}
		walk(dir, group, 0, fn)
	}
}

func walk(dir Directory, group Group, depth int, fn func(Directory, Group, int)) {
	fn(dir, group, depth)
	for _, child := range dir.Children {
		g, ok := Pointers[entry.ID(child.ID)]
		if !ok {
			g = GroupOther
		}
		walk(child, g, depth+1, fn)
	}
}

// readEndianness reads and returns the endianness of the metadata.
func readEndianness(buffer []byte) (entry.ByteOrder, error) {
	order, err := entry.ByteOrderOf(buffer)
	if err != nil {
		return nil, wrapError(KindMalformedHeader, 0, err, "invalid byte order marker")
	}
	return order, nil
}

// validateMagicNumber validates the file type by checking that it conforms to one of the expected values
func validateMagicNumber(byteOrder binary.ByteOrder, buffer []byte) error {
	magicNumber := byteOrder.Uint16(buffer)
	if magicNumber != MagicNumberBigEndian &&
		magicNumber != MagicNumberLittleEndian &&
		magicNumber != OrfMagicNumberBigEndian &&
		magicNumber != OrfMagicNumberLittleEndian {
		return newError(KindMalformedHeader, 2, "unknown magic number: 0x%X", magicNumber)
	}
	return nil
}

// appendHeader appends the 8 bytes of a TIFF header pointing to the first IFD at offset
func appendHeader(dst []byte, order entry.ByteOrder, offset uint32) []byte {
	dst = entry.AppendMagic(dst, order)
	dst = order.AppendUint16(dst, MagicNumberBigEndian)
	return order.AppendUint32(dst, offset)
}

func (d Directory) String() string {
	return fmt.Sprintf("IFD 0x%X, %d entries, %d children", d.ID, len(d.Entries), len(d.Children))
}
