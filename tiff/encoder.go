package tiff

import (
	"encoding/binary"
	"io"

	"go.uber.org/zap"

	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// Encoder writes a Document to a seekable destination.
// Encoding always lays the structure out from scratch: the first IFD follows the header, and each IFD is
// followed by the values that do not fit in its entries, then by its sub-IFDs.
type Encoder struct {
	w      io.WriteSeeker
	order  entry.ByteOrder
	logger *zap.Logger
}

func NewEncoder(w io.WriteSeeker) *Encoder {
	return &Encoder{
		w:     w,
		order: binary.LittleEndian,
	}
}

// WithByteOrder sets the byte order of the output. Defaults to little-endian.
func (e *Encoder) WithByteOrder(order entry.ByteOrder) *Encoder {
	e.order = order
	return e
}

func (e *Encoder) WithLogger(l *zap.Logger) *Encoder {
	e.logger = l
	return e
}

// Encode validates doc and writes it. On failure the destination is left partially written.
func (e *Encoder) Encode(doc *Document) error {
	if err := Validate(doc); err != nil {
		return err
	}

	log := e.logger
	if log == nil {
		log = Logger()
	}

	ow := newOffsetWriter(e.w)
	if _, err := ow.Write(appendHeader(nil, e.order, HeaderSize)); err != nil {
		return err
	}

	for i, dir := range doc.Directories {
		last := i == len(doc.Directories)-1
		if err := e.directory(ow, log, dir, last); err != nil {
			return err
		}
	}

	log.Debug("encoded document",
		zap.Int("directories", len(doc.Directories)),
		zap.Int64("size", ow.Offset()))

	return nil
}

// directory writes dir at the current offset: entry count, headers, next IFD offset, deferred values, sub-IFDs.
// Unless last, the next IFD offset is back-patched to point right after the sub-IFDs.
func (e *Encoder) directory(ow *offsetWriter, log *zap.Logger, dir Directory, last bool) error {
	start := ow.Offset()
	numEntries := len(dir.Entries) + len(dir.Children)

	buffer := make([]byte, 0, tableSize(numEntries))
	buffer = e.order.AppendUint16(buffer, uint16(numEntries))

	dataOffset := start + tableSize(numEntries)

	var deferred []entry.Value
	for _, en := range dir.Entries {
		h, isDeferred := entry.EncodeHeader(e.order, en, uint32(dataOffset))
		buffer = h.Append(e.order, buffer)
		if isDeferred {
			deferred = append(deferred, en.Value)
			dataOffset += int64(entry.DataSize(en.Value))
		}
	}

	// sub-IFDs are written after all the deferred values, one after the other
	childOffset := dataOffset
	for _, child := range dir.Children {
		h := entry.PointerHeader(e.order, entry.ID(child.ID), uint32(childOffset))
		buffer = h.Append(e.order, buffer)
		childOffset += encodedSize(child)
	}

	nextPosition := start + int64(len(buffer))
	buffer = e.order.AppendUint32(buffer, 0)

	if _, err := ow.Write(buffer); err != nil {
		return err
	}

	var data []byte
	for _, value := range deferred {
		data = entry.AppendValue(e.order, data[:0], value)
		if _, err := ow.Write(data); err != nil {
			return err
		}
	}

	for _, child := range dir.Children {
		if err := e.directory(ow, log, child, true); err != nil {
			return err
		}
	}

	log.Debug("encoded IFD",
		zap.Uint16("id", dir.ID),
		zap.Int64("offset", start),
		zap.Int("entries", len(dir.Entries)),
		zap.Int("children", len(dir.Children)))

	if last {
		return nil
	}
	return ow.patch(nextPosition, e.order.AppendUint32(nil, uint32(ow.Offset())))
}

// tableSize returns the size of an IFD table: entry count, headers and offset to the next IFD
func tableSize(numEntries int) int64 {
	return 2 + int64(numEntries)*entry.Size + 4
}

// encodedSize returns the number of bytes Encode writes for dir, sub-IFDs included.
func encodedSize(dir Directory) int64 {
	size := tableSize(len(dir.Entries) + len(dir.Children))
	for _, en := range dir.Entries {
		if s := entry.DataSize(en.Value); s > entry.InlineSize {
			size += int64(s)
		}
	}
	for _, child := range dir.Children {
		size += encodedSize(child)
	}
	return size
}
