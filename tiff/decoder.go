package tiff

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// PointerPolicy decides what happens to a sub-IFD pointer whose value is not stored inline
type PointerPolicy uint8

const (
	// PointerStrict fails the decoding with ErrInvalidPointer
	PointerStrict PointerPolicy = iota
	// PointerAsEntry keeps the pointer as an ordinary entry, without following it
	PointerAsEntry
)

// Decoder decodes a TIFF structure from a seekable stream.
// All offsets are relative to the position of the stream when Decode is called.
type Decoder struct {
	r              io.ReadSeeker
	logger         *zap.Logger
	maxDirectories int
	maxDepth       int
	policy         PointerPolicy
}

func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{
		r:              r,
		maxDirectories: DefaultMaxDirectories,
		maxDepth:       DefaultMaxDepth,
		policy:         PointerStrict,
	}
}

// WithMaxDirectories caps the number of top-level IFDs; a longer chain fails with ErrChainTooLong.
func (d *Decoder) WithMaxDirectories(n int) *Decoder {
	d.maxDirectories = n
	return d
}

// WithMaxDepth caps the nesting of sub-IFDs.
func (d *Decoder) WithMaxDepth(n int) *Decoder {
	d.maxDepth = n
	return d
}

func (d *Decoder) WithPointerPolicy(p PointerPolicy) *Decoder {
	d.policy = p
	return d
}

func (d *Decoder) WithLogger(l *zap.Logger) *Decoder {
	d.logger = l
	return d
}

// Decode reads the TIFF header and every IFD of the chain it starts.
func (d *Decoder) Decode() (*Document, error) {
	log := d.logger
	if log == nil {
		log = Logger()
	}

	src, err := newSource(d.r)
	if err != nil {
		return nil, err
	}

	header, err := src.readAt(0, HeaderSize)
	if err != nil {
		if errors.Is(err, ErrSeekOutOfRange) {
			return nil, wrapError(KindTruncated, 0, err, "empty stream")
		}
		return nil, err
	}

	order, err := readEndianness(header[0:2])
	if err != nil {
		return nil, err
	}
	if err := validateMagicNumber(order, header[2:4]); err != nil {
		return nil, err
	}

	offset := order.Uint32(header[4:8])
	if offset == 0 {
		return nil, newError(KindEmptyDocument, 4, "offset to first IFD is 0")
	}

	w := &walker{
		source:   src,
		order:    order,
		log:      log,
		maxDepth: d.maxDepth,
		policy:   d.policy,
		visited:  make(map[uint32]struct{}),
	}

	doc := &Document{ByteOrder: order}
	for i := 0; ; i++ {
		if i >= d.maxDirectories {
			return nil, newError(KindChainTooLong, int64(offset), "more than %d IFDs", d.maxDirectories)
		}

		dir, next, err := w.directory(uint16(i), offset, 0)
		if err != nil {
			return nil, err
		}
		doc.Directories = append(doc.Directories, dir)

		if next == 0 {
			break
		}
		offset = next
	}

	log.Debug("decoded document", zap.Int("directories", len(doc.Directories)))

	return doc, nil
}

// walker holds the state of a single Decode call
type walker struct {
	*source
	order    entry.ByteOrder
	log      *zap.Logger
	maxDepth int
	policy   PointerPolicy
	visited  map[uint32]struct{}
}

// directory decodes the IFD at offset and returns it with the offset of the next IFD.
func (w *walker) directory(id uint16, offset uint32, depth int) (Directory, uint32, error) {
	if _, ok := w.visited[offset]; ok {
		return Directory{}, 0, newError(KindDirectoryLoop, int64(offset), "IFD visited twice")
	}
	w.visited[offset] = struct{}{}

	buffer, err := w.readAt(int64(offset), 2)
	if err != nil {
		return Directory{}, 0, err
	}
	numEntries := int64(w.order.Uint16(buffer))

	// headers are contiguous, followed by the offset to the next IFD
	block, err := w.readAt(int64(offset)+2, uint64(numEntries)*entry.Size+4)
	if err != nil {
		return Directory{}, 0, err
	}
	next := w.order.Uint32(block[numEntries*entry.Size:])

	dir := Directory{ID: id}
	for i := int64(0); i < numEntries; i++ {
		position := int64(offset) + 2 + i*entry.Size
		h := entry.DecodeHeader(w.order, block[i*entry.Size:])

		if isPointer(h.ID) {
			if h.IsInline() {
				if depth+1 > w.maxDepth {
					return Directory{}, 0, newError(KindDirectoryLoop, position, "sub-IFD 0x%X nested deeper than %d", h.ID, w.maxDepth)
				}
				child, _, err := w.directory(uint16(h.ID), h.Offset(w.order), depth+1)
				if err != nil {
					return Directory{}, 0, err
				}
				dir.Children = append(dir.Children, child)
				continue
			}

			if w.policy == PointerStrict {
				return Directory{}, 0, newError(KindInvalidPointer, position, "sub-IFD pointer 0x%X has a %d bytes value", h.ID, h.DataSize())
			}
			w.log.Warn("sub-IFD pointer not followed",
				zap.Uint16("id", uint16(h.ID)),
				zap.Stringer("type", h.DataType),
				zap.Uint32("count", h.Length))
		}

		value, err := w.value(position, h)
		if err != nil {
			return Directory{}, 0, err
		}
		dir.Entries = append(dir.Entries, entry.Entry{ID: h.ID, Value: value})
	}

	w.log.Debug("decoded IFD",
		zap.Uint16("id", id),
		zap.Uint32("offset", offset),
		zap.Int("entries", len(dir.Entries)),
		zap.Int("children", len(dir.Children)),
		zap.Uint32("next", next))

	return dir, next, nil
}

// value materializes the payload of h, reading it from its offset when it is not inline, and decodes it.
func (w *walker) value(position int64, h entry.Header) (entry.Value, error) {
	payload := h.Raw[:]
	if !h.IsInline() {
		var err error
		payload, err = w.readAt(int64(h.Offset(w.order)), h.DataSize())
		if err != nil {
			return nil, err
		}
	}

	value, err := entry.DecodeValue(w.order, h.DataType, h.Length, payload)
	if err != nil {
		return nil, valueError(position, h, err)
	}
	return value, nil
}
