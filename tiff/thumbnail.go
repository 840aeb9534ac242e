package tiff

import (
	"io"

	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// ReadThumbnail reads the embedded thumbnail of doc, which was decoded from r.
// The stream must be positioned at the start of the TIFF header, as it was for Decode.
// The thumbnail is located by the ThumbnailOffset and ThumbnailLength entries of the first top-level IFD having both.
func ReadThumbnail(r io.ReadSeeker, doc *Document) ([]byte, error) {
	for _, dir := range doc.Directories {
		offsetEntry, ok := dir.Find(entry.ThumbnailOffset)
		if !ok {
			continue
		}
		lengthEntry, ok := dir.Find(entry.ThumbnailLength)
		if !ok {
			continue
		}

		offset, ok := offsetEntry.Uint(0)
		if !ok || offset == 0 {
			continue
		}
		length, ok := lengthEntry.Uint(0)
		if !ok || length == 0 {
			continue
		}

		src, err := newSource(r)
		if err != nil {
			return nil, err
		}
		return src.readAt(int64(offset), uint64(length))
	}

	return nil, notFound("thumbnail")
}
