package tiff

import (
	"errors"
	"io"
)

// source reads byte ranges addressed by offsets from the start of the TIFF header
type source struct {
	r    io.ReadSeeker
	base int64 // absolute position of the TIFF header
	size int64 // bytes available from base
}

func newSource(r io.ReadSeeker) (*source, error) {
	base, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, wrapError(KindIO, -1, err, "cannot query stream position")
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, wrapError(KindIO, -1, err, "cannot query stream size")
	}
	if _, err := r.Seek(base, io.SeekStart); err != nil {
		return nil, wrapError(KindIO, -1, err, "cannot restore stream position")
	}

	return &source{r: r, base: base, size: end - base}, nil
}

// readAt reads n bytes at offset. Ranges are checked against the stream size before allocating.
func (s *source) readAt(offset int64, n uint64) ([]byte, error) {
	if offset < 0 || offset >= s.size {
		return nil, newError(KindSeekOutOfRange, offset, "stream holds %d bytes", s.size)
	}
	if n > uint64(s.size-offset) {
		return nil, newError(KindTruncated, offset, "want %d bytes, %d available", n, s.size-offset)
	}

	if _, err := s.r.Seek(s.base+offset, io.SeekStart); err != nil {
		return nil, wrapError(KindSeekOutOfRange, offset, err, "seek failed")
	}

	buffer := make([]byte, n)
	if _, err := io.ReadFull(s.r, buffer); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, wrapError(KindTruncated, offset, err, "want %d bytes", n)
		}
		return nil, wrapError(KindIO, offset, err, "read failed")
	}

	return buffer, nil
}
