package tiff

import (
	"io"
)

// offsetWriter keeps track of the offset from the start of the TIFF header while writing.
// Seeks are relative to the current position, so the destination does not need to start at 0.
type offsetWriter struct {
	w      io.WriteSeeker
	offset int64
}

func newOffsetWriter(w io.WriteSeeker) *offsetWriter {
	return &offsetWriter{w: w}
}

func (ow *offsetWriter) Write(p []byte) (int, error) {
	n, err := ow.w.Write(p)
	ow.offset += int64(n)
	if err != nil {
		return n, wrapError(KindIO, ow.offset, err, "write failed")
	}
	return n, nil
}

// Offset returns the offset the next byte will be written at.
func (ow *offsetWriter) Offset() int64 {
	return ow.offset
}

// seek moves to offset.
func (ow *offsetWriter) seek(offset int64) error {
	if _, err := ow.w.Seek(offset-ow.offset, io.SeekCurrent); err != nil {
		return wrapError(KindIO, offset, err, "seek failed")
	}
	ow.offset = offset
	return nil
}

// patch overwrites the bytes at offset with p, then resumes at the current offset.
func (ow *offsetWriter) patch(offset int64, p []byte) error {
	resume := ow.offset
	if err := ow.seek(offset); err != nil {
		return err
	}
	if _, err := ow.Write(p); err != nil {
		return err
	}
	return ow.seek(resume)
}
