// Package jpeg locates the EXIF metadata embedded in a JPEG stream.
package jpeg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerEOI    = 0xD9
	markerSOS    = 0xDA
	markerAPP1   = 0xE1
	markerTEM    = 0x01
	markerRST0   = 0xD0
	markerRST7   = 0xD7
)

var exifHeader = []byte{'E', 'x', 'i', 'f', 0x00, 0x00}

var (
	ErrNoMarker = errors.New("couldn't find segment marker")
	ErrNoExif   = errors.New("no exif segment")
)

// ExtractExif returns the TIFF structure stored in the first EXIF APP1 segment of r.
// Segments are scanned from the current position, which must be at a marker (usually the start of the file).
func ExtractExif(r io.ReadSeeker) ([]byte, error) {
	var buffer [2]byte
	for {
		if _, err := io.ReadFull(r, buffer[:1]); err != nil {
			return nil, endOfSegments(err)
		}
		if buffer[0] != markerPrefix {
			return nil, fmt.Errorf("%w: got 0x%X", ErrNoMarker, buffer[0])
		}

		// any number of fill bytes may precede the marker
		for buffer[0] == markerPrefix {
			if _, err := io.ReadFull(r, buffer[:1]); err != nil {
				return nil, endOfSegments(err)
			}
		}

		switch marker := buffer[0]; {
		case marker == 0x00, marker == markerSOI, marker == markerTEM:
			// byte stuffing or standalone marker: nothing to skip
			continue
		case marker >= markerRST0 && marker <= markerRST7:
			continue
		case marker == markerEOI, marker == markerSOS:
			// compressed image data follows, metadata segments come before it
			return nil, ErrNoExif
		case marker == markerAPP1:
			length, err := segmentLength(r, buffer[:])
			if err != nil {
				return nil, err
			}
			if length < len(exifHeader) {
				if _, err := r.Seek(int64(length), io.SeekCurrent); err != nil {
					return nil, err
				}
				continue
			}

			header := make([]byte, len(exifHeader))
			if _, err := io.ReadFull(r, header); err != nil {
				return nil, endOfSegments(err)
			}
			if bytes.Equal(header, exifHeader) {
				segment := make([]byte, length-len(exifHeader))
				if _, err := io.ReadFull(r, segment); err != nil {
					return nil, endOfSegments(err)
				}
				return segment, nil
			}
			if _, err := r.Seek(int64(length-len(exifHeader)), io.SeekCurrent); err != nil {
				return nil, err
			}
		default:
			length, err := segmentLength(r, buffer[:])
			if err != nil {
				return nil, err
			}
			if _, err := r.Seek(int64(length), io.SeekCurrent); err != nil {
				return nil, err
			}
		}
	}
}

// segmentLength reads the length of a segment, excluding the 2 bytes of the length itself.
func segmentLength(r io.Reader, buffer []byte) (int, error) {
	if _, err := io.ReadFull(r, buffer[:2]); err != nil {
		return 0, endOfSegments(err)
	}
	length := int(binary.BigEndian.Uint16(buffer[:2]))
	if length < 2 {
		return 0, fmt.Errorf("invalid segment length %d", length)
	}
	return length - 2, nil
}

func endOfSegments(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrNoExif, err)
	}
	return err
}
