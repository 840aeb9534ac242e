package tiff

import (
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// Validate reports every reason doc cannot be encoded.
// Problems found in the IFDs are aggregated in a *multierror.Error.
func Validate(doc *Document) error {
	if doc == nil || len(doc.Directories) == 0 {
		return newError(KindEmptyDocument, -1, "document has no IFD")
	}

	var result *multierror.Error
	for _, dir := range doc.Directories {
		result = validateDirectory(result, dir)
	}
	if result != nil {
		return result
	}

	size := int64(HeaderSize)
	for _, dir := range doc.Directories {
		size += encodedSize(dir)
	}
	if size > math.MaxUint32 {
		result = multierror.Append(result, newError(KindInvalidValue, -1, "encoded document takes %d bytes, more than offsets can address", size))
	}

	return result.ErrorOrNil()
}

func validateDirectory(result *multierror.Error, dir Directory) *multierror.Error {
	if n := len(dir.Entries) + len(dir.Children); n > math.MaxUint16 {
		result = multierror.Append(result, newError(KindTooManyEntries, -1, "IFD 0x%X has %d entries", dir.ID, n))
	}

	for _, en := range dir.Entries {
		switch v := en.Value.(type) {
		case nil:
			result = multierror.Append(result, newError(KindInvalidValue, -1, "IFD 0x%X: entry 0x%X has no value", dir.ID, en.ID))
		case entry.String:
			if strings.IndexByte(string(v), 0) >= 0 {
				result = multierror.Append(result, newError(KindInvalidValue, -1, "IFD 0x%X: string entry 0x%X contains a NUL byte", dir.ID, en.ID))
			}
		}
	}

	for _, child := range dir.Children {
		if !isPointer(entry.ID(child.ID)) {
			result = multierror.Append(result, newError(KindInvalidPointer, -1, "IFD 0x%X: sub-IFD 0x%X is not reachable through a known pointer", dir.ID, child.ID))
		}
		result = validateDirectory(result, child)
	}

	return result
}
