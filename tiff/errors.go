package tiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fedragon/tiff-ifd/tiff/entry"
)

// Kind categorizes a decode or encode failure
type Kind string

const (
	KindMalformedHeader   Kind = "malformed_header"
	KindTruncated         Kind = "truncated"
	KindInvalidTypeCode   Kind = "invalid_type_code"
	KindMissingTerminator Kind = "missing_terminator"
	KindSeekOutOfRange    Kind = "seek_out_of_range"
	KindChainTooLong      Kind = "chain_too_long"
	KindDirectoryLoop     Kind = "directory_loop"
	KindInvalidPointer    Kind = "invalid_pointer"
	KindTooManyEntries    Kind = "too_many_entries"
	KindInvalidValue      Kind = "invalid_value"
	KindEmptyDocument     Kind = "empty_document"
	KindIO                Kind = "io"
)

// Sentinel errors, one per Kind: errors.Is(err, ErrTruncated) matches any *Error of KindTruncated.
var (
	ErrMalformedHeader   = &Error{Kind: KindMalformedHeader}
	ErrTruncated         = &Error{Kind: KindTruncated}
	ErrInvalidTypeCode   = &Error{Kind: KindInvalidTypeCode}
	ErrMissingTerminator = &Error{Kind: KindMissingTerminator}
	ErrSeekOutOfRange    = &Error{Kind: KindSeekOutOfRange}
	ErrChainTooLong      = &Error{Kind: KindChainTooLong}
	ErrDirectoryLoop     = &Error{Kind: KindDirectoryLoop}
	ErrInvalidPointer    = &Error{Kind: KindInvalidPointer}
	ErrTooManyEntries    = &Error{Kind: KindTooManyEntries}
	ErrInvalidValue      = &Error{Kind: KindInvalidValue}
	ErrEmptyDocument     = &Error{Kind: KindEmptyDocument}
	ErrIO                = &Error{Kind: KindIO}
)

// Error is returned by every decode and encode operation
type Error struct {
	Cause  error
	Kind   Kind
	Detail string
	Offset int64 // offset from the start of the TIFF header, -1 if not relevant
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteByte(']')

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at 0x%X", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, offset int64, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, offset int64, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Cause: cause, Detail: fmt.Sprintf(format, args...)}
}

// valueError classifies a failure of entry.DecodeValue
func valueError(offset int64, h entry.Header, err error) *Error {
	switch {
	case errors.Is(err, entry.ErrUnknownDataType):
		return wrapError(KindInvalidTypeCode, offset, err, "entry 0x%X", h.ID)
	case errors.Is(err, entry.ErrMissingTerminator):
		return wrapError(KindMissingTerminator, offset, err, "entry 0x%X", h.ID)
	default:
		return wrapError(KindTruncated, offset, err, "entry 0x%X", h.ID)
	}
}

// ErrNotFound is returned when a lookup finds nothing in a decoded document
type ErrNotFound struct {
	message string
}

func (e ErrNotFound) Error() string {
	return e.message
}

func notFound(what string) ErrNotFound {
	return ErrNotFound{message: fmt.Sprintf("not found: %s", what)}
}
