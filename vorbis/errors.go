package vorbis

import "errors"

var (
	// ErrNotCommentHeader indicates the packet does not start with the
	// comment header signature (type 3 followed by "vorbis").
	ErrNotCommentHeader = errors.New("vorbis: not a comment header packet")

	// ErrInvalidText indicates a vendor or comment string is not valid UTF-8.
	ErrInvalidText = errors.New("vorbis: invalid UTF-8 string")

	// ErrLengthOverflow indicates a declared length does not fit in an int.
	ErrLengthOverflow = errors.New("vorbis: length overflows int")

	// ErrMalformedComment indicates a comment entry without a '=' separator.
	ErrMalformedComment = errors.New("vorbis: malformed comment")
)
