package ogg

import (
	"errors"
	"fmt"
	"io"
)

// Package-level errors for Ogg parsing.
var (
	// ErrInvalidPage indicates the page structure is malformed: the "OggS"
	// capture pattern is missing or the stream structure version is not 0.
	ErrInvalidPage = errors.New("ogg: invalid page structure")

	// ErrBadCRC indicates the page CRC checksum does not match the computed value.
	// This typically indicates data corruption.
	ErrBadCRC = errors.New("ogg: CRC mismatch")

	// ErrBrokenPacket indicates a page did not carry the continued-packet flag
	// although a packet of the same logical stream was still being assembled.
	ErrBrokenPacket = errors.New("ogg: missing packet continuation")

	// ErrUnexpectedEOS indicates the stream ended in the middle of a page or
	// packet. It wraps io.ErrUnexpectedEOF.
	ErrUnexpectedEOS = fmt.Errorf("ogg: unexpected end of stream: %w", io.ErrUnexpectedEOF)

	// ErrWriterClosed is returned by Writer methods called after Close.
	ErrWriterClosed = errors.New("ogg: writer closed")
)
