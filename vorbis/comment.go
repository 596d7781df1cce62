package vorbis

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// Vorbis header packet types.
const (
	PacketTypeIdentification = 1
	PacketTypeComment        = 3
	PacketTypeSetup          = 5
)

// signatureSize is the length of the packet type byte plus "vorbis".
const signatureSize = 7

var commentSignature = [signatureSize]byte{PacketTypeComment, 'v', 'o', 'r', 'b', 'i', 's'}

// maxLength bounds declared string lengths. It is the largest value an int
// can hold on the target platform.
var maxLength uint64 = math.MaxInt

// Comment is a decoded Vorbis comment header.
type Comment struct {
	// Vendor identifies the encoder that produced the stream.
	Vendor string

	// Fields maps each field name to its values in the order they appear.
	// It is never nil.
	Fields map[string][]string
}

// IsCommentHeader reports whether packet starts with the comment header
// signature.
func IsCommentHeader(packet []byte) bool {
	return len(packet) >= signatureSize && [signatureSize]byte(packet[:signatureSize]) == commentSignature
}

// ParseComment decodes a comment header packet.
//
// Truncated fields yield an error wrapping io.ErrUnexpectedEOF. Declared
// lengths are checked against the remaining packet before anything is
// allocated.
func ParseComment(packet []byte) (*Comment, error) {
	if !IsCommentHeader(packet) {
		return nil, ErrNotCommentHeader
	}
	d := decoder{data: packet, off: signatureSize}

	vendor, err := d.readString("vendor string")
	if err != nil {
		return nil, err
	}

	count, err := d.readUint32("comment count")
	if err != nil {
		return nil, err
	}

	c := &Comment{
		Vendor: vendor,
		Fields: make(map[string][]string),
	}
	for i := uint32(0); i < count; i++ {
		entry, err := d.readString(fmt.Sprintf("comment %d", i))
		if err != nil {
			return nil, err
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: comment %d has no '=' separator", ErrMalformedComment, i)
		}
		c.Fields[key] = append(c.Fields[key], value)
	}

	return c, nil
}

// decoder reads little-endian fields from a packet.
type decoder struct {
	data []byte
	off  int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.off
}

func (d *decoder) readUint32(field string) (uint32, error) {
	if d.remaining() < 4 {
		return 0, fmt.Errorf("vorbis: %s at offset %d: %w", field, d.off, io.ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint32(d.data[d.off:])
	d.off += 4
	return v, nil
}

// readString reads a length-prefixed UTF-8 string.
func (d *decoder) readString(field string) (string, error) {
	n, err := d.readUint32(field + " length")
	if err != nil {
		return "", err
	}
	if uint64(n) > maxLength {
		return "", fmt.Errorf("%w: %s declares %d bytes", ErrLengthOverflow, field, n)
	}
	if int(n) > d.remaining() {
		return "", fmt.Errorf("vorbis: %s declares %d bytes, %d left: %w", field, n, d.remaining(), io.ErrUnexpectedEOF)
	}

	b := d.data[d.off : d.off+int(n)]
	d.off += int(n)
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s", ErrInvalidText, field)
	}
	return string(b), nil
}
