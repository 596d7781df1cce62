package ogg

import (
	"encoding/binary"
	"fmt"
)

// Page header flag constants.
const (
	// PageFlagContinuation indicates this page contains data from a packet
	// that began on a previous page.
	PageFlagContinuation = 0x01

	// PageFlagBOS (Beginning of Stream) indicates this is the first page
	// of a logical bitstream.
	PageFlagBOS = 0x02

	// PageFlagEOS (End of Stream) indicates this is the last page of a
	// logical bitstream.
	PageFlagEOS = 0x04
)

// Page layout constants.
const (
	// pageHeaderSize is the fixed portion of the page header (before segment table).
	pageHeaderSize = 27

	// maxSegments is the largest segment table a page can carry.
	maxSegments = 255

	// maxSegmentSize is the lacing value that continues a packet.
	maxSegmentSize = 255

	// checksumOffset is the position of the CRC field in the header.
	checksumOffset = 22

	// oggMagic is the capture pattern that identifies an Ogg page.
	oggMagic = "OggS"

	// streamVersion is the only stream structure version defined.
	streamVersion = 0
)

// Page represents a single Ogg page.
type Page struct {
	// Version is the stream structure version (always 0).
	Version byte

	// HeaderType contains page flags (continuation, BOS, EOS).
	HeaderType byte

	// GranulePos is the codec-defined position of the last packet that
	// completes on this page.
	GranulePos uint64

	// SerialNumber identifies the logical bitstream.
	SerialNumber uint32

	// PageSequence is the page sequence number within the bitstream.
	PageSequence uint32

	// Checksum is the CRC stored in the page header. Encode overwrites it.
	Checksum uint32

	// Segments contains the segment table entries.
	// Each entry is the size of a segment (0-255).
	Segments []byte

	// Payload contains the concatenated segment data.
	Payload []byte
}

// BuildSegmentTable creates a segment table for a packet of the given length.
// Packets larger than 255 bytes span multiple segments (each 255 bytes except
// the final segment which contains the remainder).
func BuildSegmentTable(packetLen int) []byte {
	// A packet whose length is a multiple of 255 (including zero) needs a
	// trailing zero-length segment to terminate it.
	full := packetLen / maxSegmentSize
	segments := make([]byte, full+1)
	for i := 0; i < full; i++ {
		segments[i] = maxSegmentSize
	}
	segments[full] = byte(packetLen % maxSegmentSize)
	return segments
}

// IsBOS returns true if this is a Beginning of Stream page.
func (p *Page) IsBOS() bool {
	return p.HeaderType&PageFlagBOS != 0
}

// IsEOS returns true if this is an End of Stream page.
func (p *Page) IsEOS() bool {
	return p.HeaderType&PageFlagEOS != 0
}

// IsContinuation returns true if this page continues a packet from a previous page.
func (p *Page) IsContinuation() bool {
	return p.HeaderType&PageFlagContinuation != 0
}

// EndsMidPacket reports whether the last segment on the page is 255, meaning
// the final packet carries on into the next page of the same stream.
func (p *Page) EndsMidPacket() bool {
	return len(p.Segments) > 0 && p.Segments[len(p.Segments)-1] == maxSegmentSize
}

// Size returns the encoded size of the page in bytes.
func (p *Page) Size() int {
	return pageHeaderSize + len(p.Segments) + len(p.Payload)
}

// Encode serializes the page to bytes with proper CRC.
// The output format is:
//   - 27-byte header
//   - Segment table
//   - Payload
//
// The CRC is computed over the entire page (with CRC field zeroed) and
// stored in p.Checksum as well.
func (p *Page) Encode() []byte {
	headerSize := pageHeaderSize + len(p.Segments)
	data := make([]byte, headerSize+len(p.Payload))

	copy(data[0:4], oggMagic)
	data[4] = p.Version
	data[5] = p.HeaderType
	binary.LittleEndian.PutUint64(data[6:14], p.GranulePos)
	binary.LittleEndian.PutUint32(data[14:18], p.SerialNumber)
	binary.LittleEndian.PutUint32(data[18:22], p.PageSequence)
	data[26] = byte(len(p.Segments))
	copy(data[pageHeaderSize:], p.Segments)
	copy(data[headerSize:], p.Payload)

	p.Checksum = pageChecksum(data)
	binary.LittleEndian.PutUint32(data[checksumOffset:checksumOffset+4], p.Checksum)

	return data
}

// ParsePage parses an Ogg page from bytes.
// Returns the parsed page, number of bytes consumed, and any error.
// Returns ErrInvalidPage if the capture pattern or version is wrong,
// ErrUnexpectedEOS if data ends before the page does and ErrBadCRC if the
// checksum does not match.
func ParsePage(data []byte) (*Page, int, error) {
	p, n, err := decodePage(data)
	if err != nil {
		return nil, 0, err
	}
	if pageChecksum(data[:n]) != p.Checksum {
		return nil, 0, ErrBadCRC
	}
	return p, n, nil
}

// decodePage parses the page at the start of data without checking its CRC.
func decodePage(data []byte) (*Page, int, error) {
	if len(data) < pageHeaderSize {
		return nil, 0, ErrUnexpectedEOS
	}
	if err := checkHeader(data); err != nil {
		return nil, 0, err
	}

	numSegments := int(data[26])
	headerSize := pageHeaderSize + numSegments
	if len(data) < headerSize {
		return nil, 0, ErrUnexpectedEOS
	}

	p := &Page{
		Version:      data[4],
		HeaderType:   data[5],
		GranulePos:   binary.LittleEndian.Uint64(data[6:14]),
		SerialNumber: binary.LittleEndian.Uint32(data[14:18]),
		PageSequence: binary.LittleEndian.Uint32(data[18:22]),
		Checksum:     binary.LittleEndian.Uint32(data[22:26]),
		Segments:     make([]byte, numSegments),
	}
	copy(p.Segments, data[pageHeaderSize:headerSize])

	totalSize := headerSize + payloadSize(p.Segments)
	if len(data) < totalSize {
		return nil, 0, ErrUnexpectedEOS
	}

	p.Payload = make([]byte, totalSize-headerSize)
	copy(p.Payload, data[headerSize:totalSize])

	return p, totalSize, nil
}

// checkHeader validates the capture pattern and stream structure version of
// a fixed page header.
func checkHeader(header []byte) error {
	if string(header[0:4]) != oggMagic {
		return fmt.Errorf("%w: capture pattern %q", ErrInvalidPage, header[0:4])
	}
	if header[4] != streamVersion {
		return fmt.Errorf("%w: stream structure version %d", ErrInvalidPage, header[4])
	}
	return nil
}

func payloadSize(segments []byte) int {
	n := 0
	for _, seg := range segments {
		n += int(seg)
	}
	return n
}
