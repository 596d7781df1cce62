package ogg

import (
	"fmt"
	"io"
)

// WriterConfig configures a Writer.
type WriterConfig struct {
	// SerialNumber identifies the logical bitstream written.
	SerialNumber uint32

	// MaxSegmentsPerPage caps the segment table of each page (1-255).
	// Zero means 255. Small values force packets to span pages.
	MaxSegmentsPerPage int
}

// Writer frames packets of a single logical stream into Ogg pages.
//
// Every packet starts on a fresh page; a packet that does not fit in one
// page continues on pages flagged PageFlagContinuation. The first page
// written carries PageFlagBOS.
type Writer struct {
	w       io.Writer
	config  WriterConfig
	pageSeq uint32 // Page sequence counter
	started bool   // BOS page written?
	closed  bool   // EOS page written?
}

// NewWriter creates a Writer. Nothing is written until the first packet.
func NewWriter(w io.Writer, config WriterConfig) (*Writer, error) {
	if config.MaxSegmentsPerPage == 0 {
		config.MaxSegmentsPerPage = maxSegments
	}
	if config.MaxSegmentsPerPage < 1 || config.MaxSegmentsPerPage > maxSegments {
		return nil, fmt.Errorf("ogg: invalid segments per page %d", config.MaxSegmentsPerPage)
	}
	return &Writer{w: w, config: config}, nil
}

// WritePacket writes packet with the given granule position, which is
// recorded on the page where the packet completes.
func (ow *Writer) WritePacket(packet []byte, granulePos uint64) error {
	if ow.closed {
		return ErrWriterClosed
	}

	segments := BuildSegmentTable(len(packet))
	var headerType byte
	for len(segments) > 0 {
		n := min(len(segments), ow.config.MaxSegmentsPerPage)
		size := payloadSize(segments[:n])

		// Intermediate pages complete no packet and carry granule -1.
		granule := ^uint64(0)
		if n == len(segments) {
			granule = granulePos
		}
		if err := ow.writePage(headerType, granule, segments[:n], packet[:size]); err != nil {
			return err
		}

		segments = segments[n:]
		packet = packet[size:]
		headerType = PageFlagContinuation
	}
	return nil
}

// Close writes an empty EOS page and marks the stream as closed.
// The writer should not be used after Close.
func (ow *Writer) Close() error {
	if ow.closed {
		return nil
	}
	if err := ow.writePage(PageFlagEOS, 0, nil, nil); err != nil {
		return err
	}
	ow.closed = true
	return nil
}

// writePage writes a single Ogg page.
func (ow *Writer) writePage(headerType byte, granulePos uint64, segments, payload []byte) error {
	if !ow.started {
		headerType |= PageFlagBOS
		ow.started = true
	}

	page := &Page{
		Version:      streamVersion,
		HeaderType:   headerType,
		GranulePos:   granulePos,
		SerialNumber: ow.config.SerialNumber,
		PageSequence: ow.pageSeq,
		Segments:     segments,
		Payload:      payload,
	}
	if _, err := ow.w.Write(page.Encode()); err != nil {
		return err
	}

	ow.pageSeq++
	return nil
}

// PageCount returns the number of pages written so far.
func (ow *Writer) PageCount() uint32 {
	return ow.pageSeq
}
