package ogg

import (
	"fmt"
	"io"
	"log/slog"
)

// Packet is a logical packet reassembled from one or more page segments.
type Packet struct {
	// SerialNumber identifies the logical bitstream the packet belongs to.
	SerialNumber uint32

	// GranulePos is the granule position of the page the packet completed on.
	GranulePos uint64

	// Data holds the packet bytes. It may be empty.
	Data []byte
}

// PacketReader reassembles packets from the pages of an Ogg stream.
//
// Packets may span any number of pages. Pages of different logical streams
// may be interleaved; each serial number has its own accumulator.
type PacketReader struct {
	pages *PageReader
	cfg   readerConfig

	page *Page // page being consumed, nil before the first page
	seg  int   // next segment index in page
	off  int   // payload offset of segment seg

	partial map[uint32][]byte // packets in progress, by serial number
}

// NewPacketReader creates a PacketReader reading pages from r.
func NewPacketReader(r io.Reader, opts ...ReaderOption) *PacketReader {
	return &PacketReader{
		pages:   NewPageReader(r, opts...),
		cfg:     newReaderConfig(opts),
		partial: make(map[uint32][]byte),
	}
}

// NextPacket returns the next complete packet in stream order.
//
// It returns io.EOF once the source is exhausted between packets. If the
// source ends while a packet is still being assembled, the error is
// ErrUnexpectedEOS. A page that arrives without the continued-packet flag
// while its stream has a packet in progress fails with ErrBrokenPacket.
func (pr *PacketReader) NextPacket() (*Packet, error) {
	for {
		if pr.page == nil || pr.seg >= len(pr.page.Segments) {
			if err := pr.advance(); err != nil {
				return nil, err
			}
			continue
		}

		serial := pr.page.SerialNumber
		n := int(pr.page.Segments[pr.seg])
		data := append(pr.partial[serial], pr.page.Payload[pr.off:pr.off+n]...)
		pr.seg++
		pr.off += n

		if n == maxSegmentSize {
			pr.partial[serial] = data
			continue
		}

		delete(pr.partial, serial)
		if data == nil {
			data = []byte{}
		}
		return &Packet{
			SerialNumber: serial,
			GranulePos:   pr.page.GranulePos,
			Data:         data,
		}, nil
	}
}

// advance loads the next page and positions the cursor on its first segment
// that starts or continues a packet this reader is tracking.
func (pr *PacketReader) advance() error {
	page, err := pr.pages.NextPage()
	if err == io.EOF {
		if len(pr.partial) > 0 {
			return ErrUnexpectedEOS
		}
		return io.EOF
	}
	if err != nil {
		return err
	}

	pr.page = page
	pr.seg = 0
	pr.off = 0

	inProgress := len(pr.partial[page.SerialNumber]) > 0
	switch {
	case page.IsBOS() && page.IsContinuation():
		// A first page has nothing to continue.
		return fmt.Errorf("%w: page %d of stream %08x is both first and continued",
			ErrBrokenPacket, page.PageSequence, page.SerialNumber)
	case inProgress && !page.IsContinuation():
		return fmt.Errorf("%w: page %d of stream %08x", ErrBrokenPacket, page.PageSequence, page.SerialNumber)
	case !inProgress && page.IsContinuation():
		pr.skipFragment()
	}
	return nil
}

// skipFragment discards the leading segments of a continued page whose
// packet started before the reader joined the stream.
func (pr *PacketReader) skipFragment() {
	page := pr.page
	for pr.seg < len(page.Segments) {
		n := int(page.Segments[pr.seg])
		pr.seg++
		pr.off += n
		if n < maxSegmentSize {
			break
		}
	}
	pr.cfg.logger.Debug("ogg: discarded orphan packet fragment",
		slog.Uint64("serial", uint64(page.SerialNumber)),
		slog.Uint64("sequence", uint64(page.PageSequence)),
		slog.Int("bytes", pr.off))
}
