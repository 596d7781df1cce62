package ogg

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// PageReader reads Ogg pages one at a time from an underlying reader.
// It holds at most one page in memory and never reads past the end of the
// page it returns.
type PageReader struct {
	r      io.Reader
	cfg    readerConfig
	offset int64 // stream offset of the next page
	header [pageHeaderSize + maxSegments]byte
}

// NewPageReader creates a PageReader reading from r.
func NewPageReader(r io.Reader, opts ...ReaderOption) *PageReader {
	return &PageReader{
		r:   r,
		cfg: newReaderConfig(opts),
	}
}

// Offset returns the stream offset of the next page to be read, relative to
// where the reader started.
func (pr *PageReader) Offset() int64 {
	return pr.offset
}

// NextPage reads and validates the next page.
//
// It returns io.EOF when the source ends cleanly on a page boundary. A source
// that ends inside a page yields an error wrapping io.ErrUnexpectedEOF; other
// read failures are returned wrapped as they are.
func (pr *PageReader) NextPage() (*Page, error) {
	start := pr.offset

	fixed := pr.header[:pageHeaderSize]
	if _, err := io.ReadFull(pr.r, fixed); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("ogg: page header at offset %d: %w", start, err)
	}
	if err := checkHeader(fixed); err != nil {
		return nil, fmt.Errorf("page at offset %d: %w", start, err)
	}

	numSegments := int(fixed[26])
	segments := pr.header[pageHeaderSize : pageHeaderSize+numSegments]
	if err := readFull(pr.r, segments); err != nil {
		return nil, fmt.Errorf("ogg: segment table at offset %d: %w", start, err)
	}

	headerSize := pageHeaderSize + numSegments
	raw := make([]byte, headerSize+payloadSize(segments))
	copy(raw, pr.header[:headerSize])
	if err := readFull(pr.r, raw[headerSize:]); err != nil {
		return nil, fmt.Errorf("ogg: page body at offset %d: %w", start, err)
	}

	page, _, err := decodePage(raw)
	if err != nil {
		return nil, fmt.Errorf("page at offset %d: %w", start, err)
	}
	pr.offset += int64(page.Size())

	if sum := pageChecksum(raw); sum != page.Checksum {
		if !pr.cfg.lenientChecksum {
			return nil, fmt.Errorf("page at offset %d: %w", start, ErrBadCRC)
		}
		pr.cfg.logger.Warn("ogg: ignoring page checksum mismatch",
			slog.Int64("offset", start),
			slog.Uint64("serial", uint64(page.SerialNumber)),
			slog.Uint64("sequence", uint64(page.PageSequence)),
			slog.String("stored", fmt.Sprintf("%08x", page.Checksum)),
			slog.String("computed", fmt.Sprintf("%08x", sum)))
	}

	return page, nil
}

// readFull is io.ReadFull for data that must be present: running out of
// input before buf is filled is always io.ErrUnexpectedEOF.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
