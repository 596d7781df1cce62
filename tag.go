package oggmeta

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/thesyncim/oggmeta/container/ogg"
	"github.com/thesyncim/oggmeta/vorbis"
)

// Tag holds the metadata of a Vorbis stream.
type Tag struct {
	vendor   string
	comments map[string][]string
}

// ReadFrom reads packets from r until it finds the Vorbis comment header and
// returns the decoded Tag. Reading stops right after that packet.
//
// It fails with ErrNoComments if r ends first. Any io.Reader works; an
// io.ReadSeeker such as *os.File is read from its current position.
func ReadFrom(r io.Reader, opts ...Option) (*Tag, error) {
	cfg := newConfig(opts)
	packets := ogg.NewPacketReader(r, cfg.readerOptions()...)

	for {
		p, err := packets.NextPacket()
		if err == io.EOF {
			return nil, ErrNoComments
		}
		if err != nil {
			return nil, classify(err)
		}

		if !vorbis.IsCommentHeader(p.Data) {
			cfg.logger.Debug("oggmeta: skipping packet",
				slog.Uint64("serial", uint64(p.SerialNumber)),
				slog.Int("bytes", len(p.Data)))
			continue
		}

		c, err := vorbis.ParseComment(p.Data)
		if err != nil {
			return nil, classify(err)
		}
		return &Tag{vendor: c.Vendor, comments: c.Fields}, nil
	}
}

// ReadFromPath opens the file at path and reads its Tag with ReadFrom.
func ReadFromPath(path string, opts ...Option) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return ReadFrom(f, opts...)
}

// Vendor returns the vendor string of the encoder that produced the stream.
func (t *Tag) Vendor() string {
	return t.vendor
}

// Get returns the values stored under key in stream order. The lookup is
// exact and case-sensitive. ok is false if the key never appeared.
// The returned slice is a copy.
func (t *Tag) Get(key string) (values []string, ok bool) {
	v, ok := t.comments[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Keys returns the distinct field names in sorted order.
func (t *Tag) Keys() []string {
	return slices.Sorted(maps.Keys(t.comments))
}

// Comments returns a copy of all fields.
func (t *Tag) Comments() map[string][]string {
	out := make(map[string][]string, len(t.comments))
	for k, v := range t.comments {
		out[k] = slices.Clone(v)
	}
	return out
}

// Len returns the number of distinct field names.
func (t *Tag) Len() int {
	return len(t.comments)
}
