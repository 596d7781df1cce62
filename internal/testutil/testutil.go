// Package testutil builds Vorbis header packets and framed Ogg streams for
// tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/thesyncim/oggmeta/container/ogg"
)

// TestSerial is the stream serial number used by BuildStream.
const TestSerial = 0x0a0b0c0d

// CommentPacket encodes a Vorbis comment header with the given vendor and
// raw comment entries. Entries are written verbatim, so malformed entries
// (no '=') can be produced.
func CommentPacket(vendor string, entries ...string) []byte {
	var buf bytes.Buffer
	buf.WriteByte(3)
	buf.WriteString("vorbis")
	writeString(&buf, vendor)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(entries)))
	for _, e := range entries {
		writeString(&buf, e)
	}
	buf.WriteByte(1) // framing bit
	return buf.Bytes()
}

// IdentificationPacket returns a 30-byte Vorbis identification header for a
// 44.1 kHz stereo stream.
func IdentificationPacket() []byte {
	var buf bytes.Buffer
	buf.WriteByte(1)
	buf.WriteString("vorbis")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))      // version
	buf.WriteByte(2)                                            // channels
	_ = binary.Write(&buf, binary.LittleEndian, uint32(44100))  // sample rate
	_ = binary.Write(&buf, binary.LittleEndian, int32(0))       // bitrate maximum
	_ = binary.Write(&buf, binary.LittleEndian, int32(128000))  // bitrate nominal
	_ = binary.Write(&buf, binary.LittleEndian, int32(0))       // bitrate minimum
	buf.WriteByte(0xb8)                                         // blocksizes 256/2048
	buf.WriteByte(1)                                            // framing bit
	return buf.Bytes()
}

// SetupPacket returns a stand-in for the Vorbis setup header. Only the
// signature is meaningful.
func SetupPacket() []byte {
	return append([]byte{5, 'v', 'o', 'r', 'b', 'i', 's'}, bytes.Repeat([]byte{0x42}, 64)...)
}

// BuildStream frames packets into an Ogg stream with at most segmentsPerPage
// segments per page (0 means 255) and closes it with an empty EOS page.
func BuildStream(tb testing.TB, segmentsPerPage int, packets ...[]byte) []byte {
	tb.Helper()
	stream, _ := BuildStreamPages(tb, segmentsPerPage, packets...)
	return stream
}

// BuildStreamPages is BuildStream that also reports how many pages each
// packet occupies. The trailing EOS page is not counted.
func BuildStreamPages(tb testing.TB, segmentsPerPage int, packets ...[]byte) (stream []byte, pages []int) {
	tb.Helper()

	var buf bytes.Buffer
	w, err := ogg.NewWriter(&buf, ogg.WriterConfig{
		SerialNumber:       TestSerial,
		MaxSegmentsPerPage: segmentsPerPage,
	})
	if err != nil {
		tb.Fatalf("ogg.NewWriter: %v", err)
	}
	pages = make([]int, len(packets))
	for i, p := range packets {
		before := w.PageCount()
		if err := w.WritePacket(p, 0); err != nil {
			tb.Fatalf("WritePacket(%d): %v", i, err)
		}
		pages[i] = int(w.PageCount() - before)
	}
	if err := w.Close(); err != nil {
		tb.Fatalf("Close: %v", err)
	}
	return buf.Bytes(), pages
}

// VorbisStream builds a stream carrying the three Vorbis header packets,
// with the comment header built from vendor and entries.
func VorbisStream(tb testing.TB, segmentsPerPage int, vendor string, entries ...string) []byte {
	tb.Helper()
	return BuildStream(tb, segmentsPerPage,
		IdentificationPacket(),
		CommentPacket(vendor, entries...),
		SetupPacket(),
	)
}

func writeString(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}
