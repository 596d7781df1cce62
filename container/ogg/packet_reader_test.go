package ogg

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func readAllPackets(t *testing.T, stream []byte) []*Packet {
	t.Helper()
	pr := NewPacketReader(bytes.NewReader(stream))
	var packets []*Packet
	for {
		p, err := pr.NextPacket()
		if err == io.EOF {
			return packets
		}
		if err != nil {
			t.Fatalf("NextPacket failed after %d packets: %v", len(packets), err)
		}
		packets = append(packets, p)
	}
}

func patterned(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i%251)
	}
	return b
}

func TestPacketReader_MultiplePacketsPerPage(t *testing.T) {
	stream := encodePages(&Page{
		HeaderType:   PageFlagBOS,
		SerialNumber: 1,
		GranulePos:   1000,
		Segments:     []byte{50, 0, 255, 45, 75},
		Payload:      append(append(patterned(50, 1), patterned(300, 2)...), patterned(75, 3)...),
	})

	packets := readAllPackets(t, stream)
	wantLens := []int{50, 0, 300, 75}
	if len(packets) != len(wantLens) {
		t.Fatalf("got %d packets, want %d", len(packets), len(wantLens))
	}
	for i, want := range wantLens {
		if len(packets[i].Data) != want {
			t.Errorf("packet %d len = %d, want %d", i, len(packets[i].Data), want)
		}
		if packets[i].SerialNumber != 1 || packets[i].GranulePos != 1000 {
			t.Errorf("packet %d serial=%d granule=%d", i, packets[i].SerialNumber, packets[i].GranulePos)
		}
	}
	if packets[1].Data == nil {
		t.Error("zero-length packet has nil Data")
	}
	if !bytes.Equal(packets[2].Data, patterned(300, 2)) {
		t.Error("packet 2 content mismatch")
	}
}

func TestPacketReader_SpanningPages(t *testing.T) {
	packet := patterned(255*5+17, 9)

	for _, perPage := range []int{1, 2, 3, 255} {
		var buf bytes.Buffer
		w, err := NewWriter(&buf, WriterConfig{SerialNumber: 5, MaxSegmentsPerPage: perPage})
		if err != nil {
			t.Fatalf("NewWriter failed: %v", err)
		}
		if err := w.WritePacket([]byte("head"), 0); err != nil {
			t.Fatalf("WritePacket failed: %v", err)
		}
		if err := w.WritePacket(packet, 0); err != nil {
			t.Fatalf("WritePacket failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}

		packets := readAllPackets(t, buf.Bytes())
		if len(packets) != 2 {
			t.Fatalf("perPage=%d: got %d packets, want 2", perPage, len(packets))
		}
		if string(packets[0].Data) != "head" {
			t.Errorf("perPage=%d: first packet = %q", perPage, packets[0].Data)
		}
		if !bytes.Equal(packets[1].Data, packet) {
			t.Errorf("perPage=%d: spanning packet mismatch (len %d)", perPage, len(packets[1].Data))
		}
	}
}

func TestPacketReader_InterleavedStreams(t *testing.T) {
	a := patterned(400, 1)
	b := patterned(300, 2)

	stream := encodePages(
		&Page{HeaderType: PageFlagBOS, SerialNumber: 0xA, Segments: []byte{255}, Payload: a[:255]},
		&Page{HeaderType: PageFlagBOS, SerialNumber: 0xB, Segments: []byte{255}, Payload: b[:255]},
		&Page{HeaderType: PageFlagContinuation, SerialNumber: 0xB, PageSequence: 1, Segments: []byte{45}, Payload: b[255:]},
		&Page{HeaderType: PageFlagContinuation, SerialNumber: 0xA, PageSequence: 1, Segments: []byte{145}, Payload: a[255:]},
	)

	packets := readAllPackets(t, stream)
	if len(packets) != 2 {
		t.Fatalf("got %d packets, want 2", len(packets))
	}
	if packets[0].SerialNumber != 0xB || !bytes.Equal(packets[0].Data, b) {
		t.Errorf("first packet: serial %x len %d", packets[0].SerialNumber, len(packets[0].Data))
	}
	if packets[1].SerialNumber != 0xA || !bytes.Equal(packets[1].Data, a) {
		t.Errorf("second packet: serial %x len %d", packets[1].SerialNumber, len(packets[1].Data))
	}
}

func TestPacketReader_OrphanContinuation(t *testing.T) {
	// The stream is joined mid-packet: the leading fragment is dropped and the
	// following packet on the same page is still delivered.
	stream := encodePages(
		&Page{HeaderType: PageFlagContinuation, SerialNumber: 1, Segments: []byte{255, 255}, Payload: make([]byte, 510)},
		&Page{HeaderType: PageFlagContinuation, SerialNumber: 1, PageSequence: 1, Segments: []byte{20, 4}, Payload: append(make([]byte, 20), "next"...)},
	)

	packets := readAllPackets(t, stream)
	if len(packets) != 1 || string(packets[0].Data) != "next" {
		t.Fatalf("got %d packets, want only %q", len(packets), "next")
	}
}

func TestPacketReader_MissingContinuation(t *testing.T) {
	stream := encodePages(
		&Page{HeaderType: PageFlagBOS, SerialNumber: 1, Segments: []byte{255}, Payload: make([]byte, 255)},
		&Page{SerialNumber: 1, PageSequence: 1, Segments: []byte{3}, Payload: []byte("abc")},
	)

	_, err := NewPacketReader(bytes.NewReader(stream)).NextPacket()
	if !errors.Is(err, ErrBrokenPacket) {
		t.Errorf("NextPacket: got %v, want ErrBrokenPacket", err)
	}
}

func TestPacketReader_ContinuedFirstPage(t *testing.T) {
	stream := encodePages(
		&Page{HeaderType: PageFlagBOS | PageFlagContinuation, SerialNumber: 1, Segments: []byte{20, 4}, Payload: append(make([]byte, 20), "next"...)},
	)

	_, err := NewPacketReader(bytes.NewReader(stream)).NextPacket()
	if !errors.Is(err, ErrBrokenPacket) {
		t.Errorf("NextPacket: got %v, want ErrBrokenPacket", err)
	}
}

func TestPacketReader_EndsMidPacket(t *testing.T) {
	stream := encodePages(
		&Page{HeaderType: PageFlagBOS, SerialNumber: 1, Segments: []byte{2, 255}, Payload: make([]byte, 257)},
	)

	pr := NewPacketReader(bytes.NewReader(stream))
	if p, err := pr.NextPacket(); err != nil || len(p.Data) != 2 {
		t.Fatalf("first NextPacket = %v, %v", p, err)
	}
	_, err := pr.NextPacket()
	if !errors.Is(err, ErrUnexpectedEOS) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("NextPacket: got %v, want ErrUnexpectedEOS", err)
	}
}

func TestPacketReader_PageErrorPropagates(t *testing.T) {
	stream := encodePages(&Page{SerialNumber: 1, Segments: []byte{3}, Payload: []byte("abc")})
	stream[len(stream)-2] ^= 0x40

	_, err := NewPacketReader(bytes.NewReader(stream)).NextPacket()
	if !errors.Is(err, ErrBadCRC) {
		t.Errorf("NextPacket: got %v, want ErrBadCRC", err)
	}

	p, err := NewPacketReader(bytes.NewReader(stream), WithLenientChecksum(true)).NextPacket()
	if err != nil {
		t.Fatalf("lenient NextPacket failed: %v", err)
	}
	if len(p.Data) != 3 {
		t.Errorf("lenient packet len = %d, want 3", len(p.Data))
	}
}
