// Package ogg implements the parts of the Ogg container format needed to
// recover logical packets from a paged bitstream (RFC 3533).
//
// The Ogg format uses pages as atomic units of data, where each page contains:
//   - A 27-byte header with magic signature "OggS"
//   - A segment table describing packet boundaries
//   - Payload data containing packet fragments
//   - CRC-32 checksum for data integrity verification
//
// PageReader parses and validates one page at a time. PacketReader sits on
// top of it and joins segments back into packets, following packets across
// page boundaries. Writer does the reverse framing for a single logical
// stream.
//
// # Page Structure
//
// An Ogg page has the following structure:
//
//	Bytes 0-3:   "OggS" capture pattern (magic signature)
//	Byte 4:      Stream structure version (always 0)
//	Byte 5:      Header type flags (continuation, BOS, EOS)
//	Bytes 6-13:  Granule position
//	Bytes 14-17: Bitstream serial number
//	Bytes 18-21: Page sequence number
//	Bytes 22-25: CRC checksum
//	Byte 26:     Number of segments
//	Bytes 27+:   Segment table (one byte per segment)
//	Remaining:   Page payload data
//
// # Segment Table
//
// Packets are split into segments of up to 255 bytes each. A segment value
// of 255 indicates the packet continues in the next segment, possibly on the
// next page. A value less than 255 marks the end of a packet, so a packet
// whose length is a multiple of 255 ends with a zero-length segment.
//
// Example: A 600-byte packet uses segments [255, 255, 90] (255+255+90=600)
//
// # CRC Calculation
//
// Ogg uses CRC-32 with polynomial 0x04C11DB7 (NOT the IEEE polynomial used
// by hash/crc32). The CRC is computed over the entire page with the CRC
// field set to zero. Mismatches are errors unless WithLenientChecksum is set.
package ogg
