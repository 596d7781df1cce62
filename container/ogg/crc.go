package ogg

// pageCRC is the Ogg page checksum: CRC-32 over polynomial 0x04C11DB7 fed
// MSB first, starting from zero with no final xor. hash/crc32 only offers
// the reflected variant.
type pageCRC uint32

const crcPoly = 0x04C11DB7

var crcTable = makeCRCTable()

func makeCRCTable() *[256]uint32 {
	var t [256]uint32
	for i := range t {
		r := uint32(i) << 24
		for range 8 {
			r = r<<1 ^ crcPoly*(r>>31)
		}
		t[i] = r
	}
	return &t
}

func (c pageCRC) write(data []byte) pageCRC {
	for _, b := range data {
		c = c<<8 ^ pageCRC(crcTable[byte(c>>24)^b])
	}
	return c
}

// writeZeros folds n zero bytes, which is how the checksum field is read.
func (c pageCRC) writeZeros(n int) pageCRC {
	for range n {
		c = c<<8 ^ pageCRC(crcTable[byte(c>>24)])
	}
	return c
}

// pageChecksum returns the checksum of an encoded page with its checksum
// field (bytes 22-25) taken as zero. raw must hold a full fixed header.
func pageChecksum(raw []byte) uint32 {
	var c pageCRC
	c = c.write(raw[:checksumOffset])
	c = c.writeZeros(4)
	c = c.write(raw[checksumOffset+4:])
	return uint32(c)
}
