// Package vorbis decodes the Vorbis I comment header.
//
// The comment header is the second of the three Vorbis header packets:
//
//	Byte 0:      Packet type (3)
//	Bytes 1-6:   "vorbis"
//	Next 4:      Vendor string length (little-endian)
//	N bytes:     Vendor string (UTF-8)
//	Next 4:      User comment count
//	For each comment:
//	  4 bytes:   Comment length
//	  N bytes:   Comment string ("FIELD=value", UTF-8)
//	1 bit:       Framing flag
//
// Field names are kept as written; no case folding is applied. The framing
// flag is not checked.
//
// See https://xiph.org/vorbis/doc/Vorbis_I_spec.html#x1-620004.2.1 and
// https://xiph.org/vorbis/doc/v-comment.html.
package vorbis
