// Package oggmeta reads Vorbis comments (vendor string and FIELD=value tags)
// from Ogg Vorbis streams without decoding any audio.
//
// The stream is walked page by page: pages are validated (capture pattern,
// version, CRC) and reassembled into packets by the container/ogg package,
// and the first packet carrying the Vorbis comment header signature is
// decoded by the vorbis package.
//
// # Usage
//
//	tag, err := oggmeta.ReadFromPath("song.ogg")
//	if err != nil {
//		return err
//	}
//	artists, ok := tag.Get("ARTIST")
//
// Field names are matched exactly; "ARTIST" and "artist" are different keys.
// A key may carry several values, returned in stream order.
//
// # Errors
//
// Every error returned by ReadFrom and ReadFromPath matches exactly one of
// ErrNoComments, ErrIO, ErrInvalidText, ErrLengthOverflow or ErrMalformed
// with errors.Is. Truncated input is reported as ErrIO with
// io.ErrUnexpectedEOF in the chain.
//
// # Checksums
//
// Pages whose CRC does not match are rejected by default. WithLenientChecksum
// accepts them and logs a warning through the logger set with WithLogger.
//
// Readers are not safe for concurrent use of the same source.
package oggmeta
