package oggmeta

import (
	"errors"
	"fmt"

	"github.com/thesyncim/oggmeta/container/ogg"
	"github.com/thesyncim/oggmeta/vorbis"
)

var (
	// ErrNoComments is returned when the stream ends without a Vorbis comment
	// header. The file is either not Vorbis or incomplete.
	ErrNoComments = errors.New("oggmeta: no vorbis comment packet found")

	// ErrIO is returned when reading the source fails or the source ends
	// before a page or field is complete. The underlying error, such as
	// io.ErrUnexpectedEOF, stays in the chain.
	ErrIO = errors.New("oggmeta: read failed")

	// ErrMalformed is returned for container or comment structure violations:
	// bad page headers or checksums, broken packet continuation and comment
	// entries without a '=' separator.
	ErrMalformed = errors.New("oggmeta: malformed stream")
)

// Errors re-exported from vorbis.
var (
	// ErrInvalidText is returned when a vendor or comment string is not valid UTF-8.
	ErrInvalidText = vorbis.ErrInvalidText

	// ErrLengthOverflow is returned when a declared length does not fit in an int.
	ErrLengthOverflow = vorbis.ErrLengthOverflow
)

// classify tags err with the kind it belongs to.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrInvalidText), errors.Is(err, ErrLengthOverflow):
		return err
	case errors.Is(err, vorbis.ErrMalformedComment),
		errors.Is(err, vorbis.ErrNotCommentHeader),
		errors.Is(err, ogg.ErrInvalidPage),
		errors.Is(err, ogg.ErrBadCRC),
		errors.Is(err, ogg.ErrBrokenPacket):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}
