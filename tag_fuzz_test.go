package oggmeta

import (
	"bytes"
	"errors"
	"testing"

	"github.com/thesyncim/oggmeta/internal/testutil"
)

func FuzzReadFrom_NoPanic(f *testing.F) {
	f.Add(testutil.VorbisStream(f, 0, "vendor", "ARTIST=Alice", "TITLE=Song"))
	f.Add(testutil.VorbisStream(f, 1, "", "A=1"))
	f.Add(testutil.BuildStream(f, 0, []byte("\x03vorbis\xff\xff\xff\xff")))
	f.Add([]byte("OggS"))

	kinds := []error{ErrNoComments, ErrIO, ErrInvalidText, ErrLengthOverflow, ErrMalformed}

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, lenient := range []bool{false, true} {
			tag, err := ReadFrom(bytes.NewReader(data), WithLenientChecksum(lenient))
			if err == nil {
				for _, key := range tag.Keys() {
					if values, ok := tag.Get(key); !ok || len(values) == 0 {
						t.Fatalf("key %q listed without values", key)
					}
				}
				continue
			}
			matched := 0
			for _, kind := range kinds {
				if errors.Is(err, kind) {
					matched++
				}
			}
			if matched != 1 {
				t.Fatalf("error %v matches %d kinds, want 1", err, matched)
			}
		}
	})
}
