package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// ErrUnknownVariant is returned by Lookup if no codec matches the requested name
var ErrUnknownVariant = errors.New("unknown base64 variant")

// Codecs returns all the available base64 variants
func Codecs() []Codec {
	return []Codec{
		B64[Standard]{},
		B64[StandardNopad]{},
		B64[UrlSafe]{},
		B64[UrlSafeNopad]{},
	}
}

// Lookup finds a codec by its name (case insensitive, dashes and underscores ignored) or
// by its one-letter code (case sensitive, as 's' and 'S' differ).
func Lookup(name string) (Codec, error) {
	if len(name) == 1 {
		for _, c := range Codecs() {
			if c.Code() == name[0] {
				return c, nil
			}
		}
	}

	wanted := normalizeName(name)
	for _, c := range Codecs() {
		if normalizeName(c.Name()) == wanted {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownVariant, "%q", name)
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}
