package args

import (
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/pkg/errors"
)

// Variant is a command line / configuration option selecting one of the base64 variants. It
// can be set either by name (e.g. "UrlSafeNopad", "url-safe-nopad") or by the one-letter code
// and always holds the canonical name once set.
type Variant string

// UnmarshalFlag implements flags.Unmarshaler
func (v *Variant) UnmarshalFlag(value string) error {
	codec, err := enc.Lookup(value)
	if err != nil {
		return errors.WithStack(err)
	}
	*v = Variant(codec.Name())
	return nil
}

// UnmarshalYAML allows the variant to be given in the configuration file
func (v *Variant) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return errors.WithStack(err)
	}
	return v.UnmarshalFlag(name)
}

// Codec returns the encoder for this variant. An empty variant selects enc.Standard.
func (v Variant) Codec() (enc.Codec, error) {
	if v == "" {
		return enc.New[enc.Standard](), nil
	}
	return enc.Lookup(string(v))
}
