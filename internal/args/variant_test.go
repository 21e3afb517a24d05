package args

import (
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_VariantFlag(t *testing.T) {
	var opts struct {
		Variant Variant `short:"V" long:"variant" default:"Standard"`
	}

	parser := flags.NewNamedParser("variant-test", flags.HelpFlag)
	_, err := parser.AddGroup("Test", "Test options", &opts)
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{})
	require.NoError(t, err)
	require.Equal(t, Variant("Standard"), opts.Variant)

	_, err = parser.ParseArgs([]string{"--variant", "url-safe-nopad"})
	require.NoError(t, err)
	require.Equal(t, Variant("UrlSafeNopad"), opts.Variant)

	_, err = parser.ParseArgs([]string{"-V", "s"})
	require.NoError(t, err)
	require.Equal(t, Variant("StandardNopad"), opts.Variant)

	codec, err := opts.Variant.Codec()
	require.NoError(t, err)
	encoded, err := codec.Encode([]byte("A"))
	require.NoError(t, err)
	require.Equal(t, "QQ", encoded)
}

func Test_VariantFlagUnknown(t *testing.T) {
	var v Variant
	err := v.UnmarshalFlag("base32")
	require.Error(t, err)
	require.True(t, errors.Is(err, enc.ErrUnknownVariant))
	require.Equal(t, Variant(""), v)

	codec, err := v.Codec()
	require.NoError(t, err)
	require.Equal(t, "Standard", codec.Name())
}

func Test_VariantYaml(t *testing.T) {
	var v Variant
	err := v.UnmarshalYAML(func(out interface{}) error {
		*(out.(*string)) = "U"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, Variant("UrlSafe"), v)
}
