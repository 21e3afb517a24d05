package verify

import (
	"bytes"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_VerifyAllValid(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &Command{Variant: "UrlSafe", stdout: out}
	cmd.Args.Encoded = []string{"QQ==", "-_8=", ""}

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, 3, bytes.Count(out.Bytes(), []byte("OK")))
	require.NotContains(t, out.String(), "INVALID")
}

func Test_VerifyCollectsAllErrors(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &Command{Variant: "StandardNopad", stdout: out}
	cmd.Args.Encoded = []string{"QQ==", "QQ", "a!", "Q"}

	err := cmd.Execute(nil)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Equal(t, 3, merr.Len())
	require.True(t, errors.Is(merr.Errors[0], enc.ErrInvalidPadding))
	require.True(t, errors.Is(merr.Errors[1], enc.ErrInvalidSymbol))
	require.True(t, errors.Is(merr.Errors[2], enc.ErrInvalidLength))

	require.Equal(t, 3, bytes.Count(out.Bytes(), []byte("INVALID")))
	require.Equal(t, 1, bytes.Count(out.Bytes(), []byte("OK")))
}

func Test_VerifyQuiet(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &Command{Variant: "Standard", Quiet: true, stdout: out}
	cmd.Args.Encoded = []string{"QQ="}

	require.Error(t, cmd.Execute(nil))
	require.Empty(t, out.Bytes())
}
