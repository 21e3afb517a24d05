package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_DecodeError(t *testing.T) {
	_, err := New[StandardNopad]().DecodeString("QU!D")
	require.Error(t, err)
	require.Equal(t, `invalid symbol '!' at offset 2`, err.Error())
	require.Equal(t, ErrInvalidSymbol, errors.Cause(err))

	wrapped := errors.Wrap(err, "could not decode")
	require.True(t, errors.Is(wrapped, ErrInvalidSymbol))
	require.Equal(t, ErrInvalidSymbol, errors.Cause(wrapped))
}

func Test_DecodeErrorAtEndOfInput(t *testing.T) {
	_, err := New[Standard]().DecodeString("QQ=")
	require.Error(t, err)
	require.Equal(t, `invalid padding at offset 3`, err.Error())

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.True(t, decodeErr.AtEnd)
}

func Test_DecodeErrorNulSymbol(t *testing.T) {
	_, err := New[Standard]().DecodeString("\x00")
	require.Error(t, err)
	require.Equal(t, `invalid symbol '\x00' at offset 0`, err.Error())

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.False(t, decodeErr.AtEnd)
	require.Equal(t, byte(0), decodeErr.Symbol)
}

func Test_DecodeErrorsAreKnown(t *testing.T) {
	inputs := []string{"!", "QQ=", "Q", "QR=="}
	for i, input := range inputs {
		_, err := New[Standard]().DecodeString(input)
		require.Error(t, err)
		require.Contains(t, DecodeErrors, errors.Cause(err))
		require.Equal(t, DecodeErrors[i], errors.Cause(err), input)
	}
}
