package main

import (
	"github.com/bokysan/transcode/internal/args"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_NewTranscode(t *testing.T) {
	tc := NewTranscode()

	for _, name := range []string{"version", "variants", "encode", "decode", "verify"} {
		require.NotNilf(t, tc.parser.Find(name), "Command %v is not registered", name)
	}
}

func Test_ParseGeneralOptions(t *testing.T) {
	defer func() {
		args.General.Verbose = nil
		args.General.LogFormat = ""
	}()

	tc := NewTranscode()

	var executed flags.Commander
	tc.parser.CommandHandler = func(command flags.Commander, arguments []string) error {
		executed = command
		return nil
	}
	_, err := tc.parser.ParseArgs([]string{"-vv", "--log-format", "json", "variants"})
	require.NoError(t, err)

	require.NotNil(t, executed)
	require.Len(t, args.General.Verbose, 2)
	require.Equal(t, "json", args.General.LogFormat)
}

func Test_ParseUnknownVariant(t *testing.T) {
	tc := NewTranscode()
	tc.parser.Options = flags.HelpFlag
	tc.parser.CommandHandler = func(command flags.Commander, arguments []string) error {
		return nil
	}

	_, err := tc.parser.ParseArgs([]string{"encode", "--variant", "base32"})
	require.Error(t, err)
}
