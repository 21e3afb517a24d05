package util

import (
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrInvalidData is the exit code when the input could not be decoded (EX_DATAERR)
	ErrInvalidData = 65
	ErrGeneric     = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Decoding errors exit with ErrInvalidData. If it's
// a different kind of error, a generic error code - 99 - is returned
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
	} else if IsDecodeError(err) {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
		log.Exit(ErrInvalidData)
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}

}

// IsDecodeError returns true if err is, or wraps, one of enc.DecodeErrors
func IsDecodeError(err error) bool {
	for _, e := range enc.DecodeErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
