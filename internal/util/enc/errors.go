package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// Decoding failures. Encoding never fails.
var (
	ErrInvalidSymbol  = errors.New("invalid symbol")
	ErrInvalidPadding = errors.New("invalid padding")
	ErrInvalidLength  = errors.New("invalid length")
	// ErrNonCanonical is returned when the unused low bits of the last partial group are not zero
	ErrNonCanonical = errors.New("non-canonical encoding")
)

// DecodeErrors lists all errors a decoder may return
var DecodeErrors = []error{
	ErrInvalidSymbol, ErrInvalidPadding, ErrInvalidLength, ErrNonCanonical,
}

// DecodeError reports the first violation found while decoding and where it was found.
type DecodeError struct {
	Err    error // one of DecodeErrors
	Offset int   // byte offset into the input
	Symbol byte  // the byte at Offset, unset when AtEnd
	AtEnd  bool  // the input ended before the violation could be resolved
}

func newDecodeError(err error, src []byte, offset int) *DecodeError {
	e := &DecodeError{
		Err:    err,
		Offset: offset,
	}
	if offset < len(src) {
		e.Symbol = src[offset]
	} else {
		e.AtEnd = true
	}
	return e
}

func (e *DecodeError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("%v at offset %d", e.Err.Error(), e.Offset)
	}
	return fmt.Sprintf("%v %q at offset %d", e.Err.Error(), e.Symbol, e.Offset)
}

// Cause makes DecodeError work with errors.Cause
func (e *DecodeError) Cause() error {
	return e.Err
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
