package codepage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmapped is matched by errors returned when a rune has no byte in a dialect.
	ErrUnmapped = errors.New("rune not representable in code page")

	// ErrInvalidMapping is wrapped by all errors of table construction.
	ErrInvalidMapping = errors.New("invalid code page mapping")

	// ErrDuplicateDialect is returned when registering a name twice.
	ErrDuplicateDialect = errors.New("dialect already registered")
)

// InvalidByteError is the panic value of DecodeCode for integers outside
// [0,255]. It signals a programming error of the caller.
type InvalidByteError struct {
	Code int
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid byte value %d (must be in 0..255)", e.Code)
}

// EncodeError is returned by Table.EncodeString for the first rune without a
// byte in the dialect.
type EncodeError struct {
	// RepresentableUpTo is the number of bytes encoded before the failure,
	// i.e. the number of leading runes of the input that are representable.
	RepresentableUpTo int
	Rune              rune
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%v: %q (%U) after %d bytes", ErrUnmapped, e.Rune, e.Rune, e.RepresentableUpTo)
}

// Is makes errors.Is(err, ErrUnmapped) hold.
func (e *EncodeError) Is(target error) bool {
	return target == ErrUnmapped
}
