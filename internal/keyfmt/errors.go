package keyfmt

import (
	"errors"
	"fmt"
)

// ErrEmptyFile is returned when the input file contains no data.
var ErrEmptyFile = errors.New("file is empty")

// UnrecognizedFormatError is returned when the first line of a file
// matches no supported key format.
type UnrecognizedFormatError struct {
	// Line is the first non-empty line that failed classification.
	Line string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("unrecognized key format (first line %q): supported formats are %s, %s, %s",
		e.Line, JWK, PEM, EncryptedPEM)
}
