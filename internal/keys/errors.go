package keys

import (
	"errors"
	"fmt"
)

var (
	// ErrDecryption is returned when an encrypted PEM object cannot be
	// decrypted: wrong passphrase, unparseable structure, or an
	// unsupported object kind.
	ErrDecryption = errors.New("decrypting private key")

	// ErrMissingPassphrase is returned when no passphrase was supplied
	// and standard input is not a terminal to prompt on.
	ErrMissingPassphrase = errors.New("no passphrase provided and standard input is not a terminal")
)

// ParseError wraps a key parsing failure with the offending file path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing key %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
