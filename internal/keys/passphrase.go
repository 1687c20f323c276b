package keys

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PassphraseFunc supplies a passphrase for decryption. It is only
// invoked when an encrypted envelope is actually encountered.
type PassphraseFunc func() ([]byte, error)

// Passphrase returns a PassphraseFunc that resolves the passphrase with
// flag-over-prompt precedence: a non-empty flag value wins, otherwise
// the user is prompted without echo. If stdin is not a terminal and no
// flag value was given, it fails with ErrMissingPassphrase.
func Passphrase(flag string) PassphraseFunc {
	return func() ([]byte, error) {
		if flag != "" {
			return []byte(flag), nil
		}

		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return nil, ErrMissingPassphrase
		}

		fmt.Fprint(os.Stderr, "Enter passphrase: ")

		pass, err := term.ReadPassword(fd)

		fmt.Fprintln(os.Stderr)

		if err != nil {
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}

		return pass, nil
	}
}
