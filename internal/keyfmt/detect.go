package keyfmt

import (
	"regexp"
	"strings"
)

var (
	// Checked before pemRe: an encrypted boundary also ends in "PRIVATE KEY".
	encryptedRe = regexp.MustCompile(`^-----BEGIN (?:[A-Z0-9]+ )*ENCRYPTED PRIVATE KEY-----`)
	pemRe       = regexp.MustCompile(`^-----BEGIN (?:[A-Z0-9]+ )*(?:PUBLIC|PRIVATE) KEY-----`)
)

// Detect classifies data by its first non-empty line.
// It returns ErrEmptyFile for empty or whitespace-only input and an
// *UnrecognizedFormatError when the line matches no supported format.
func Detect(data []byte) (Format, error) {
	line := firstLine(data)

	switch {
	case line == "":
		return 0, ErrEmptyFile
	case strings.HasPrefix(line, "{"):
		return JWK, nil
	case encryptedRe.MatchString(line):
		return EncryptedPEM, nil
	case pemRe.MatchString(line):
		return PEM, nil
	default:
		return 0, &UnrecognizedFormatError{Line: line}
	}
}

// firstLine returns the first non-empty line of data, trimmed of
// surrounding whitespace. It returns "" if no such line exists.
func firstLine(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
