// Package keyfmt classifies key files by their text encoding.
//
// Classification looks only at the first non-empty line of the file:
// a JWK is a JSON object, a PEM key starts with a BEGIN boundary, and
// an encrypted PKCS#8 key announces itself in the boundary label.
package keyfmt

// Format represents the detected encoding of a key file.
type Format byte

const (
	// JWK is a JSON Web Key, a single JSON object.
	JWK Format = iota
	// PEM is an unencrypted public or private key in a PEM envelope.
	PEM
	// EncryptedPEM is a passphrase-protected PKCS#8 key in a PEM envelope.
	EncryptedPEM
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case JWK:
		return "JWK"
	case PEM:
		return "PEM"
	case EncryptedPEM:
		return "ENCRYPTED PEM"
	default:
		return "UNKNOWN"
	}
}

// Ext returns the canonical file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == JWK {
		return "jwk"
	}

	return "pem"
}

// Complement returns the conversion target for the format.
// JWK converts to PEM; both PEM variants convert to JWK.
func (f Format) Complement() Format {
	if f == JWK {
		return PEM
	}

	return JWK
}
