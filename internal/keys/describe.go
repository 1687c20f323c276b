package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"

	"github.com/idelchi/keyconv/internal/keyfmt"
)

// Describe returns a one-line human-readable description of the key in
// data. Encrypted envelopes are described without being decrypted, so
// no passphrase is ever required.
func Describe(path string, data []byte, format keyfmt.Format) (string, error) {
	switch {
	case format == keyfmt.EncryptedPEM:
		return "encrypted private key (PEM, PKCS#8)", nil
	case format == keyfmt.PEM && legacyEncrypted(data):
		return "encrypted private key (PEM, legacy DEK-Info)", nil
	}

	key, err := Load(path, data, format, noPassphrase)
	if err != nil {
		return "", err
	}

	var raw any
	if err := key.Raw(&raw); err != nil {
		return "", fmt.Errorf("materializing key: %w", err)
	}

	switch k := raw.(type) {
	case *rsa.PrivateKey:
		return fmt.Sprintf("RSA private key (%d bit)", k.N.BitLen()), nil
	case *rsa.PublicKey:
		return fmt.Sprintf("RSA public key (%d bit)", k.N.BitLen()), nil
	case *ecdsa.PrivateKey:
		return fmt.Sprintf("EC private key (%s)", k.Curve.Params().Name), nil
	case *ecdsa.PublicKey:
		return fmt.Sprintf("EC public key (%s)", k.Curve.Params().Name), nil
	case ed25519.PrivateKey:
		return "Ed25519 private key", nil
	case ed25519.PublicKey:
		return "Ed25519 public key", nil
	default:
		return fmt.Sprintf("%s key", key.KeyType()), nil
	}
}

// noPassphrase is used on code paths that must never prompt.
func noPassphrase() ([]byte, error) {
	return nil, ErrMissingPassphrase
}
