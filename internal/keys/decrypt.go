package keys

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/youmark/pkcs8"
)

// pemTypeEncryptedPKCS8 is the boundary label of an encrypted PKCS#8
// EncryptedPrivateKeyInfo structure.
const pemTypeEncryptedPKCS8 = "ENCRYPTED PRIVATE KEY"

// DecryptPEM decrypts an encrypted PEM envelope and returns the key
// re-encoded as a plain "PRIVATE KEY" (PKCS#8) PEM block.
//
// Two envelope kinds are supported: PKCS#8 EncryptedPrivateKeyInfo
// ("ENCRYPTED PRIVATE KEY") and the legacy RFC 1423 encrypted key-pair
// form (a "RSA PRIVATE KEY" / "EC PRIVATE KEY" block with DEK-Info
// headers). Anything else fails with ErrDecryption.
func DecryptPEM(data []byte, passphrase PassphraseFunc) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrDecryption)
	}

	pkcs8Envelope := block.Type == pemTypeEncryptedPKCS8

	// Settle the envelope kind before resolving the passphrase so that
	// unsupported objects never trigger a prompt.
	if !pkcs8Envelope && !x509.IsEncryptedPEMBlock(block) { //nolint:staticcheck // legacy DEK-Info support is the point
		return nil, fmt.Errorf("%w: unsupported PEM object %q", ErrDecryption, block.Type)
	}

	pass, err := passphrase()
	if err != nil {
		return nil, err
	}

	var priv any

	if pkcs8Envelope {
		priv, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, pass)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
		}
	} else {
		der, decErr := x509.DecryptPEMBlock(block, pass) //nolint:staticcheck // see above
		if decErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecryption, decErr)
		}

		priv, err = parseKeyPairDER(block.Type, der)
		if err != nil {
			return nil, err
		}
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("encoding decrypted key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// parseKeyPairDER parses the plaintext DER recovered from a legacy
// encrypted key-pair envelope. A wrong passphrase can survive the
// RFC 1423 decryption step and only surface here as garbage DER.
func parseKeyPairDER(pemType string, der []byte) (any, error) {
	var (
		key any
		err error
	)

	switch pemType {
	case "RSA PRIVATE KEY":
		key, err = x509.ParsePKCS1PrivateKey(der)
	case "EC PRIVATE KEY":
		key, err = x509.ParseECPrivateKey(der)
	case "PRIVATE KEY":
		key, err = x509.ParsePKCS8PrivateKey(der)
	default:
		return nil, fmt.Errorf("%w: unsupported PEM object %q", ErrDecryption, pemType)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return key, nil
}
