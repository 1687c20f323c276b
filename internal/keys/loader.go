package keys

import (
	"crypto/x509"
	"encoding/pem"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/idelchi/keyconv/internal/keyfmt"
)

// Load parses the key contained in data according to the detected
// format, decrypting it first if the envelope is passphrase-protected.
// Parse failures are wrapped with the originating file path.
func Load(path string, data []byte, format keyfmt.Format, passphrase PassphraseFunc) (jwk.Key, error) {
	switch format {
	case keyfmt.EncryptedPEM:
		plain, err := DecryptPEM(data, passphrase)
		if err != nil {
			return nil, err
		}

		data = plain
	case keyfmt.PEM:
		// Detection only sees the first line, so a legacy DEK-Info
		// envelope classifies as plain PEM. Route it through the
		// decryptor before handing it to the parser.
		if legacyEncrypted(data) {
			plain, err := DecryptPEM(data, passphrase)
			if err != nil {
				return nil, err
			}

			data = plain
		}
	case keyfmt.JWK:
		key, err := jwk.ParseKey(data)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}

		return key, nil
	}

	key, err := jwk.ParseKey(data, jwk.WithPEM(true))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return key, nil
}

// legacyEncrypted reports whether data is a PEM block carrying
// RFC 1423 "Proc-Type: 4,ENCRYPTED" headers.
func legacyEncrypted(data []byte) bool {
	block, _ := pem.Decode(data)

	return block != nil && x509.IsEncryptedPEMBlock(block) //nolint:staticcheck // legacy DEK-Info support
}
