package keys

import (
	"encoding/json"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/idelchi/keyconv/internal/keyfmt"
)

// Convert exports key in the given target format. Only JWK and PEM are
// valid targets; conversions between two PEM variants do not exist.
func Convert(key jwk.Key, target keyfmt.Format) ([]byte, error) {
	if target == keyfmt.JWK {
		return ToJWK(key)
	}

	return ToPEM(key)
}

// ToJWK serializes key as a single-line JWK JSON object with a
// trailing newline.
func ToJWK(key jwk.Key) ([]byte, error) {
	buf, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("encoding JWK: %w", err)
	}

	return append(buf, '\n'), nil
}

// ToPEM serializes key as a PEM envelope: PKCS#8 "PRIVATE KEY" for
// private keys, PKIX "PUBLIC KEY" for public keys.
func ToPEM(key jwk.Key) ([]byte, error) {
	var raw any
	if err := key.Raw(&raw); err != nil {
		return nil, fmt.Errorf("materializing key: %w", err)
	}

	buf, err := jwk.EncodePEM(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding PEM: %w", err)
	}

	return buf, nil
}
