package keys_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"strings"
	"testing"

	"github.com/youmark/pkcs8"

	"github.com/idelchi/keyconv/internal/keyfmt"
	"github.com/idelchi/keyconv/internal/keys"
)

const testPassphrase = "opensesame"

func genKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	return priv
}

// pkcs8PEM encodes priv as an unencrypted PKCS#8 "PRIVATE KEY" block.
func pkcs8PEM(t *testing.T, priv *ecdsa.PrivateKey) []byte {
	t.Helper()

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		t.Fatalf("marshalling PKCS#8: %v", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
}

// encryptedPKCS8PEM encodes priv as an "ENCRYPTED PRIVATE KEY" block
// protected by testPassphrase.
func encryptedPKCS8PEM(t *testing.T, priv *ecdsa.PrivateKey) []byte {
	t.Helper()

	der, err := pkcs8.MarshalPrivateKey(priv, []byte(testPassphrase), nil)
	if err != nil {
		t.Fatalf("encrypting PKCS#8: %v", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "ENCRYPTED PRIVATE KEY", Bytes: der})
}

// legacyEncryptedPEM encodes priv as a SEC 1 "EC PRIVATE KEY" block with
// RFC 1423 DEK-Info headers protected by testPassphrase.
func legacyEncryptedPEM(t *testing.T, priv *ecdsa.PrivateKey) []byte {
	t.Helper()

	der, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		t.Fatalf("marshalling SEC 1: %v", err)
	}

	block, err := x509.EncryptPEMBlock( //nolint:staticcheck // producing a legacy fixture
		rand.Reader, "EC PRIVATE KEY", der, []byte(testPassphrase), x509.PEMCipherAES256)
	if err != nil {
		t.Fatalf("encrypting PEM block: %v", err)
	}

	return pem.EncodeToMemory(block)
}

func pass(s string) keys.PassphraseFunc {
	return func() ([]byte, error) {
		return []byte(s), nil
	}
}

// publicKeyOfPEM parses a "PRIVATE KEY" PEM and returns its public half.
func publicKeyOfPEM(t *testing.T, data []byte) *ecdsa.PublicKey {
	t.Helper()

	block, _ := pem.Decode(data)
	if block == nil || block.Type != "PRIVATE KEY" {
		t.Fatalf("expected a PRIVATE KEY block, got %v", block)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		t.Fatalf("parsing PKCS#8: %v", err)
	}

	ec, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		t.Fatalf("expected *ecdsa.PrivateKey, got %T", parsed)
	}

	return &ec.PublicKey
}

func TestRoundTripPEMToJWKToPEM(t *testing.T) {
	t.Parallel()

	priv := genKey(t)
	pemData := pkcs8PEM(t, priv)

	key, err := keys.Load("key.pem", pemData, keyfmt.PEM, pass(""))
	if err != nil {
		t.Fatalf("loading PEM: %v", err)
	}

	jwkData, err := keys.ToJWK(key)
	if err != nil {
		t.Fatalf("converting to JWK: %v", err)
	}

	// A JWK is a single-line JSON object.
	if !bytes.HasPrefix(jwkData, []byte("{")) || bytes.Count(jwkData, []byte("\n")) != 1 {
		t.Fatalf("JWK output is not a single-line JSON object: %q", jwkData)
	}

	if format, err := keyfmt.Detect(jwkData); err != nil || format != keyfmt.JWK {
		t.Fatalf("detecting converted JWK: format %v, error %v", format, err)
	}

	back, err := keys.Load("key.jwk", jwkData, keyfmt.JWK, pass(""))
	if err != nil {
		t.Fatalf("loading JWK: %v", err)
	}

	pemData2, err := keys.ToPEM(back)
	if err != nil {
		t.Fatalf("converting back to PEM: %v", err)
	}

	if !priv.PublicKey.Equal(publicKeyOfPEM(t, pemData2)) {
		t.Error("public key changed across the round trip")
	}
}

func TestLoadEncryptedPKCS8(t *testing.T) {
	t.Parallel()

	priv := genKey(t)
	data := encryptedPKCS8PEM(t, priv)

	if format, err := keyfmt.Detect(data); err != nil || format != keyfmt.EncryptedPEM {
		t.Fatalf("detecting encrypted PEM: format %v, error %v", format, err)
	}

	key, err := keys.Load("key.pem", data, keyfmt.EncryptedPEM, pass(testPassphrase))
	if err != nil {
		t.Fatalf("loading encrypted PEM: %v", err)
	}

	pemData, err := keys.ToPEM(key)
	if err != nil {
		t.Fatalf("converting to PEM: %v", err)
	}

	if !priv.PublicKey.Equal(publicKeyOfPEM(t, pemData)) {
		t.Error("decrypted key does not match fixture key")
	}
}

func TestLoadEncryptedPKCS8WrongPassphrase(t *testing.T) {
	t.Parallel()

	data := encryptedPKCS8PEM(t, genKey(t))

	_, err := keys.Load("key.pem", data, keyfmt.EncryptedPEM, pass("not-the-passphrase"))
	if !errors.Is(err, keys.ErrDecryption) {
		t.Errorf("Load() error = %v, want ErrDecryption", err)
	}
}

func TestLoadLegacyEncryptedPEM(t *testing.T) {
	t.Parallel()

	priv := genKey(t)
	data := legacyEncryptedPEM(t, priv)

	// First-line detection cannot see the DEK-Info headers.
	if format, err := keyfmt.Detect(data); err != nil || format != keyfmt.PEM {
		t.Fatalf("detecting legacy encrypted PEM: format %v, error %v", format, err)
	}

	key, err := keys.Load("key.pem", data, keyfmt.PEM, pass(testPassphrase))
	if err != nil {
		t.Fatalf("loading legacy encrypted PEM: %v", err)
	}

	pemData, err := keys.ToPEM(key)
	if err != nil {
		t.Fatalf("converting to PEM: %v", err)
	}

	if !priv.PublicKey.Equal(publicKeyOfPEM(t, pemData)) {
		t.Error("decrypted key does not match fixture key")
	}

	if _, err := keys.Load("key.pem", data, keyfmt.PEM, pass("not-the-passphrase")); !errors.Is(err, keys.ErrDecryption) {
		t.Errorf("Load() with wrong passphrase error = %v, want ErrDecryption", err)
	}
}

func TestDecryptPEMUnsupportedKind(t *testing.T) {
	t.Parallel()

	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("not a key")})

	_, err := keys.DecryptPEM(data, pass(testPassphrase))
	if !errors.Is(err, keys.ErrDecryption) {
		t.Errorf("DecryptPEM() error = %v, want ErrDecryption", err)
	}
}

func TestLoadParseErrorCarriesPath(t *testing.T) {
	t.Parallel()

	_, err := keys.Load("/some/where/key.jwk", []byte(`{"kty":`), keyfmt.JWK, pass(""))

	var perr *keys.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}

	if perr.Path != "/some/where/key.jwk" {
		t.Errorf("ParseError.Path = %q, want the input path", perr.Path)
	}

	if !strings.Contains(err.Error(), "/some/where/key.jwk") {
		t.Errorf("error %q does not mention the file path", err)
	}
}

func TestPassphrasePrecedence(t *testing.T) {
	t.Parallel()

	got, err := keys.Passphrase("fromflag")()
	if err != nil {
		t.Fatalf("Passphrase() error: %v", err)
	}

	if string(got) != "fromflag" {
		t.Errorf("Passphrase() = %q, want flag value to win", got)
	}
}

func TestPassphraseMissing(t *testing.T) {
	t.Parallel()

	// Under go test stdin is not a terminal, so an empty flag value
	// cannot fall back to prompting.
	if _, err := keys.Passphrase("")(); !errors.Is(err, keys.ErrMissingPassphrase) {
		t.Errorf("Passphrase() error = %v, want ErrMissingPassphrase", err)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	priv := genKey(t)

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatalf("marshalling PKIX: %v", err)
	}

	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	tests := []struct {
		name   string
		data   []byte
		format keyfmt.Format
		want   string
	}{
		{"ec private", pkcs8PEM(t, priv), keyfmt.PEM, "EC private key (P-256)"},
		{"ec public", pubPEM, keyfmt.PEM, "EC public key (P-256)"},
		{"encrypted pkcs8", encryptedPKCS8PEM(t, priv), keyfmt.EncryptedPEM, "encrypted private key (PEM, PKCS#8)"},
		{"legacy encrypted", legacyEncryptedPEM(t, priv), keyfmt.PEM, "encrypted private key (PEM, legacy DEK-Info)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := keys.Describe("key", tc.data, tc.format)
			if err != nil {
				t.Fatalf("Describe() error: %v", err)
			}

			if got != tc.want {
				t.Errorf("Describe() = %q, want %q", got, tc.want)
			}
		})
	}
}
