// Package keys loads cryptographic keys from JWK or PEM files,
// decrypting passphrase-protected PEM envelopes when necessary, and
// exports them to the complementary format.
//
// All parsing, decryption, and encoding is delegated to
// lestrrat-go/jwx, youmark/pkcs8, and crypto/x509. The package itself
// only routes between envelope kinds and wraps failures with context.
package keys
