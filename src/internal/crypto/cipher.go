package crypto

import (
	"golang.org/x/crypto/chacha20poly1305"

	verr "github.com/horizon-nth/vault/internal/errors"
)

// Encrypt derives a key from password+salt and seals plaintext with
// XChaCha20-Poly1305 using a freshly generated 24-byte nonce. Associated
// data is empty (spec.md §4.4). The returned ciphertext includes the
// authentication tag appended to the encrypted stream, and empty
// plaintext is permitted and round-trips.
//
// Upgraded from original_source/src/EncryptionManager.cpp's
// unauthenticated ChaCha20 stream cipher to the AEAD sibling from the
// same golang.org/x/crypto module, per spec.md §4.4's authenticated
// encryption requirement (SPEC_FULL.md §8).
func Encrypt(plaintext, password, salt []byte) (ciphertext, nonce []byte, err error) {
	key := NewKeyMaterial(DeriveKey(password, salt))
	defer key.Close()

	aead, err := chacha20poly1305.NewX(key.Bytes())
	if err != nil {
		return nil, nil, verr.NewPathError("cipher", "chacha20poly1305", err)
	}

	nonce, err = generateNonce()
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aead.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt derives the same key from password+salt and opens ciphertext,
// failing with ErrIntegrityFailure on any authentication mismatch: wrong
// password, wrong salt, wrong nonce, or tampered ciphertext. This single
// error kind is the only information leaked (spec.md §4.4).
func Decrypt(ciphertext, password, salt, nonce []byte) ([]byte, error) {
	key := NewKeyMaterial(DeriveKey(password, salt))
	defer key.Close()

	aead, err := chacha20poly1305.NewX(key.Bytes())
	if err != nil {
		return nil, verr.NewPathError("cipher", "chacha20poly1305", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, verr.NewIntegrityError()
	}
	return plaintext, nil
}
