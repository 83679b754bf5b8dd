// Package crypto provides the cryptographic core (C4): password-based
// key derivation and authenticated symmetric encryption of a byte
// buffer, with a random salt and nonce (spec.md §4.4).
package crypto

import (
	"crypto/rand"
	"fmt"
	"runtime"

	"golang.org/x/crypto/argon2"

	verr "github.com/horizon-nth/vault/internal/errors"
)

// Argon2id parameters. These are fixed, part of the wire format, and
// MUST NOT change or existing vaults cannot be decrypted — ported
// verbatim from original_source/src/EncryptionManager.cpp::derive_key
// (Botan::Argon2(2, 64, 3, hw_concurrency>=4?4:1)); see SPEC_FULL.md §8
// for why the parallelism value (not the "three lanes" prose) is
// authoritative.
const (
	Argon2Time      = 2
	Argon2MemoryKiB = 64 * 1024
	Argon2KeySize   = 32

	SaltSize  = 16
	NonceSize = 24
)

// argon2Threads mirrors the original's runtime check: 4 on a host with
// at least 4 hardware threads, else 1.
func argon2Threads() uint8 {
	if runtime.NumCPU() >= 4 {
		return 4
	}
	return 1
}

// DeriveKey derives a 32-byte AEAD key from password and salt via
// Argon2id using the fixed parameters above.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, Argon2Time, Argon2MemoryKiB, argon2Threads(), Argon2KeySize)
}

// GenerateSalt returns 16 cryptographically random bytes, regenerated on
// every close (spec.md §4.4).
func GenerateSalt() ([]byte, error) {
	return randomBytes(SaltSize)
}

// generateNonce returns 24 cryptographically random bytes for the
// XChaCha20-Poly1305 nonce.
func generateNonce() ([]byte, error) {
	return randomBytes(NonceSize)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, verr.NewPathError("rand", "crypto/rand", fmt.Errorf("%w", err))
	}
	return b, nil
}
