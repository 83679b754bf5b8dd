package crypto

import (
	"bytes"
	"testing"

	verr "github.com/horizon-nth/vault/internal/errors"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	if err != nil {
		t.Fatal(err)
	}
	password := []byte("correct horse battery staple")
	plaintext := []byte("<vault name=\"v\"></vault>")

	ciphertext, nonce, err := Encrypt(plaintext, password, salt)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decrypt(ciphertext, password, salt, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
	}
}

func TestEncryptDecryptEmptyPlaintext(t *testing.T) {
	salt, _ := GenerateSalt()
	password := []byte("pw")
	ciphertext, nonce, err := Encrypt(nil, password, salt)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decrypt(ciphertext, password, salt, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %v", got)
	}
}

func TestDecryptWrongPasswordFails(t *testing.T) {
	salt, _ := GenerateSalt()
	ciphertext, nonce, err := Encrypt([]byte("secret"), []byte("right"), salt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decrypt(ciphertext, []byte("wrong"), salt, nonce); !verr.Is(err, verr.ErrIntegrityFailure) {
		t.Fatalf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestDecryptTamperedCiphertextFails(t *testing.T) {
	salt, _ := GenerateSalt()
	password := []byte("pw")
	ciphertext, nonce, err := Encrypt([]byte("secret"), password, salt)
	if err != nil {
		t.Fatal(err)
	}
	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0x01
	if _, err := Decrypt(tampered, password, salt, nonce); !verr.Is(err, verr.ErrIntegrityFailure) {
		t.Fatalf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestDecryptWrongNonceFails(t *testing.T) {
	salt, _ := GenerateSalt()
	password := []byte("pw")
	ciphertext, nonce, err := Encrypt([]byte("secret"), password, salt)
	if err != nil {
		t.Fatal(err)
	}
	wrongNonce := append([]byte(nil), nonce...)
	wrongNonce[0] ^= 0x01
	if _, err := Decrypt(ciphertext, password, salt, wrongNonce); !verr.Is(err, verr.ErrIntegrityFailure) {
		t.Fatalf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestDecryptWrongSaltFails(t *testing.T) {
	salt, _ := GenerateSalt()
	otherSalt, _ := GenerateSalt()
	password := []byte("pw")
	ciphertext, nonce, err := Encrypt([]byte("secret"), password, salt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decrypt(ciphertext, password, otherSalt, nonce); !verr.Is(err, verr.ErrIntegrityFailure) {
		t.Fatalf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestKeyMaterialZeroesOnClose(t *testing.T) {
	km := NewKeyMaterial([]byte{1, 2, 3, 4})
	km.Close()
	if km.Bytes() != nil {
		t.Fatalf("expected nil after Close, got %v", km.Bytes())
	}
	km.Close() // idempotent
}
