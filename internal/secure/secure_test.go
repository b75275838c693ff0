package secure_test

import (
	"testing"

	"github.com/fernet/fernet-go"

	"github.com/tradejournal/Trade-Journal-Backend/internal/secure"
)

func newTestEncryptor(t *testing.T) *secure.Encryptor {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	enc, err := secure.NewEncryptor(key.Encode())
	if err != nil {
		t.Fatalf("Failed to create encryptor: %v", err)
	}
	return enc
}

func TestEncryptor(t *testing.T) {
	t.Run("round-trips a value", func(t *testing.T) {
		enc := newTestEncryptor(t)

		token, err := enc.Encrypt("stopped out, should have sized down")
		if err != nil {
			t.Fatalf("Encrypt() returned unexpected error: %v", err)
		}
		if token == "stopped out, should have sized down" {
			t.Error("Expected ciphertext to differ from plaintext")
		}

		if got := enc.Decrypt(token); got != "stopped out, should have sized down" {
			t.Errorf("Decrypt() = %q, want original plaintext", got)
		}
	})

	t.Run("passes empty values through", func(t *testing.T) {
		enc := newTestEncryptor(t)

		token, err := enc.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt() returned unexpected error: %v", err)
		}
		if token != "" {
			t.Errorf("Expected empty passthrough, got %q", token)
		}
	})

	t.Run("returns non-token values unchanged on decrypt", func(t *testing.T) {
		enc := newTestEncryptor(t)

		// Rows written before encryption was enabled hold plaintext.
		if got := enc.Decrypt("plain old note"); got != "plain old note" {
			t.Errorf("Decrypt() = %q, want plaintext unchanged", got)
		}
	})

	t.Run("nil encryptor is a no-op", func(t *testing.T) {
		var enc *secure.Encryptor

		token, err := enc.Encrypt("note")
		if err != nil {
			t.Fatalf("Encrypt() returned unexpected error: %v", err)
		}
		if token != "note" {
			t.Errorf("Expected plaintext passthrough, got %q", token)
		}
		if got := enc.Decrypt("note"); got != "note" {
			t.Errorf("Decrypt() = %q, want note", got)
		}
	})

	t.Run("empty key disables encryption", func(t *testing.T) {
		enc, err := secure.NewEncryptor("")
		if err != nil {
			t.Fatalf("NewEncryptor() returned unexpected error: %v", err)
		}
		if enc != nil {
			t.Error("Expected nil encryptor for empty key")
		}
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		if _, err := secure.NewEncryptor("not-a-key"); err == nil {
			t.Error("Expected error for malformed key, got nil")
		}
	})
}
