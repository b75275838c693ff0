// Package secure provides at-rest encryption for sensitive trade fields
// using fernet tokens. A nil encryptor is valid and stores values as
// plaintext, so encryption stays optional per deployment.
package secure

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Encryptor encrypts and decrypts string fields with a fernet key.
type Encryptor struct {
	key *fernet.Key
}

// NewEncryptor creates an Encryptor from a base64-encoded fernet key.
// An empty key returns a nil Encryptor, which performs no encryption.
func NewEncryptor(encodedKey string) (*Encryptor, error) {
	if encodedKey == "" {
		return nil, nil
	}

	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}

	return &Encryptor{key: key}, nil
}

// Encrypt returns the fernet token for value. Empty values and nil
// encryptors pass through unchanged.
func (e *Encryptor) Encrypt(value string) (string, error) {
	if e == nil || value == "" {
		return value, nil
	}

	token, err := fernet.EncryptAndSign([]byte(value), e.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}

	return string(token), nil
}

// Decrypt reverses Encrypt. Tokens never expire (ttl 0); values that do not
// verify as fernet tokens are returned as-is so pre-encryption rows stay
// readable after a key is introduced.
func (e *Encryptor) Decrypt(value string) string {
	if e == nil || value == "" {
		return value
	}

	plaintext := fernet.VerifyAndDecrypt([]byte(value), 0, []*fernet.Key{e.key})
	if plaintext == nil {
		return value
	}

	return string(plaintext)
}
