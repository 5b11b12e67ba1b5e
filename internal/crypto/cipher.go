// Package crypto provides the content-at-rest encryption used by the
// message stores: AES-256-GCM with a nonce-prefixed blob, carried as
// base64 text so ciphertext can live in string fields and JSON.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// KeySize is the required key length in bytes (AES-256).
const KeySize = 32

var (
	ErrInvalidKeyLength = errors.New("key must be 32 bytes")
	ErrCiphertextShort  = errors.New("ciphertext too short")
)

type Cipher struct {
	gcm cipher.AEAD
}

func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{gcm: gcm}, nil
}

// EncryptString seals plaintext and returns base64(nonce || ciphertext).
func (c *Cipher) EncryptString(plaintext string) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := c.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptString reverses EncryptString. Tampered or malformed input
// fails; callers decide whether that aborts the request or only the
// affected entry.
func (c *Cipher) DecryptString(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	ns := c.gcm.NonceSize()
	if len(blob) < ns {
		return "", ErrCiphertextShort
	}
	plaintext, err := c.gcm.Open(nil, blob[:ns], blob[ns:], nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
