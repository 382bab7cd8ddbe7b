// Package cryptox implements the local at-rest protection for the session
// database: AES-GCM sealing of small values under a per-profile device key.
//
// The device key is a random 256-bit key generated on first run and kept in a
// 0600 file inside the profile directory. It ties the stored session token to
// the profile directory; copying the database alone is not enough to reuse
// the token.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"os"

	"github.com/artfolio/artfolio-cli/internal/common"
)

const keySize = 32

// Seal encrypts plaintext with AES-GCM under key. A new random 12-byte nonce
// is generated for every call; ciphertext and nonce are returned separately.
//
// The key must be a valid AES key length (16, 24, or 32 bytes).
func Seal(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Open decrypts ciphertext produced by Seal. The key and the 12-byte nonce
// must be the ones used during sealing.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

// LoadOrCreateKey returns the device key stored at path, creating a fresh
// random one on first use. The key file is written with 0600 permissions.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != keySize {
			return nil, fmt.Errorf("device key %s: unexpected size %d", path, len(key))
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read device key: %w", err)
	}

	key = common.GenerateRandByteArray(keySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write device key: %w", err)
	}
	return key, nil
}
