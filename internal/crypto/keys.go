package crypto

import (
	"crypto/rand"
	"io"
	"os"

	"github.com/pkg/errors"
)

// LoadOrCreateKey returns the encryption key stored at path,
// generating and persisting a fresh one on first run. The key is the
// only state that survives a restart.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, errors.Errorf("key file %s holds %d bytes, want %d", path, len(key), KeySize)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "read key file")
	}

	key = make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, errors.Wrap(err, "generate key")
	}
	if err := os.WriteFile(path, key, 0600); err != nil {
		return nil, errors.Wrap(err, "write key file")
	}
	return key, nil
}
