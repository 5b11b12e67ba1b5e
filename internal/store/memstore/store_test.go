package memstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glemuel/chabrush/internal/crypto"
)

func newTestCipher(t *testing.T) *crypto.Cipher {
	t.Helper()
	c, err := crypto.NewCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	return c
}

// registerUsers registers each username with a valid password.
func registerUsers(t *testing.T, d *Directory, usernames ...string) {
	t.Helper()
	for _, username := range usernames {
		require.NoError(t, d.Register(username, "pw123456"))
	}
}
