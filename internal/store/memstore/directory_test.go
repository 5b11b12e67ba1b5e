package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/models"
)

func TestRegisterDuplicate(t *testing.T) {
	d := NewDirectory()

	require.NoError(t, d.Register("alice", "pw123456"))

	err := d.Register("alice", "other456")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeAlreadyExists, apperr.CodeOf(err))
}

func TestRegisterValidation(t *testing.T) {
	d := NewDirectory()

	assert.ErrorIs(t, d.Register("", ""), apperr.ErrCredentialsRequired)
	assert.ErrorIs(t, d.Register("   ", "pw123456"), apperr.ErrCredentialsRequired)
	assert.ErrorIs(t, d.Register("ab", "pw123456"), apperr.ErrCredentialsTooShort)
	assert.ErrorIs(t, d.Register("alice", "pw123"), apperr.ErrCredentialsTooShort)

	// Surrounding whitespace is trimmed before validation.
	require.NoError(t, d.Register("  bob  ", "pw123456"))
	assert.True(t, d.Exists("bob"))
	assert.False(t, d.Exists("  bob  "))
}

func TestLogin(t *testing.T) {
	d := NewDirectory()
	registerUsers(t, d, "alice")

	require.NoError(t, d.Login("alice", "pw123456"))

	// Unknown user and wrong password must be indistinguishable.
	errUnknown := d.Login("nobody", "pw123456")
	errWrong := d.Login("alice", "wrongpass")
	assert.ErrorIs(t, errUnknown, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, apperr.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	d := NewDirectory()
	registerUsers(t, d, "alice")

	require.NoError(t, d.Logout("alice"))
	assert.ErrorIs(t, d.Logout("nobody"), apperr.ErrUserNotFound)
}

func TestListUsernamesInsertionOrder(t *testing.T) {
	d := NewDirectory()
	registerUsers(t, d, "charlie", "alice", "bob")

	assert.Equal(t, []string{"charlie", "alice", "bob"}, d.ListUsernames())
}

func TestProfile(t *testing.T) {
	d := NewDirectory()
	registerUsers(t, d, "alice")

	profile, err := d.GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, models.Profile{}, profile)

	require.NoError(t, d.SetProfile("alice", models.Profile{Bio: "hi", Avatar: "a.png"}))
	profile, err = d.GetProfile("alice")
	require.NoError(t, err)
	assert.Equal(t, "hi", profile.Bio)

	_, err = d.GetProfile("nobody")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
	assert.ErrorIs(t, d.SetProfile("nobody", models.Profile{Bio: "x"}), apperr.ErrUserNotFound)
}
