package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "POST", "/api/register", map[string]string{
		"username": "alice", "password": "pw123456",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, "User alice registered", resp["message"])

	// Second registration with the same name fails.
	rr = env.do(t, "POST", "/api/register", map[string]string{
		"username": "alice", "password": "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, "POST", "/api/register", map[string]string{
		"username": "ab", "password": "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	rr := env.do(t, "POST", "/api/login", map[string]string{
		"username": "alice", "password": "pw123456",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, "POST", "/api/login", map[string]string{
		"username": "alice", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = env.do(t, "POST", "/api/login", map[string]string{
		"username": "ghost", "password": "pw123456",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	rr := env.do(t, "POST", "/api/logout", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, "POST", "/api/logout", map[string]string{"username": "ghost"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUsers(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")
	env.register(t, "bob")

	rr := env.do(t, "GET", "/api/users", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string][]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, []string{"alice", "bob"}, resp["users"])
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	rr := env.do(t, "POST", "/api/user_profile/alice", map[string]string{
		"bio": "hello", "avatar": "a.png",
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, "GET", "/api/user_profile/alice", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]map[string]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, "hello", resp["profile"]["bio"])

	rr = env.do(t, "GET", "/api/user_profile/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// Writes to unknown users are rejected too.
	rr = env.do(t, "POST", "/api/user_profile/ghost", map[string]string{"bio": "x"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
