// Package memstore implements the store interfaces in process memory.
// Each store guards its own collection with a mutex; all of them are
// constructed once at startup and injected where needed. State is lost
// on restart by design.
package memstore

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/models"
)

// UserChecker is the slice of Directory the other stores need for
// existence checks.
type UserChecker interface {
	Exists(username string) bool
}

type Directory struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

func NewDirectory() *Directory {
	return &Directory{users: make(map[string]*models.User)}
}

func (d *Directory) Register(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return apperr.ErrCredentialsRequired
	}
	if len(username) < 3 || len(password) < 6 {
		return apperr.ErrCredentialsTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "hash password", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[username]; ok {
		return apperr.ErrUsernameTaken
	}
	d.users[username] = &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Online:       true,
		CreatedAt:    time.Now(),
	}
	d.order = append(d.order, username)
	return nil
}

// Login deliberately returns the same error for unknown users and
// wrong passwords.
func (d *Directory) Login(username, password string) error {
	d.mu.RLock()
	user, ok := d.users[username]
	var hash string
	if ok {
		hash = user.PasswordHash
	}
	d.mu.RUnlock()

	if !ok {
		return apperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return apperr.ErrInvalidCredentials
	}

	d.mu.Lock()
	if user, ok := d.users[username]; ok {
		user.Online = true
	}
	d.mu.Unlock()
	return nil
}

func (d *Directory) Logout(username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[username]
	if !ok {
		return apperr.ErrUserNotFound
	}
	user.Online = false
	return nil
}

// ListUsernames returns all registered usernames in insertion order.
func (d *Directory) ListUsernames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *Directory) Exists(username string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.users[username]
	return ok
}

func (d *Directory) GetProfile(username string) (models.Profile, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[username]
	if !ok {
		return models.Profile{}, apperr.ErrUserNotFound
	}
	return user.Profile, nil
}

func (d *Directory) SetProfile(username string, profile models.Profile) error {
	profile.Bio = strings.TrimSpace(profile.Bio)
	profile.Avatar = strings.TrimSpace(profile.Avatar)

	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[username]
	if !ok {
		return apperr.ErrUserNotFound
	}
	user.Profile = profile
	return nil
}
