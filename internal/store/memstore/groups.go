package memstore

import (
	"strings"
	"sync"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/models"
	"github.com/glemuel/chabrush/internal/store"
)

type GroupRegistry struct {
	mu     sync.RWMutex
	groups map[string]*models.Group
	dir    UserChecker
	cipher store.Cipher
}

func NewGroupRegistry(dir UserChecker, cipher store.Cipher) *GroupRegistry {
	return &GroupRegistry{
		groups: make(map[string]*models.Group),
		dir:    dir,
		cipher: cipher,
	}
}

func (r *GroupRegistry) Create(name, creator string) error {
	name = strings.TrimSpace(name)
	creator = strings.TrimSpace(creator)
	if name == "" || creator == "" {
		return apperr.ErrGroupExists
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.groups[name]; ok {
		return apperr.ErrGroupExists
	}
	r.groups[name] = &models.Group{
		Name:     name,
		Creator:  creator,
		Members:  []string{creator},
		Messages: []models.GroupMessage{},
	}
	return nil
}

// Join adds username to the group. Joining twice is a no-op; the
// member list never holds duplicates.
func (r *GroupRegistry) Join(name, username string) error {
	if !r.dir.Exists(username) {
		return apperr.ErrGroupOrUserMissing
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	group, ok := r.groups[name]
	if !ok {
		return apperr.ErrGroupOrUserMissing
	}
	for _, member := range group.Members {
		if member == username {
			return nil
		}
	}
	group.Members = append(group.Members, username)
	return nil
}

// SendMessage encrypts and appends to the group log, requiring the
// sender to be a member. The returned member snapshot lets the caller
// fan the plaintext event out to everyone but the sender.
func (r *GroupRegistry) SendMessage(name, from, plaintext string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	group, ok := r.groups[name]
	if !ok || !contains(group.Members, from) {
		return nil, apperr.ErrNotGroupMember
	}

	ciphertext, err := r.cipher.EncryptString(plaintext)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "encrypt group message", err)
	}
	group.Messages = append(group.Messages, models.GroupMessage{From: from, Content: ciphertext})

	members := make([]string, len(group.Members))
	copy(members, group.Members)
	return members, nil
}

// ListMessages decrypts the group log with the same per-entry sentinel
// policy as the direct message store. Unknown groups yield an empty
// list.
func (r *GroupRegistry) ListMessages(name string) []models.DecryptedMessage {
	r.mu.RLock()
	var snapshot []models.GroupMessage
	if group, ok := r.groups[name]; ok {
		snapshot = make([]models.GroupMessage, len(group.Messages))
		copy(snapshot, group.Messages)
	}
	r.mu.RUnlock()

	out := make([]models.DecryptedMessage, 0, len(snapshot))
	for _, msg := range snapshot {
		plaintext, err := r.cipher.DecryptString(msg.Content)
		if err != nil {
			plaintext = decryptFailed
		}
		out = append(out, models.DecryptedMessage{From: msg.From, Content: plaintext})
	}
	return out
}

func (r *GroupRegistry) IsMember(name, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	group, ok := r.groups[name]
	return ok && contains(group.Members, username)
}

func contains(members []string, username string) bool {
	for _, member := range members {
		if member == username {
			return true
		}
	}
	return false
}
