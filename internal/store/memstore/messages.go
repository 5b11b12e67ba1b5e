package memstore

import (
	"strings"
	"sync"
	"time"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/models"
	"github.com/glemuel/chabrush/internal/store"
)

// decryptFailed is substituted for entries whose ciphertext no longer
// decrypts; one corrupt entry never aborts a list.
const decryptFailed = "Decryption failed"

type MessageStore struct {
	mu     sync.Mutex
	logs   map[string][]*models.DirectMessage
	dir    UserChecker
	cipher store.Cipher
}

func NewMessageStore(dir UserChecker, cipher store.Cipher) *MessageStore {
	return &MessageStore{
		logs:   make(map[string][]*models.DirectMessage),
		dir:    dir,
		cipher: cipher,
	}
}

// Send validates both parties, encrypts the content and appends it to
// the recipient's log. The returned timestamp lets the caller publish
// the plaintext event without ever re-deriving plaintext from storage.
func (s *MessageStore) Send(from, to, plaintext string) (time.Time, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	plaintext = strings.TrimSpace(plaintext)
	if from == "" || to == "" || plaintext == "" {
		return time.Time{}, apperr.ErrMissingFields
	}
	if !s.dir.Exists(to) || !s.dir.Exists(from) {
		return time.Time{}, apperr.ErrInvalidUsers
	}

	ciphertext, err := s.cipher.EncryptString(plaintext)
	if err != nil {
		return time.Time{}, apperr.Wrap(apperr.CodeInternal, "encrypt message", err)
	}

	now := time.Now()
	s.mu.Lock()
	s.logs[to] = append(s.logs[to], &models.DirectMessage{
		From:      from,
		Content:   ciphertext,
		Timestamp: now,
		Reactions: []string{},
	})
	s.mu.Unlock()
	return now, nil
}

// List decrypts the recipient's log. An unknown user yields an empty
// list, not an error.
func (s *MessageStore) List(username string) []models.DecryptedMessage {
	s.mu.Lock()
	snapshot := make([]models.DecryptedMessage, 0, len(s.logs[username]))
	for _, msg := range s.logs[username] {
		snapshot = append(snapshot, models.DecryptedMessage{From: msg.From, Content: msg.Content})
	}
	s.mu.Unlock()

	for i := range snapshot {
		plaintext, err := s.cipher.DecryptString(snapshot[i].Content)
		if err != nil {
			snapshot[i].Content = decryptFailed
			continue
		}
		snapshot[i].Content = plaintext
	}
	return snapshot
}

func (s *MessageStore) Edit(username string, index int, newContent string) error {
	username = strings.TrimSpace(username)
	newContent = strings.TrimSpace(newContent)
	if username == "" || index < 0 || newContent == "" {
		return apperr.ErrInvalidData
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.logs[username]
	if index >= len(log) {
		return apperr.ErrMessageNotFound
	}
	ciphertext, err := s.cipher.EncryptString(newContent)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "encrypt message", err)
	}
	log[index].Content = ciphertext
	log[index].Edited = true
	return nil
}

// DeleteAt removes the entry at index; every later entry shifts down
// by one. Indexes are positions, not stable ids.
func (s *MessageStore) DeleteAt(username string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log, ok := s.logs[username]
	if !ok || index < 0 || index >= len(log) {
		return apperr.ErrMessageNotFound
	}
	s.logs[username] = append(log[:index], log[index+1:]...)
	return nil
}

// React appends the reaction unless it is already present.
func (s *MessageStore) React(username string, index int, reaction string) error {
	username = strings.TrimSpace(username)
	reaction = strings.TrimSpace(reaction)
	if username == "" || index < 0 || reaction == "" {
		return apperr.ErrInvalidData
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.logs[username]
	if index >= len(log) {
		return apperr.ErrMessageNotFound
	}
	for _, existing := range log[index].Reactions {
		if existing == reaction {
			return nil
		}
	}
	log[index].Reactions = append(log[index].Reactions, reaction)
	return nil
}

func (s *MessageStore) MarkRead(username string, index int) error {
	username = strings.TrimSpace(username)
	if username == "" || index < 0 {
		return apperr.ErrInvalidData
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	log := s.logs[username]
	if index >= len(log) {
		return apperr.ErrMessageNotFound
	}
	log[index].Read = true
	return nil
}

// BatchSend processes every item independently; one bad item never
// aborts the rest. Results come back in input order.
func (s *MessageStore) BatchSend(items []store.BatchItem) []store.BatchResult {
	results := make([]store.BatchResult, 0, len(items))
	for _, item := range items {
		ts, err := s.Send(item.From, item.To, item.Content)
		results = append(results, store.BatchResult{Item: item, Timestamp: ts, Err: err})
	}
	return results
}
