// Package store defines the interfaces the handlers and the realtime
// hub depend on. The concrete in-memory implementations live in
// store/memstore; nothing here persists across restarts.
package store

import (
	"time"

	"github.com/glemuel/chabrush/internal/models"
)

// Cipher is the opaque encrypt/decrypt capability used for message
// content at rest.
type Cipher interface {
	EncryptString(plaintext string) (string, error)
	DecryptString(ciphertext string) (string, error)
}

// Directory owns user records and the online flag.
type Directory interface {
	Register(username, password string) error
	Login(username, password string) error
	Logout(username string) error
	ListUsernames() []string
	Exists(username string) bool
	GetProfile(username string) (models.Profile, error)
	SetProfile(username string, profile models.Profile) error
}

// BatchItem is one entry of a batch send request.
type BatchItem struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Content string `json:"content"`
}

// BatchResult reports the outcome of a single batch item. Err is nil
// for items that were stored.
type BatchResult struct {
	Item      BatchItem
	Timestamp time.Time
	Err       error
}

// MessageStore owns the per-recipient message logs. Indexes are
// positional: deleting entry i shifts every later entry down by one.
type MessageStore interface {
	Send(from, to, plaintext string) (time.Time, error)
	List(username string) []models.DecryptedMessage
	Edit(username string, index int, newContent string) error
	DeleteAt(username string, index int) error
	React(username string, index int, reaction string) error
	MarkRead(username string, index int) error
	BatchSend(items []BatchItem) []BatchResult
}

// CallRegistry owns the ringing -> connected -> removed state machine.
// Returned calls are copies; mutating them does not touch the registry.
type CallRegistry interface {
	Start(caller, callee string) (*models.Call, error)
	Answer(callID string) (*models.Call, error)
	End(callID string) (*models.Call, bool)
}

// GroupRegistry owns group membership and the per-group message log.
type GroupRegistry interface {
	Create(name, creator string) error
	Join(name, username string) error
	// SendMessage appends the encrypted message and returns a snapshot
	// of the membership so the caller can fan out the plaintext event.
	SendMessage(name, from, plaintext string) ([]string, error)
	ListMessages(name string) []models.DecryptedMessage
	IsMember(name, username string) bool
}

// FileRelay stores uploaded blobs under uploader + "_" + filename.
type FileRelay interface {
	Upload(username, filename string, data []byte) (string, error)
	Download(fileID string) (*models.FileBlob, error)
}
