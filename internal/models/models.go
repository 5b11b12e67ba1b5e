package models

import "time"

// Profile is the public part of a user record.
type Profile struct {
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Online       bool      `json:"online"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
}

// DirectMessage is one entry in a recipient's append-only log. Content
// holds ciphertext; plaintext never reaches storage. Messages are
// addressed by their current position in the log, so deleting an entry
// shifts every later one down by one.
type DirectMessage struct {
	From      string    `json:"from"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Edited    bool      `json:"edited,omitempty"`
	Reactions []string  `json:"reactions"`
}

// DecryptedMessage is the read-side shape returned by list operations.
type DecryptedMessage struct {
	From    string `json:"from"`
	Content string `json:"content"`
}

type GroupMessage struct {
	From    string `json:"from"`
	Content string `json:"content"`
}

type Group struct {
	Name     string         `json:"name"`
	Creator  string         `json:"creator"`
	Members  []string       `json:"members"`
	Messages []GroupMessage `json:"messages"`
}

// Call statuses.
const (
	CallRinging   = "ringing"
	CallConnected = "connected"
)

// Call is keyed by caller + "_" + callee, so concurrent calls between
// the same ordered pair share one record.
type Call struct {
	ID     string `json:"call_id"`
	Status string `json:"status"`
	Caller string `json:"caller"`
	Callee string `json:"callee"`
}

// FileBlob is keyed by uploader + "_" + filename; re-uploading the
// same filename overwrites the previous blob.
type FileBlob struct {
	Filename string
	Data     []byte
	Uploader string
}
