package memstore

import (
	"strings"
	"sync"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/models"
)

type FileRelay struct {
	mu    sync.RWMutex
	blobs map[string]*models.FileBlob
	dir   UserChecker
}

func NewFileRelay(dir UserChecker) *FileRelay {
	return &FileRelay{blobs: make(map[string]*models.FileBlob), dir: dir}
}

// Upload stores the blob under username + "_" + filename, overwriting
// any previous upload with the same key.
func (f *FileRelay) Upload(username, filename string, data []byte) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || !f.dir.Exists(username) {
		return "", apperr.ErrInvalidUser
	}
	if filename == "" {
		return "", apperr.ErrNoFileSelected
	}

	fileID := username + "_" + filename
	f.mu.Lock()
	f.blobs[fileID] = &models.FileBlob{Filename: filename, Data: data, Uploader: username}
	f.mu.Unlock()
	return fileID, nil
}

func (f *FileRelay) Download(fileID string) (*models.FileBlob, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	blob, ok := f.blobs[fileID]
	if !ok {
		return nil, apperr.ErrFileNotFound
	}
	return blob, nil
}
