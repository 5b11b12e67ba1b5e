package memstore

import (
	"strings"
	"sync"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/models"
)

type CallRegistry struct {
	mu    sync.Mutex
	calls map[string]*models.Call
}

func NewCallRegistry() *CallRegistry {
	return &CallRegistry{calls: make(map[string]*models.Call)}
}

// Start registers a ringing call keyed by caller + "_" + callee.
// Existence of the parties in the directory is not checked; a second
// start for the same ordered pair overwrites the first.
func (r *CallRegistry) Start(caller, callee string) (*models.Call, error) {
	if strings.TrimSpace(caller) == "" || strings.TrimSpace(callee) == "" {
		return nil, apperr.ErrMissingCallParties
	}

	call := &models.Call{
		ID:     caller + "_" + callee,
		Status: models.CallRinging,
		Caller: caller,
		Callee: callee,
	}
	r.mu.Lock()
	r.calls[call.ID] = call
	r.mu.Unlock()

	out := *call
	return &out, nil
}

func (r *CallRegistry) Answer(callID string) (*models.Call, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	call, ok := r.calls[callID]
	if !ok {
		return nil, apperr.ErrCallNotFound
	}
	call.Status = models.CallConnected
	out := *call
	return &out, nil
}

// End removes the call and reports whether it existed. Ending an
// unknown call is a no-op, not an error.
func (r *CallRegistry) End(callID string) (*models.Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	call, ok := r.calls[callID]
	if !ok {
		return nil, false
	}
	delete(r.calls, callID)
	out := *call
	return &out, true
}
