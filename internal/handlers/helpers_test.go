package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/glemuel/chabrush/internal/crypto"
	"github.com/glemuel/chabrush/internal/store/memstore"
	"github.com/glemuel/chabrush/internal/ws"
)

type testEnv struct {
	directory *memstore.Directory
	messages  *memstore.MessageStore
	calls     *memstore.CallRegistry
	groups    *memstore.GroupRegistry
	files     *memstore.FileRelay
	hub       *ws.Hub
	router    *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cipher, err := crypto.NewCipher([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	directory := memstore.NewDirectory()
	messages := memstore.NewMessageStore(directory, cipher)
	calls := memstore.NewCallRegistry()
	groups := memstore.NewGroupRegistry(directory, cipher)
	files := memstore.NewFileRelay(directory)
	hub := ws.NewHub(messages, groups)

	router := NewRouter(Set{
		Auth:    &AuthHandler{Directory: directory},
		Message: &MessageHandler{Messages: messages, Hub: hub},
		Call:    &CallHandler{Calls: calls, Hub: hub},
		Group:   &GroupHandler{Groups: groups, Hub: hub},
		File:    &FileHandler{Files: files},
		Hub:     hub,
	})

	return &testEnv{
		directory: directory,
		messages:  messages,
		calls:     calls,
		groups:    groups,
		files:     files,
		hub:       hub,
		router:    router,
	}
}

// do issues a request against the router, JSON-encoding body if given.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) register(t *testing.T, username string) {
	t.Helper()
	rr := e.do(t, "POST", "/api/register", map[string]string{
		"username": username,
		"password": "pw123456",
	})
	require.Equal(t, 200, rr.Code, rr.Body.String())
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(v))
}
