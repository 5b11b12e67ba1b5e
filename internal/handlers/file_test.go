package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFile(t *testing.T, env *testEnv, username, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("username", username))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/upload_file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func TestUploadDownload(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	rr := uploadFile(t, env, "alice", "notes.txt", []byte("contents"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp map[string]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, "alice_notes.txt", resp["file_id"])

	rr = env.do(t, "GET", "/api/download_file/"+resp["file_id"], nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "notes.txt")
	assert.Equal(t, []byte("contents"), rr.Body.Bytes())
}

func TestUploadUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	rr := uploadFile(t, env, "ghost", "notes.txt", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadWithoutFile(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	rr := env.do(t, "POST", "/api/upload_file", map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDownloadNotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "GET", "/api/download_file/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
