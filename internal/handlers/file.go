package handlers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/store"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxUploadMemory = 32 << 20

type FileHandler struct {
	Files store.FileRelay
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, r, apperr.InvalidArg("No file provided"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, apperr.InvalidArg("No file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, apperr.Wrap(apperr.CodeInternal, "read upload", err))
		return
	}

	fileID, err := h.Files.Upload(r.FormValue("username"), header.Filename, data)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "File uploaded",
		"file_id": fileID,
	})
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["file_id"]
	blob, err := h.Files.Download(fileID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename="+blob.Filename)
	w.Write(blob.Data)
}
