package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glemuel/chabrush/internal/models"
	"github.com/glemuel/chabrush/internal/store"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Directory store.Directory
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := decodeJSON(r, &creds); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Directory.Register(creds.Username, creds.Password); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "User "+creds.Username+" registered")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := decodeJSON(r, &creds); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Directory.Login(creds.Username, creds.Password); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "User "+creds.Username+" logged in")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Directory.Logout(req.Username); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "User "+req.Username+" logged out")
}

func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"users": h.Directory.ListUsernames()})
}

// Profile serves GET (read) and POST (overwrite) for one user's
// profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	if r.Method == http.MethodGet {
		profile, err := h.Directory.GetProfile(username)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]models.Profile{"profile": profile})
		return
	}

	var profile models.Profile
	if err := decodeJSON(r, &profile); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Directory.SetProfile(username, profile); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "Profile updated")
}
