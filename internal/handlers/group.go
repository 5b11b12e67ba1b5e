package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glemuel/chabrush/internal/models"
	"github.com/glemuel/chabrush/internal/store"
	"github.com/glemuel/chabrush/internal/ws"
)

type GroupHandler struct {
	Groups store.GroupRegistry
	Hub    *ws.Hub
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupName string `json:"group_name"`
		Creator   string `json:"creator"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Groups.Create(req.GroupName, req.Creator); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "Group "+req.GroupName+" created")
}

func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupName string `json:"group_name"`
		Username  string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Groups.Join(req.GroupName, req.Username); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "User "+req.Username+" joined group "+req.GroupName)
}

// SendMessage appends to the group log, then fans the plaintext event
// out to each member's own room individually, skipping the sender.
func (h *GroupHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GroupName string `json:"group_name"`
		From      string `json:"from"`
		Content   string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	members, err := h.Groups.SendMessage(req.GroupName, req.From, req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	event := ws.GroupMessageEvent{Group: req.GroupName, From: req.From, Content: req.Content}
	for _, member := range members {
		if member != req.From {
			h.Hub.Publish(member, ws.EventGroupMessage, event)
		}
	}
	respondMessage(w, "Group message sent")
}

// GetMessages lists the group's decrypted log; unknown groups get an
// empty list.
func (h *GroupHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	groupName := mux.Vars(r)["group_name"]
	respondJSON(w, http.StatusOK, map[string][]models.DecryptedMessage{
		"messages": h.Groups.ListMessages(groupName),
	})
}
