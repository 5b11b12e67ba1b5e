package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glemuel/chabrush/internal/apperr"
	"github.com/glemuel/chabrush/internal/models"
	"github.com/glemuel/chabrush/internal/store"
	"github.com/glemuel/chabrush/internal/ws"
)

type MessageHandler struct {
	Messages store.MessageStore
	Hub      *ws.Hub
}

type sendMessageRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
}

type messageIndexRequest struct {
	Username     string `json:"username"`
	MessageIndex int    `json:"message_index"`
	NewContent   string `json:"new_content,omitempty"`
	Reaction     string `json:"reaction,omitempty"`
}

// Get lists the recipient's decrypted messages. Unknown users get an
// empty list, not a 404.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	respondJSON(w, http.StatusOK, map[string][]models.DecryptedMessage{
		"messages": h.Messages.List(username),
	})
}

// Send stores the encrypted message and then pushes the plaintext
// event to the recipient's room. The event content was captured before
// encryption; nothing is ever decrypted for notification.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	ts, err := h.Messages.Send(req.From, req.To, req.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.Hub.Publish(req.To, ws.EventNewMessage, ws.NewMessageEvent{
		From:      req.From,
		Content:   req.Content,
		Timestamp: ts,
	})
	respondMessage(w, "Message sent")
}

// BatchSend processes items independently and returns one outcome per
// item in input order.
func (h *MessageHandler) BatchSend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []store.BatchItem `json:"messages"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if req.Messages == nil {
		respondError(w, r, apperr.InvalidArg("No messages provided"))
		return
	}

	results := h.Messages.BatchSend(req.Messages)
	out := make([]map[string]string, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			// The batch surface words this one differently from the
			// single-send surface.
			msg := res.Err.Error()
			if errors.Is(res.Err, apperr.ErrMissingFields) {
				msg = "Missing fields for message"
			}
			out = append(out, map[string]string{"error": msg})
			continue
		}
		h.Hub.Publish(res.Item.To, ws.EventNewMessage, ws.NewMessageEvent{
			From:      res.Item.From,
			Content:   res.Item.Content,
			Timestamp: res.Timestamp,
		})
		out = append(out, map[string]string{"message": "Sent"})
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": out})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req messageIndexRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Messages.DeleteAt(req.Username, req.MessageIndex); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "Message deleted")
}

func (h *MessageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req messageIndexRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Messages.Edit(req.Username, req.MessageIndex, req.NewContent); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "Message edited")
}

func (h *MessageHandler) React(w http.ResponseWriter, r *http.Request) {
	var req messageIndexRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Messages.React(req.Username, req.MessageIndex, req.Reaction); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "Reaction added")
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req messageIndexRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Messages.MarkRead(req.Username, req.MessageIndex); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, "Message marked as read")
}
