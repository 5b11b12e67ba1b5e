package handlers

import (
	"net/http"

	"github.com/glemuel/chabrush/internal/store"
	"github.com/glemuel/chabrush/internal/ws"
)

type CallHandler struct {
	Calls store.CallRegistry
	Hub   *ws.Hub
}

func (h *CallHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Caller string `json:"caller"`
		Callee string `json:"callee"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	call, err := h.Calls.Start(req.Caller, req.Callee)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.Hub.Publish(call.Callee, ws.EventCallIncoming, ws.CallIncomingEvent{
		CallID: call.ID,
		Caller: call.Caller,
	})
	respondJSON(w, http.StatusOK, map[string]string{
		"call_id": call.ID,
		"status":  call.Status,
	})
}

func (h *CallHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CallID string `json:"call_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	call, err := h.Calls.Answer(req.CallID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.Hub.Publish(call.Caller, ws.EventCallConnected, ws.CallEvent{CallID: call.ID})
	respondJSON(w, http.StatusOK, map[string]string{"status": call.Status})
}

// End removes the call and tells both parties. Ending an unknown call
// still succeeds.
func (h *CallHandler) End(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CallID string `json:"call_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if call, ok := h.Calls.End(req.CallID); ok {
		h.Hub.Publish(call.Caller, ws.EventCallEnded, ws.CallEvent{CallID: call.ID})
		h.Hub.Publish(call.Callee, ws.EventCallEnded, ws.CallEvent{CallID: call.ID})
	}
	respondMessage(w, "Call ended")
}
