package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glemuel/chabrush/internal/ws"
)

// Set bundles the handlers and the hub for routing.
type Set struct {
	Auth    *AuthHandler
	Message *MessageHandler
	Call    *CallHandler
	Group   *GroupHandler
	File    *FileHandler
	Hub     *ws.Hub
}

// NewRouter wires the full request surface: the /api endpoints and the
// /ws subscriber endpoint.
func NewRouter(s Set) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", s.Auth.Register).Methods("POST")
	api.HandleFunc("/login", s.Auth.Login).Methods("POST")
	api.HandleFunc("/logout", s.Auth.Logout).Methods("POST")
	api.HandleFunc("/users", s.Auth.Users).Methods("GET")
	api.HandleFunc("/user_profile/{username}", s.Auth.Profile).Methods("GET", "POST")

	api.HandleFunc("/messages/{username}", s.Message.Get).Methods("GET")
	api.HandleFunc("/send_message", s.Message.Send).Methods("POST")
	api.HandleFunc("/batch_send", s.Message.BatchSend).Methods("POST")
	api.HandleFunc("/delete_message", s.Message.Delete).Methods("POST")
	api.HandleFunc("/edit_message", s.Message.Edit).Methods("POST")
	api.HandleFunc("/react_message", s.Message.React).Methods("POST")
	api.HandleFunc("/mark_read", s.Message.MarkRead).Methods("POST")

	api.HandleFunc("/start_call", s.Call.Start).Methods("POST")
	api.HandleFunc("/answer_call", s.Call.Answer).Methods("POST")
	api.HandleFunc("/end_call", s.Call.End).Methods("POST")

	api.HandleFunc("/create_group", s.Group.Create).Methods("POST")
	api.HandleFunc("/join_group", s.Group.Join).Methods("POST")
	api.HandleFunc("/send_group_message", s.Group.SendMessage).Methods("POST")
	api.HandleFunc("/get_group_messages/{group_name}", s.Group.GetMessages).Methods("GET")

	api.HandleFunc("/upload_file", s.File.Upload).Methods("POST")
	api.HandleFunc("/download_file/{file_id}", s.File.Download).Methods("GET")

	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(s.Hub, w, r)
	})

	return r
}
