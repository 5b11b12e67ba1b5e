package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/glemuel/chabrush/internal/config"
	"github.com/glemuel/chabrush/internal/crypto"
	"github.com/glemuel/chabrush/internal/handlers"
	"github.com/glemuel/chabrush/internal/store/memstore"
	"github.com/glemuel/chabrush/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})))

	// The encryption key is the only state that survives a restart.
	key, err := crypto.LoadOrCreateKey(cfg.Crypto.KeyFile)
	if err != nil {
		slog.Error("load encryption key", "file", cfg.Crypto.KeyFile, "err", err)
		os.Exit(1)
	}
	cipher, err := crypto.NewCipher(key)
	if err != nil {
		slog.Error("init cipher", "err", err)
		os.Exit(1)
	}

	// All state lives in these stores; everything else borrows them.
	directory := memstore.NewDirectory()
	messages := memstore.NewMessageStore(directory, cipher)
	calls := memstore.NewCallRegistry()
	groups := memstore.NewGroupRegistry(directory, cipher)
	files := memstore.NewFileRelay(directory)

	hub := ws.NewHub(messages, groups)
	go hub.Run()

	r := handlers.NewRouter(handlers.Set{
		Auth:    &handlers.AuthHandler{Directory: directory},
		Message: &handlers.MessageHandler{Messages: messages, Hub: hub},
		Call:    &handlers.CallHandler{Calls: calls, Hub: hub},
		Group:   &handlers.GroupHandler{Groups: groups, Hub: hub},
		File:    &handlers.FileHandler{Files: files},
		Hub:     hub,
	})
	r.Use(loggingMiddleware)

	slog.Info("starting server", "addr", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
