package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"shinmen-coffee/middleware"
	"shinmen-coffee/models"
	"shinmen-coffee/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// sessionStore resolves the store of the request's session, writing the error response on failure
func sessionStore(w http.ResponseWriter, r *http.Request, sessions *store.Registry) (*store.Store, bool) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		http.Error(w, "Session missing", http.StatusBadRequest)
		return nil, false
	}
	s, err := sessions.Session(r.Context(), id)
	if err != nil {
		log.Printf("load session %s: %v", id, err)
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}

// storeError maps store and model errors to HTTP responses
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrLineNotFound), errors.Is(err, store.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrInvalidMode),
		errors.Is(err, models.ErrInvalidCustomization):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrItemUnavailable), errors.Is(err, models.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Printf("unexpected store error: %v", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
