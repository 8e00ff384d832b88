package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

type EventsHandler struct {
	signingSecret string
	router        *Router
}

func NewEventsHandler(signingSecret string, router *Router) *EventsHandler {
	return &EventsHandler{signingSecret: signingSecret, router: router}
}

func (h *EventsHandler) SetupEndpoints(r *mux.Router) {
	r.HandleFunc("/", h.HandleEvent).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)
}

func (h *EventsHandler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		Error("Failed to read request body: %v", err)
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	if !verifyRequest(r.Header, body, h.signingSecret) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	resp, err := h.router.Route(r.Context(), body)
	if err != nil {
		if errors.Is(err, ErrInvalidPayload) {
			Warn("Rejecting request: %v", err)
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		Error("Failed to handle event: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resp); err != nil {
		Error("Failed to write response: %v", err)
	}
}

func (h *EventsHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		Error("Failed to write error response: %v", err)
	}
}
