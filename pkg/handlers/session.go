package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"wellnesshub/pkg/claims"
	"wellnesshub/pkg/session"
)

const (
	lenID        int    = 24
	typeError    string = "error"
	typeMessage  string = "message"
	muxVarSessID string = "id"
)

type SessionHandler struct {
	Service session.ServiceSession
	Logger  *slog.Logger
}

func NewSessionHandler(service session.ServiceSession, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *SessionHandler) GetPublicSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Service.ListPublished()
	if err != nil {
		h.writeServiceError(w, "GetPublicSessions", err)
		return
	}
	writeJSON(w, h.Logger, sessions)
}

func (h *SessionHandler) GetPublicSession(w http.ResponseWriter, r *http.Request) {
	sessID, ok := mux.Vars(r)[muxVarSessID]
	if !ok || len(sessID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid session id")
		return
	}

	s, err := h.Service.GetPublished(sessID)
	if err != nil {
		h.writeServiceError(w, "GetPublicSession", err)
		return
	}

	writeJSON(w, h.Logger, s)
}

func (h *SessionHandler) GetMySessions(w http.ResponseWriter, r *http.Request) {
	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	sessions, err := h.Service.ListOwned(claims.User.ID)
	if err != nil {
		h.writeServiceError(w, "GetMySessions", err)
		return
	}

	writeJSON(w, h.Logger, sessions)
}

func (h *SessionHandler) GetMySession(w http.ResponseWriter, r *http.Request) {
	sessID, ok := mux.Vars(r)[muxVarSessID]
	if !ok || len(sessID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid session id")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	s, err := h.Service.GetOwned(claims.User.ID, sessID)
	if err != nil {
		h.writeServiceError(w, "GetMySession", err)
		return
	}

	writeJSON(w, h.Logger, s)
}

func (h *SessionHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var draft session.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	s, created, err := h.Service.SaveDraft(claims.User.ID, draft)
	if err != nil {
		h.writeServiceError(w, "SaveDraft", err)
		return
	}

	msg := "Draft updated successfully"
	status := http.StatusOK
	if created {
		msg = "Draft created successfully"
		status = http.StatusCreated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"message": msg, "session": s}); err != nil {
		h.Logger.Error("failed to write response", "error", err)
		return
	}
	h.Logger.Info("draft saved", "user", claims.User.ID, "session", s.ID, "created", created)
}

func (h *SessionHandler) Publish(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, typeMessage, "session id is required to publish")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	s, err := h.Service.Publish(claims.User.ID, req.ID)
	if err != nil {
		h.writeServiceError(w, "Publish", err)
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]any{"message": "Session published successfully", "session": s}); ok {
		h.Logger.Info("session published", "user", claims.User.ID, "session", s.ID)
	}
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessID, ok := mux.Vars(r)[muxVarSessID]
	if !ok || len(sessID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid session id")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	if err := h.Service.Delete(claims.User.ID, sessID); err != nil {
		h.writeServiceError(w, "DeleteSession", err)
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]string{"message": "Session deleted successfully"}); ok {
		h.Logger.Info("session deleted", "user", claims.User.ID, "session", sessID)
	}
}

// writeServiceError maps domain errors onto statuses; anything unknown is a
// generic 500 so store details never reach the client.
func (h *SessionHandler) writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, session.ErrValidation) || errors.Is(err, session.ErrInvalidID):
		writeError(w, http.StatusBadRequest, typeMessage, err.Error())
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, typeMessage, err.Error())
	default:
		h.Logger.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, typeMessage, "server error")
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func getClaimsFromContext(w http.ResponseWriter, r *http.Request, c *claims.Claims) bool {
	val, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	if !ok || val == nil || val.User.ID == "" {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return false
	}
	*c = *val
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
