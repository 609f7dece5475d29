package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"wellnesshub/pkg/claims"
	"wellnesshub/pkg/handlers"
	"wellnesshub/pkg/session"
	"wellnesshub/pkg/session/mocks"
)

const (
	NiceSessionID = "123456789012345678901234"
)

var (
	mockSessionService *mocks.ServiceSession
	handler            *handlers.SessionHandler
	logger             *slog.Logger
	defaultID          = map[string]string{"id": NiceSessionID}
	defaultClaims      = &claims.Claims{
		User: struct {
			Username string `json:"username"`
			ID       string `json:"id"`
		}{
			Username: "testuser",
			ID:       "user123",
		},
	}
)

func resetMock(m *mocks.ServiceSession) {
	m.ExpectedCalls = nil
	m.Calls = nil
}

func TestMain(m *testing.M) {
	mockSessionService = new(mocks.ServiceSession)
	logger = slog.Default()
	handler = handlers.NewSessionHandler(mockSessionService, logger)

	code := m.Run()
	os.Exit(code)
}

func SetDefaultUserClaims(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), claims.TokenContextKey, defaultClaims)
	return req.WithContext(ctx)
}

func TestGetPublicSessions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		defer resetMock(mockSessionService)

		published := []*session.Session{{Title: "Yoga", Status: session.StatusPublished}}
		mockSessionService.On("ListPublished").Return(published, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		w := httptest.NewRecorder()

		handler.GetPublicSessions(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Yoga")
		mockSessionService.AssertExpectations(t)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		defer resetMock(mockSessionService)

		mockSessionService.On("ListPublished").Return(nil, errors.New("mongo exploded"))

		r := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
		w := httptest.NewRecorder()

		handler.GetPublicSessions(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "mongo exploded")
	})
}

func TestGetPublicSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/sessions/short", nil)
		r = mux.SetURLVars(r, map[string]string{"id": "short"})
		w := httptest.NewRecorder()

		handler.GetPublicSession(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("draft is invisible", func(t *testing.T) {
		defer resetMock(mockSessionService)

		mockSessionService.On("GetPublished", NiceSessionID).Return(nil, session.ErrNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/sessions/"+NiceSessionID, nil)
		r = mux.SetURLVars(r, defaultID)
		w := httptest.NewRecorder()

		handler.GetPublicSession(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetMySessions(t *testing.T) {
	t.Run("missing claims", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/my-sessions", nil)
		w := httptest.NewRecorder()

		handler.GetMySessions(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		defer resetMock(mockSessionService)

		owned := []*session.Session{
			{Title: "Draft one", Status: session.StatusDraft, OwnerID: "user123"},
			{Title: "Published one", Status: session.StatusPublished, OwnerID: "user123"},
		}
		mockSessionService.On("ListOwned", "user123").Return(owned, nil)

		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodGet, "/api/my-sessions", nil))
		w := httptest.NewRecorder()

		handler.GetMySessions(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Draft one")
		mockSessionService.AssertExpectations(t)
	})
}

func TestSaveDraft(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/my-sessions/save-draft", bytes.NewBufferString(`{"invalid": }`))
		w := httptest.NewRecorder()

		handler.SaveDraft(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid JSON payload")
	})

	t.Run("missing claims", func(t *testing.T) {
		body, err := json.Marshal(session.Draft{Title: "t", Content: "c"})
		assert.NoError(t, err)

		r := httptest.NewRequest(http.MethodPost, "/api/my-sessions/save-draft", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.SaveDraft(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		defer resetMock(mockSessionService)

		created := &session.Session{ID: NiceSessionID, OwnerID: "user123", Title: "t", Status: session.StatusDraft}
		mockSessionService.On("SaveDraft", "user123", mock.AnythingOfType("session.Draft")).Return(created, true, nil)

		body, _ := json.Marshal(session.Draft{Title: "t", Content: "c"})
		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodPost, "/api/my-sessions/save-draft", bytes.NewReader(body)))
		w := httptest.NewRecorder()

		handler.SaveDraft(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Draft created successfully")
		mockSessionService.AssertExpectations(t)
	})

	t.Run("updated", func(t *testing.T) {
		defer resetMock(mockSessionService)

		updated := &session.Session{ID: NiceSessionID, OwnerID: "user123", Title: "t", Status: session.StatusDraft}
		mockSessionService.On("SaveDraft", "user123", mock.AnythingOfType("session.Draft")).Return(updated, false, nil)

		body, _ := json.Marshal(session.Draft{ID: NiceSessionID, Title: "t", Content: "c"})
		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodPost, "/api/my-sessions/save-draft", bytes.NewReader(body)))
		w := httptest.NewRecorder()

		handler.SaveDraft(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Draft updated successfully")
	})

	t.Run("validation error", func(t *testing.T) {
		defer resetMock(mockSessionService)

		mockSessionService.On("SaveDraft", "user123", mock.AnythingOfType("session.Draft")).Return(nil, false, session.ErrValidation)

		body, _ := json.Marshal(session.Draft{Title: "", Content: ""})
		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodPost, "/api/my-sessions/save-draft", bytes.NewReader(body)))
		w := httptest.NewRecorder()

		handler.SaveDraft(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not owner gets 404 not 401", func(t *testing.T) {
		defer resetMock(mockSessionService)

		mockSessionService.On("SaveDraft", "user123", mock.AnythingOfType("session.Draft")).Return(nil, false, session.ErrNotFound)

		body, _ := json.Marshal(session.Draft{ID: NiceSessionID, Title: "t", Content: "c"})
		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodPost, "/api/my-sessions/save-draft", bytes.NewReader(body)))
		w := httptest.NewRecorder()

		handler.SaveDraft(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPublish(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodPost, "/api/my-sessions/publish", bytes.NewBufferString(`{}`)))
		w := httptest.NewRecorder()

		handler.Publish(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		defer resetMock(mockSessionService)

		published := &session.Session{ID: NiceSessionID, OwnerID: "user123", Status: session.StatusPublished}
		mockSessionService.On("Publish", "user123", NiceSessionID).Return(published, nil)

		body := bytes.NewBufferString(`{"id":"` + NiceSessionID + `"}`)
		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodPost, "/api/my-sessions/publish", body))
		w := httptest.NewRecorder()

		handler.Publish(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), session.StatusPublished)
		mockSessionService.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		defer resetMock(mockSessionService)

		mockSessionService.On("Publish", "user123", NiceSessionID).Return(nil, session.ErrNotFound)

		body := bytes.NewBufferString(`{"id":"` + NiceSessionID + `"}`)
		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodPost, "/api/my-sessions/publish", body))
		w := httptest.NewRecorder()

		handler.Publish(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		defer resetMock(mockSessionService)

		mockSessionService.On("Delete", "user123", NiceSessionID).Return(nil)

		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodDelete, "/api/my-sessions/"+NiceSessionID, nil))
		r = mux.SetURLVars(r, defaultID)
		w := httptest.NewRecorder()

		handler.DeleteSession(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "deleted successfully")
		mockSessionService.AssertExpectations(t)
	})

	t.Run("not owned", func(t *testing.T) {
		defer resetMock(mockSessionService)

		mockSessionService.On("Delete", "user123", NiceSessionID).Return(session.ErrNotFound)

		r := SetDefaultUserClaims(httptest.NewRequest(http.MethodDelete, "/api/my-sessions/"+NiceSessionID, nil))
		r = mux.SetURLVars(r, defaultID)
		w := httptest.NewRecorder()

		handler.DeleteSession(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
