package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ranktree/ranking"
)

func TestRegisterAndGetPlayer(t *testing.T) {
	svc := ranking.New()
	s := New(svc)

	req := httptest.NewRequest(http.MethodPost, "/players/alice", bytes.NewBufferString(`{"rating":1200}`))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/players/alice", nil)
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"alice","rating":1200,"rank":1}`, w.Body.String())
}

func TestGetUnknownPlayerReturns404(t *testing.T) {
	svc := ranking.New()
	s := New(svc)

	req := httptest.NewRequest(http.MethodGet, "/players/ghost", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnregisterPlayer(t *testing.T) {
	svc := ranking.New()
	s := New(svc)
	svc.RegisterPlayerResult("alice", 1200)

	req := httptest.NewRequest(http.MethodDelete, "/players/alice", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, -1, svc.GetPlayerRating("alice"))
}

func TestRollback(t *testing.T) {
	svc := ranking.New()
	s := New(svc)
	svc.RegisterPlayerResult("alice", 1200)
	svc.RegisterPlayerResult("alice", 1500)

	req := httptest.NewRequest(http.MethodPost, "/rollback/1", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1200, svc.GetPlayerRating("alice"))
}

func TestRollbackRejectsInvalidDelta(t *testing.T) {
	svc := ranking.New()
	s := New(svc)

	req := httptest.NewRequest(http.MethodPost, "/rollback/notanumber", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVersion(t *testing.T) {
	svc := ranking.New()
	s := New(svc)
	svc.RegisterPlayerResult("alice", 1200)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":1}`, w.Body.String())
}

func TestUnknownRouteReturns404(t *testing.T) {
	svc := ranking.New()
	s := New(svc)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecoveryMiddlewareConvertsPanicToInternalServerError(t *testing.T) {
	svc := ranking.New()
	s := New(svc, WithMiddleware(Recovery()))
	s.handle(http.MethodGet, "/boom", "GET /boom", func(c *Context) {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		s.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
