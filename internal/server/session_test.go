package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/movie-recommender/internal/config"
)

func newTestSessionService() *SessionService {
	return NewSessionService(&config.SessionConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestSessionIssueAndValidate(t *testing.T) {
	svc := newTestSessionService()

	sessionID, token, err := svc.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.NotEmpty(t, token)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestSessionValidateRejectsBadTokens(t *testing.T) {
	svc := newTestSessionService()

	_, err := svc.Validate("")
	assert.Error(t, err)

	_, err = svc.Validate("not.a.jwt")
	assert.Error(t, err)

	// Token signed with a different secret.
	other := NewSessionService(&config.SessionConfig{Secret: "other-secret", ExpirationHours: 1})
	_, token, err := other.Issue()
	require.NoError(t, err)
	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestEnsureSessionSetsCookieOnce(t *testing.T) {
	svc := newTestSessionService()

	req := httptest.NewRequest(http.MethodPost, "/recommendations", nil)
	rec := httptest.NewRecorder()

	sessionID, err := svc.EnsureSession(rec, req)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	// A request carrying the cookie keeps its session and gets no new cookie.
	req2 := httptest.NewRequest(http.MethodPost, "/recommendations", nil)
	req2.AddCookie(cookie)
	rec2 := httptest.NewRecorder()

	got, err := svc.EnsureSession(rec2, req2)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
	assert.Empty(t, rec2.Result().Cookies())
}

func TestEnsureSessionReplacesInvalidCookie(t *testing.T) {
	svc := newTestSessionService()

	req := httptest.NewRequest(http.MethodPost, "/recommendations", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tampered"})
	rec := httptest.NewRecorder()

	sessionID, err := svc.EnsureSession(rec, req)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.Len(t, rec.Result().Cookies(), 1, "a fresh cookie replaces the invalid one")
}
