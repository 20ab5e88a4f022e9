package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/movie-recommender/internal/config"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "movierec_session"

// SessionClaims represents JWT claims with the browsing session ID.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionService issues and validates signed session cookies. Sessions are
// anonymous: the ID only serves to bind recommendation result tokens to a
// browser.
type SessionService struct {
	config *config.SessionConfig
}

// NewSessionService creates a session service with the given configuration.
func NewSessionService(cfg *config.SessionConfig) *SessionService {
	return &SessionService{config: cfg}
}

// Issue generates a new session ID and a signed token for it.
func (s *SessionService) Issue() (sessionID, token string, err error) {
	sessionID = uuid.New().String()

	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.ExpirationHours) * time.Hour)

	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return sessionID, signed, nil
}

// Validate parses a signed token and returns the session ID.
func (s *SessionService) Validate(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("token string is empty")
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}
	if !parsed.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("session token is not valid")
	}

	return claims.SessionID, nil
}

// SessionFromRequest returns the session ID from the request cookie, or an
// error if the cookie is missing or invalid.
func (s *SessionService) SessionFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", fmt.Errorf("no session cookie: %w", err)
	}
	return s.Validate(cookie.Value)
}

// EnsureSession returns the request's session ID, creating a new session and
// setting its cookie when the request carries none (or an invalid one).
func (s *SessionService) EnsureSession(w http.ResponseWriter, r *http.Request) (string, error) {
	if sessionID, err := s.SessionFromRequest(r); err == nil {
		return sessionID, nil
	}

	sessionID, token, err := s.Issue()
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   s.config.ExpirationHours * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID, nil
}
