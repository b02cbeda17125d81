// Package session implements the single-credential admin gate backed by
// signed session tokens.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bangre/mediatheque/internal/models"
)

// CookieName is the cookie carrying the admin session token.
const CookieName = "admin_session"

// Service authenticates the shared admin credential and issues the signed
// tokens that carry the is-admin flag across requests.
type Service struct {
	password string
	secret   string
	ttl      time.Duration
}

// NewService creates a session service for the configured admin password,
// signing secret and token lifetime
func NewService(password, secret string, ttl time.Duration) *Service {
	return &Service{
		password: password,
		secret:   secret,
		ttl:      ttl,
	}
}

// Authenticate compares the supplied password against the configured one and
// returns a signed session token on match. There is a single shared
// credential and a single role, so the compare is a plain string match and
// the failure carries no detail.
func (s *Service) Authenticate(password string) (string, error) {
	if password != s.password {
		return "", models.ErrAuthFailure
	}
	return s.generateToken()
}

// generateToken creates a session token with the admin flag in the payload
func (s *Service) generateToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin": true,
		"type":  "session",
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// IsAuthenticated reports whether tokenString is a valid admin session token
func (s *Service) IsAuthenticated(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	// Check token type
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "session" {
		return false
	}

	isAdmin, ok := claims["admin"].(bool)
	return ok && isAdmin
}

// SetCookie attaches the session token to the response as an HTTP-only
// cookie. Secure is left unset so the gate keeps working on the plain-HTTP
// deployments this service has always run behind.
func (s *Service) SetCookie(w http.ResponseWriter, token string) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}

// ClearCookie expires the session cookie, which is all logout has to do
// since tokens carry no server-side state
func (s *Service) ClearCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
}
