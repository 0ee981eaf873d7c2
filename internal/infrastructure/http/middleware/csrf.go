package middleware

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HeaderCSRFToken is the request header carrying the anti-forgery token.
const HeaderCSRFToken = "X-CSRF-Token"

// Store interface for token storage
type Store interface {
	Set(key string, value string, expiration time.Duration)
	Get(key string) (string, bool)
	Delete(key string)
}

// TokenManager manages anti-forgery tokens. Tokens are random, stored
// server-side and reusable until expiry, so client-side retry loops can
// resubmit with the same token.
type TokenManager struct {
	store      Store
	expiration time.Duration
}

// NewTokenManager creates a new token manager
func NewTokenManager(store Store) *TokenManager {
	return &TokenManager{
		store:      store,
		expiration: 12 * time.Hour,
	}
}

// GenerateToken generates a random token and stores it
func (tm *TokenManager) GenerateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	token := base64.URLEncoding.EncodeToString(b)

	key := fmt.Sprintf("csrf:token:%s", token)
	tm.store.Set(key, "valid", tm.expiration)

	return token, nil
}

// ValidateToken checks whether the token was issued and has not expired
func (tm *TokenManager) ValidateToken(token string) bool {
	if token == "" {
		return false
	}
	key := fmt.Sprintf("csrf:token:%s", token)
	value, exists := tm.store.Get(key)
	return exists && value == "valid"
}

// RevokeToken drops a token before its natural expiry
func (tm *TokenManager) RevokeToken(token string) {
	tm.store.Delete(fmt.Sprintf("csrf:token:%s", token))
}

// EchoCSRF returns an Echo middleware that requires a valid anti-forgery
// token on every mutating request. Safe methods pass through.
func EchoCSRF(tm *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			token := c.Request().Header.Get(HeaderCSRFToken)
			if !tm.ValidateToken(token) {
				return echo.NewHTTPError(http.StatusForbidden, "Missing or invalid anti-forgery token")
			}

			return next(c)
		}
	}
}
