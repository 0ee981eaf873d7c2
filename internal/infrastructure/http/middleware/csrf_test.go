package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lucasmrdev/meeting-planner/internal/infrastructure/cache"
)

func newTestManager() *TokenManager {
	return NewTokenManager(cache.NewMemoryStore())
}

func performRequest(t *testing.T, tm *TokenManager, method, token string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/v1/meetings", nil)
	if token != "" {
		req.Header.Set(HeaderCSRFToken, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := EchoCSRF(tm)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestEchoCSRF_AllowsSafeMethodsWithoutToken(t *testing.T) {
	tm := newTestManager()

	rec := performRequest(t, tm, http.MethodGet, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected GET to pass without token, got %d", rec.Code)
	}
}

func TestEchoCSRF_RejectsMutationWithoutToken(t *testing.T) {
	tm := newTestManager()

	rec := performRequest(t, tm, http.MethodPatch, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", rec.Code)
	}
}

func TestEchoCSRF_RejectsUnknownToken(t *testing.T) {
	tm := newTestManager()

	rec := performRequest(t, tm, http.MethodPost, "never-issued")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown token, got %d", rec.Code)
	}
}

func TestEchoCSRF_AcceptsIssuedTokenRepeatedly(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	// Tokens stay valid until expiry so retry loops can resubmit.
	for i := 0; i < 3; i++ {
		rec := performRequest(t, tm, http.MethodPatch, token)
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200 with issued token, got %d", i+1, rec.Code)
		}
	}
}

func TestEchoCSRF_RejectsRevokedToken(t *testing.T) {
	tm := newTestManager()

	token, err := tm.GenerateToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	tm.RevokeToken(token)

	rec := performRequest(t, tm, http.MethodDelete, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 after revocation, got %d", rec.Code)
	}
}
