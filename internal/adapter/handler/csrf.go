package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/infrastructure/http/middleware"
)

// CSRF issues anti-forgery tokens for mutating requests
type CSRF struct {
	tokenManager *middleware.TokenManager
	logger       *zap.Logger
}

// NewCSRFHandler creates a new CSRF handler
func NewCSRFHandler(tokenManager *middleware.TokenManager, logger *zap.Logger) *CSRF {
	return &CSRF{
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Token handles GET /csrf, issuing a fresh anti-forgery token
func (h *CSRF) Token(c echo.Context) error {
	token, err := h.tokenManager.GenerateToken()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	return HandleSuccess(h.logger, c, map[string]string{"csrf_token": token})
}
