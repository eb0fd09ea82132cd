package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

type AuthHandler struct {
	authService domain.AuthServiceInterface
	logger      logger.Logger
}

func NewAuthHandler(authService domain.AuthServiceInterface, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/auth/login", h.Login)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	resp, err := h.authService.Login(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
