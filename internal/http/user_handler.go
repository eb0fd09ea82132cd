package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

const passwordChanged = "Successfully modified!"

type UserHandler struct {
	userService domain.UserServiceInterface
	logger      logger.Logger
}

func NewUserHandler(userService domain.UserServiceInterface, logger logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// RegisterRoutes mounts the user routes. requireAuth guards every route except the email reset flow.
func (h *UserHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/send-verify-code", h.SendVerifyCode)
		r.Post("/reset-password-email", h.ResetPasswordEmail)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/get-my-info", h.GetMyInfo)
			r.Post("/change-password", h.ChangePassword)
			r.Post("/reset-password-admin", h.ResetPasswordAdmin)
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Patch("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

func callerFrom(r *http.Request) *domain.User {
	user, _ := domain.UserFromContext(r.Context())
	return user
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	users, total, err := h.userService.List(r.Context(), callerFrom(r), domain.UserListParams{
		Search:     r.URL.Query().Get("search"),
		PageParams: page,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newPaginatedResponse(r, page, total, users))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), callerFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	caller := callerFrom(r)
	if caller == nil {
		WriteJSONError(w, "authentication required", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, caller)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateUserInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	user, err := h.userService.Create(r.Context(), callerFrom(r), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Update serves PUT and PATCH. PATCH leaves absent fields untouched.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.UpdateUserInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	partial := r.Method == http.MethodPatch
	user, err := h.userService.Update(r.Context(), callerFrom(r), chi.URLParam(r, "id"), input, partial)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), callerFrom(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var input domain.ChangePasswordInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), callerFrom(r), input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail{Detail: passwordChanged})
}

func (h *UserHandler) ResetPasswordAdmin(w http.ResponseWriter, r *http.Request) {
	var input domain.AdminResetPasswordInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := h.userService.AdminResetPassword(r.Context(), callerFrom(r), input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail{Detail: passwordChanged})
}

func (h *UserHandler) SendVerifyCode(w http.ResponseWriter, r *http.Request) {
	var input domain.SendVerifyCodeInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	result, err := h.userService.SendVerifyCode(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) ResetPasswordEmail(w http.ResponseWriter, r *http.Request) {
	var input domain.EmailResetPasswordInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := h.userService.EmailResetPassword(r.Context(), input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detail{Detail: passwordChanged})
}
