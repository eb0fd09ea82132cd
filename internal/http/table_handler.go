package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

type TableHandler struct {
	tableService domain.TableServiceInterface
	logger       logger.Logger
}

func NewTableHandler(tableService domain.TableServiceInterface, logger logger.Logger) *TableHandler {
	return &TableHandler{tableService: tableService, logger: logger}
}

func (h *TableHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/tables", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	tables, total, err := h.tableService.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newPaginatedResponse(r, page, total, tables))
}

func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	table, err := h.tableService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateTableInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	table, err := h.tableService.Create(r.Context(), callerFrom(r), input)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *TableHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.UpdateTableInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	partial := r.Method == http.MethodPatch
	table, err := h.tableService.Update(r.Context(), callerFrom(r), chi.URLParam(r, "id"), input, partial)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tableService.Delete(r.Context(), callerFrom(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
