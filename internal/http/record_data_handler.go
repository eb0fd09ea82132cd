package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

// RecordDataHandler serves read access to the record index of any registered table
type RecordDataHandler struct {
	recordService domain.RecordDataServiceInterface
	logger        logger.Logger
}

func NewRecordDataHandler(recordService domain.RecordDataServiceInterface, logger logger.Logger) *RecordDataHandler {
	return &RecordDataHandler{recordService: recordService, logger: logger}
}

func (h *RecordDataHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/api/data/{table}", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", h.List)
		r.Get("/{id}", h.Retrieve)
	})
}

func (h *RecordDataHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	hits, err := h.recordService.List(r.Context(), chi.URLParam(r, "table"), page)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, hits)
}

func (h *RecordDataHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	hits, err := h.recordService.Retrieve(r.Context(), chi.URLParam(r, "table"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, hits)
}
