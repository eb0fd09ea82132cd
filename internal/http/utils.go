package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/logger"
)

// WriteJSONError writes {"error": message} with the given status code
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps domain errors to HTTP status codes. Unknown errors are logged and hidden.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	var (
		validation   domain.ValidationError
		conflict     *domain.ErrConflict
		notFound     *domain.ErrNotFound
		permission   *domain.PermissionError
		unauthorized *domain.ErrUnauthorized
		rateLimited  *domain.ErrRateLimited
		upstream     *domain.ErrUpstream
	)

	switch {
	case errors.As(err, &validation):
		WriteJSONError(w, validation.Message, http.StatusBadRequest)
	case errors.As(err, &conflict):
		WriteJSONError(w, conflict.Message, http.StatusConflict)
	case errors.As(err, &notFound):
		WriteJSONError(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &permission):
		WriteJSONError(w, permission.Message, http.StatusForbidden)
	case errors.As(err, &unauthorized):
		WriteJSONError(w, unauthorized.Message, http.StatusUnauthorized)
	case errors.As(err, &rateLimited):
		if rateLimited.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(rateLimited.RetryAfter))
		}
		WriteJSONError(w, rateLimited.Message, http.StatusTooManyRequests)
	case errors.As(err, &upstream):
		log.WithField("error", err.Error()).Warn("Upstream call failed")
		WriteJSONError(w, upstream.Message, http.StatusBadGateway)
	default:
		log.WithField("error", err.Error()).Error("Unhandled service error")
		WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	return nil
}

// detail is the body of action endpoints that only report success
type detail struct {
	Detail string `json:"detail"`
}

// pageParams reads page and page_size from the query string
func pageParams(r *http.Request) (domain.PageParams, error) {
	var params domain.PageParams
	query := r.URL.Query()

	for key, dst := range map[string]*int{"page": &params.Page, "page_size": &params.PageSize} {
		raw := query.Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return params, domain.NewValidationError(key + " must be a positive integer")
		}
		*dst = n
	}
	params = params.Normalize()
	if !params.InWindow() {
		return params, domain.NewValidationError(fmt.Sprintf("page must be at most %d for page_size %d", params.MaxPage(), params.PageSize))
	}
	return params, nil
}

// paginatedResponse is the envelope of every list endpoint
type paginatedResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

func newPaginatedResponse(r *http.Request, params domain.PageParams, count int, results interface{}) paginatedResponse {
	resp := paginatedResponse{Count: count, Results: results}
	if params.Page*params.PageSize < count {
		next := pageURL(r, params.Page+1)
		resp.Next = &next
	}
	if params.Page > 1 {
		prev := pageURL(r, params.Page-1)
		resp.Previous = &prev
	}
	return resp
}

func pageURL(r *http.Request, page int) string {
	u := url.URL{Scheme: "http", Host: r.Host, Path: r.URL.Path}
	if r.TLS != nil {
		u.Scheme = "https"
	}
	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()
	return u.String()
}
