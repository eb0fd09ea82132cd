package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/internal/domain/mocks"
	"github.com/recordhub/recordhub/pkg/logger"
)

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mocks.NewMockAuthServiceInterface(ctrl)

	var seen *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = domain.UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuth(authSvc, logger.NewTestLogger(t))(next)

	serve := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token", func(t *testing.T) {
		user := &domain.User{ID: "u1", Username: "jane", IsActive: true}
		authSvc.EXPECT().Authenticate(gomock.Any(), "good-token").Return(user, nil)

		rec := serve("Bearer good-token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "u1", seen.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := serve("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Authorization header is required"}`, rec.Body.String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := serve("Basic abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		authSvc.EXPECT().Authenticate(gomock.Any(), "bad").
			Return(nil, &domain.ErrUnauthorized{Message: "invalid or expired token"})

		rec := serve("Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
	})

	t.Run("lookup failure", func(t *testing.T) {
		authSvc.EXPECT().Authenticate(gomock.Any(), "tok").Return(nil, errors.New("db down"))

		rec := serve("Bearer tok")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
