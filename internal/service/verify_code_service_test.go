package service

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/internal/domain/mocks"
)

// memoryVerifyCodes keeps at most one code per user like the unique user_id column
type memoryVerifyCodes struct {
	mu    sync.Mutex
	codes map[string]domain.VerifyCode
}

func newMemoryVerifyCodes() *memoryVerifyCodes {
	return &memoryVerifyCodes{codes: make(map[string]domain.VerifyCode)}
}

func (r *memoryVerifyCodes) GetByUserID(ctx context.Context, userID string) (*domain.VerifyCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	code, ok := r.codes[userID]
	if !ok {
		return nil, &domain.ErrNotFound{Entity: "verify code", ID: userID}
	}
	return &code, nil
}

func (r *memoryVerifyCodes) Create(ctx context.Context, code *domain.VerifyCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.codes[code.UserID]; ok {
		return &domain.ErrConflict{Message: "pending"}
	}
	r.codes[code.UserID] = *code
	return nil
}

func (r *memoryVerifyCodes) DeleteByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.codes, userID)
	return nil
}

type stepClock struct {
	at time.Time
}

func (c *stepClock) now() time.Time { return c.at }

func (c *stepClock) advance(d time.Duration) { c.at = c.at.Add(d) }

func setupVerifyCodeTest(t *testing.T) (*memoryVerifyCodes, *mocks.MockMailer, *stepClock, *VerifyCodeService) {
	ctrl := gomock.NewController(t)
	repo := newMemoryVerifyCodes()
	mailer := mocks.NewMockMailer(ctrl)
	clock := &stepClock{at: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	svc := NewVerifyCodeService(VerifyCodeServiceConfig{
		Repository: repo,
		Mailer:     mailer,
		MaxAge:     5 * time.Minute,
		Logger:     newMockLogger(ctrl),
	})
	svc.now = clock.now
	return repo, mailer, clock, svc
}

func TestVerifyCodeService_Send(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "u1", Username: "jane", Email: "jane@example.com"}

	t.Run("sends a six digit code and masks the email", func(t *testing.T) {
		repo, mailer, _, svc := setupVerifyCodeTest(t)

		var sent string
		mailer.EXPECT().SendVerifyCode("jane@example.com", gomock.Any()).
			DoAndReturn(func(email, code string) error {
				sent = code
				return nil
			})

		result, err := svc.Send(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "j***@example.com", result.Email)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), sent)

		stored, err := repo.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, sent, stored.Code)
	})

	t.Run("second request within 60 seconds fails, later succeeds and replaces", func(t *testing.T) {
		repo, mailer, clock, svc := setupVerifyCodeTest(t)

		var codes []string
		mailer.EXPECT().SendVerifyCode(gomock.Any(), gomock.Any()).
			DoAndReturn(func(email, code string) error {
				codes = append(codes, code)
				return nil
			}).Times(2)

		_, err := svc.Send(ctx, user)
		require.NoError(t, err)
		first, _ := repo.GetByUserID(ctx, "u1")

		clock.advance(30 * time.Second)
		_, err = svc.Send(ctx, user)
		var limited *domain.ErrRateLimited
		require.True(t, errors.As(err, &limited))
		assert.Equal(t, 30, limited.RetryAfter)

		clock.advance(31 * time.Second)
		_, err = svc.Send(ctx, user)
		require.NoError(t, err)

		second, err := repo.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, second.CreatedAt.After(first.CreatedAt))
		assert.Equal(t, codes[1], second.Code)
	})

	t.Run("mail failure persists nothing", func(t *testing.T) {
		repo, mailer, _, svc := setupVerifyCodeTest(t)
		mailer.EXPECT().SendVerifyCode(gomock.Any(), gomock.Any()).Return(errors.New("smtp: connection refused"))

		_, err := svc.Send(ctx, user)
		var upstream *domain.ErrUpstream
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, "send failed, please try again later", upstream.Message)

		_, err = repo.GetByUserID(ctx, "u1")
		var notFound *domain.ErrNotFound
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("user without email", func(t *testing.T) {
		_, _, _, svc := setupVerifyCodeTest(t)

		_, err := svc.Send(ctx, &domain.User{ID: "u2"})
		var validation domain.ValidationError
		assert.True(t, errors.As(err, &validation))
	})
}

func TestVerifyCodeService_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("matching code", func(t *testing.T) {
		repo, _, clock, svc := setupVerifyCodeTest(t)
		require.NoError(t, repo.Create(ctx, &domain.VerifyCode{UserID: "u1", Code: "123456", CreatedAt: clock.at}))

		clock.advance(time.Minute)
		assert.NoError(t, svc.Verify(ctx, "u1", "123456"))
	})

	t.Run("wrong code", func(t *testing.T) {
		repo, _, clock, svc := setupVerifyCodeTest(t)
		require.NoError(t, repo.Create(ctx, &domain.VerifyCode{UserID: "u1", Code: "123456", CreatedAt: clock.at}))

		assert.Equal(t, errInvalidVerifyCode, svc.Verify(ctx, "u1", "654321"))
	})

	t.Run("expired code", func(t *testing.T) {
		repo, _, clock, svc := setupVerifyCodeTest(t)
		require.NoError(t, repo.Create(ctx, &domain.VerifyCode{UserID: "u1", Code: "123456", CreatedAt: clock.at}))

		clock.advance(5*time.Minute + time.Second)
		assert.Equal(t, errInvalidVerifyCode, svc.Verify(ctx, "u1", "123456"))
	})

	t.Run("no pending code", func(t *testing.T) {
		_, _, _, svc := setupVerifyCodeTest(t)
		assert.Equal(t, errInvalidVerifyCode, svc.Verify(ctx, "u1", "123456"))
	})

	t.Run("consume removes the code", func(t *testing.T) {
		repo, _, clock, svc := setupVerifyCodeTest(t)
		require.NoError(t, repo.Create(ctx, &domain.VerifyCode{UserID: "u1", Code: "123456", CreatedAt: clock.at}))

		require.NoError(t, svc.Consume(ctx, "u1"))
		_, err := repo.GetByUserID(ctx, "u1")
		assert.Error(t, err)
	})
}

func TestVerifyCodeService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockVerifyCodeRepository(ctrl)
	mailer := mocks.NewMockMailer(ctrl)

	svc := NewVerifyCodeService(VerifyCodeServiceConfig{
		Repository: repo,
		Mailer:     mailer,
		Logger:     newMockLogger(ctrl),
	})

	dbErr := errors.New("connection reset")

	t.Run("lookup failure on send", func(t *testing.T) {
		repo.EXPECT().GetByUserID(ctx, "u1").Return(nil, dbErr)

		_, err := svc.Send(ctx, &domain.User{ID: "u1", Email: "jane@example.com"})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("lookup failure on verify is not reported as a bad code", func(t *testing.T) {
		repo.EXPECT().GetByUserID(ctx, "u1").Return(nil, dbErr)

		err := svc.Verify(ctx, "u1", "123456")
		assert.ErrorIs(t, err, dbErr)
		assert.NotEqual(t, errInvalidVerifyCode, err)
	})

	t.Run("store failure after mailing", func(t *testing.T) {
		repo.EXPECT().GetByUserID(ctx, "u1").Return(nil, &domain.ErrNotFound{Entity: "verify code", ID: "u1"})
		mailer.EXPECT().SendVerifyCode("jane@example.com", gomock.Any()).Return(nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(dbErr)

		_, err := svc.Send(ctx, &domain.User{ID: "u1", Email: "jane@example.com"})
		assert.ErrorIs(t, err, dbErr)
	})
}
