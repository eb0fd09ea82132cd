package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/crypto"
	"github.com/recordhub/recordhub/pkg/logger"
	"github.com/recordhub/recordhub/pkg/mailer"
)

const (
	verifyCodeLength     = 6
	defaultVerifyCodeAge = 300 * time.Second
)

var errInvalidVerifyCode = domain.NewValidationError("invalid or expired verification code")

// VerifyCodeService issues and checks the emailed password reset codes
type VerifyCodeService struct {
	repo   domain.VerifyCodeRepository
	mailer mailer.Mailer
	maxAge time.Duration
	logger logger.Logger
	now    func() time.Time
}

type VerifyCodeServiceConfig struct {
	Repository domain.VerifyCodeRepository
	Mailer     mailer.Mailer
	// MaxAge is how long a code may be redeemed after it was sent
	MaxAge time.Duration
	Logger logger.Logger
}

func NewVerifyCodeService(cfg VerifyCodeServiceConfig) *VerifyCodeService {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = defaultVerifyCodeAge
	}
	return &VerifyCodeService{
		repo:   cfg.Repository,
		mailer: cfg.Mailer,
		maxAge: maxAge,
		logger: cfg.Logger,
		now:    time.Now,
	}
}

// Send emails a fresh code to user, replacing a pending one older than the resend interval
func (s *VerifyCodeService) Send(ctx context.Context, user *domain.User) (*domain.SendVerifyCodeResult, error) {
	if user.Email == "" {
		return nil, domain.NewValidationError("user has no email address")
	}

	now := s.now().UTC()

	existing, err := s.repo.GetByUserID(ctx, user.ID)
	var notFound *domain.ErrNotFound
	switch {
	case err == nil:
		if existing.TooSoonToResend(now) {
			return nil, &domain.ErrRateLimited{
				Message:    "verification code was sent recently, please try again later",
				RetryAfter: existing.RetryAfter(now),
			}
		}
		if err := s.repo.DeleteByUserID(ctx, user.ID); err != nil {
			return nil, err
		}
	case errors.As(err, &notFound):
	default:
		return nil, fmt.Errorf("failed to check pending code: %w", err)
	}

	code, err := crypto.GenerateDigits(verifyCodeLength)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerifyCode(user.Email, code); err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Error("Failed to send verification code")
		return nil, &domain.ErrUpstream{Message: "send failed, please try again later", Err: err}
	}

	if err := s.repo.Create(ctx, &domain.VerifyCode{UserID: user.ID, Code: code, CreatedAt: now}); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("Verification code sent")

	return &domain.SendVerifyCodeResult{
		Detail: "Verification code sent",
		Email:  domain.MaskEmail(user.Email),
	}, nil
}

// Verify checks code against the user's pending code
func (s *VerifyCodeService) Verify(ctx context.Context, userID, code string) error {
	pending, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			return errInvalidVerifyCode
		}
		return fmt.Errorf("failed to load pending code: %w", err)
	}

	if pending.IsExpired(s.now().UTC(), s.maxAge) {
		return errInvalidVerifyCode
	}
	if subtle.ConstantTimeCompare([]byte(pending.Code), []byte(code)) != 1 {
		return errInvalidVerifyCode
	}
	return nil
}

// Consume removes the user's pending code once it has been redeemed
func (s *VerifyCodeService) Consume(ctx context.Context, userID string) error {
	return s.repo.DeleteByUserID(ctx, userID)
}
