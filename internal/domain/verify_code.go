package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_verify_code_repository.go -package mocks github.com/recordhub/recordhub/internal/domain VerifyCodeRepository

// VerifyCodeResendInterval is the minimum time between two codes for one user
const VerifyCodeResendInterval = 60 * time.Second

// VerifyCode is the pending password reset code of a user. At most one exists per user.
type VerifyCode struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Code      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TooSoonToResend reports whether a new code may not be issued yet
func (c *VerifyCode) TooSoonToResend(now time.Time) bool {
	return now.Sub(c.CreatedAt) < VerifyCodeResendInterval
}

// RetryAfter is the whole seconds left until a resend is allowed
func (c *VerifyCode) RetryAfter(now time.Time) int {
	left := VerifyCodeResendInterval - now.Sub(c.CreatedAt)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

func (c *VerifyCode) IsExpired(now time.Time, maxAge time.Duration) bool {
	return now.Sub(c.CreatedAt) > maxAge
}

type VerifyCodeRepository interface {
	// GetByUserID returns ErrNotFound when the user has no pending code
	GetByUserID(ctx context.Context, userID string) (*VerifyCode, error)
	Create(ctx context.Context, code *VerifyCode) error
	DeleteByUserID(ctx context.Context, userID string) error
}
