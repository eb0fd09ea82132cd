package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recordhub/recordhub/internal/domain"
)

type verifyCodeRepository struct {
	systemDB *sql.DB
}

func NewVerifyCodeRepository(db *sql.DB) domain.VerifyCodeRepository {
	return &verifyCodeRepository{systemDB: db}
}

func (r *verifyCodeRepository) GetByUserID(ctx context.Context, userID string) (*domain.VerifyCode, error) {
	var code domain.VerifyCode
	query := `SELECT id, user_id, code, created_at FROM verify_codes WHERE user_id = $1`
	err := r.systemDB.QueryRowContext(ctx, query, userID).Scan(&code.ID, &code.UserID, &code.Code, &code.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "verify code", ID: userID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verify code: %w", err)
	}
	return &code, nil
}

// Create stores code. A concurrent insert for the same user surfaces as ErrConflict.
func (r *verifyCodeRepository) Create(ctx context.Context, code *domain.VerifyCode) error {
	if code.ID == "" {
		code.ID = uuid.New().String()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO verify_codes (id, user_id, code, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.systemDB.ExecContext(ctx, query, code.ID, code.UserID, code.Code, code.CreatedAt)
	if isUniqueViolation(err) {
		return &domain.ErrConflict{Message: "a verification code is already pending for this user"}
	}
	if err != nil {
		return fmt.Errorf("failed to create verify code: %w", err)
	}
	return nil
}

func (r *verifyCodeRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.systemDB.ExecContext(ctx, `DELETE FROM verify_codes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete verify code: %w", err)
	}
	return nil
}
