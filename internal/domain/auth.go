package domain

import "context"

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/recordhub/recordhub/internal/domain AuthServiceInterface

type AuthServiceInterface interface {
	// Login checks credentials and issues a signed session token
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)
	// Authenticate verifies a token and returns its active user
	Authenticate(ctx context.Context, token string) (*User, error)
}
