package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/crypto"
	"github.com/recordhub/recordhub/pkg/logger"
	"github.com/recordhub/recordhub/pkg/ratelimiter"
	"github.com/recordhub/recordhub/pkg/tracing"
)

// Rate limiter namespaces
const (
	SignInNamespace = "signin"
	ResetNamespace  = "reset"
)

const defaultSessionExpiry = 24 * time.Hour

var (
	errInvalidCredentials = &domain.ErrUnauthorized{Message: "invalid username or password"}
	errInvalidToken       = &domain.ErrUnauthorized{Message: "invalid or expired token"}
	errInactiveUser       = &domain.ErrUnauthorized{Message: "user account is disabled"}
)

type AuthService struct {
	repo          domain.UserRepository
	logger        logger.Logger
	tracer        tracing.Tracer
	limiter       *ratelimiter.RateLimiter
	privateKey    paseto.V4AsymmetricSecretKey
	publicKey     paseto.V4AsymmetricPublicKey
	sessionExpiry time.Duration
	now           func() time.Time
}

type AuthServiceConfig struct {
	Repository    domain.UserRepository
	PrivateKey    []byte
	PublicKey     []byte
	SessionExpiry time.Duration
	RateLimiter   *ratelimiter.RateLimiter
	Logger        logger.Logger
	Tracer        tracing.Tracer
}

func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	privateKey, err := paseto.NewV4AsymmetricSecretKeyFromBytes(cfg.PrivateKey)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.WithField("error", err.Error()).Error("Error creating PASETO private key")
		}
		return nil, err
	}

	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromBytes(cfg.PublicKey)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.WithField("error", err.Error()).Error("Error creating PASETO public key")
		}
		return nil, err
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}

	expiry := cfg.SessionExpiry
	if expiry <= 0 {
		expiry = defaultSessionExpiry
	}

	return &AuthService{
		repo:          cfg.Repository,
		logger:        cfg.Logger,
		tracer:        tracer,
		limiter:       cfg.RateLimiter,
		privateKey:    privateKey,
		publicKey:     publicKey,
		sessionExpiry: expiry,
		now:           time.Now,
	}, nil
}

var _ domain.AuthServiceInterface = (*AuthService)(nil)

// Login checks the credentials and signs a session token
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResponse, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "AuthService", "Login")
	defer span.End()

	s.tracer.AddAttribute(ctx, "user.username", input.Username)

	if input.Username == "" || input.Password == "" {
		return nil, domain.NewValidationError("username and password are required")
	}

	if s.limiter != nil && !s.limiter.Allow(SignInNamespace, input.Username) {
		s.logger.WithField("username", input.Username).Warn("Sign-in rate limit exceeded")
		err := &domain.ErrRateLimited{
			Message:    "too many sign-in attempts, please try again in a few minutes",
			RetryAfter: s.limiter.RetryAfter(SignInNamespace, input.Username),
		}
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	user, err := s.repo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, errInvalidCredentials
		}
		s.logger.WithField("username", input.Username).WithField("error", err.Error()).Error("Failed to load user for login")
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(input.Password, user.PasswordHash) {
		s.logger.WithField("user_id", user.ID).Warn("Login with wrong password")
		return nil, errInvalidCredentials
	}
	if !user.IsActive {
		return nil, errInactiveUser
	}

	if s.limiter != nil {
		s.limiter.Reset(SignInNamespace, input.Username)
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.WithField("user_id", user.ID).WithField("error", err.Error()).Warn("Failed to update last login")
	} else {
		user.LastLogin = &now
	}

	expiresAt := now.Add(s.sessionExpiry)
	token := s.GenerateUserAuthToken(user, now, expiresAt)
	if token == "" {
		return nil, fmt.Errorf("failed to sign authentication token")
	}

	s.logger.WithField("user_id", user.ID).Info("User logged in")

	return &domain.AuthResponse{
		Token:     token,
		User:      *user,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateUserAuthToken signs a PASETO v4 public token for user
func (s *AuthService) GenerateUserAuthToken(user *domain.User, issuedAt, expiresAt time.Time) string {
	token := paseto.NewToken()
	token.SetIssuedAt(issuedAt)
	token.SetNotBefore(issuedAt)
	token.SetExpiration(expiresAt)
	token.SetString("user_id", user.ID)
	token.SetString("username", user.Username)

	signed := token.V4Sign(s.privateKey, nil)
	if signed == "" {
		s.logger.WithField("user_id", user.ID).Error("Failed to sign authentication token")
	}
	return signed
}

// Authenticate verifies token and returns its user, who must still be active
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, errInvalidToken
	}

	parser := paseto.NewParser()
	parsed, err := parser.ParseV4Public(s.publicKey, token, nil)
	if err != nil {
		s.logger.WithField("error", err.Error()).Debug("Rejected authentication token")
		return nil, errInvalidToken
	}

	userID, err := parsed.GetString("user_id")
	if err != nil || userID == "" {
		return nil, errInvalidToken
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		var notFound *domain.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, errInvalidToken
		}
		s.logger.WithField("user_id", userID).WithField("error", err.Error()).Error("Failed to load authenticated user")
		return nil, err
	}
	if !user.IsActive {
		return nil, errInactiveUser
	}
	return user, nil
}
