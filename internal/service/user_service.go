package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/pkg/crypto"
	"github.com/recordhub/recordhub/pkg/logger"
	"github.com/recordhub/recordhub/pkg/ratelimiter"
	"github.com/recordhub/recordhub/pkg/tracing"
)

var (
	errSuperuserDelete  = domain.NewPermissionError("Super user can not delete")
	errPrivilegedFields = domain.NewPermissionError("Only admin users can change is_superuser or is_active")
)

type UserService struct {
	repo        domain.UserRepository
	verifyCodes *VerifyCodeService
	limiter     *ratelimiter.RateLimiter
	logger      logger.Logger
	tracer      tracing.Tracer
}

type UserServiceConfig struct {
	Repository        domain.UserRepository
	VerifyCodeService *VerifyCodeService
	// RateLimiter throttles email password resets per username
	RateLimiter *ratelimiter.RateLimiter
	Logger      logger.Logger
	Tracer      tracing.Tracer
}

func NewUserService(cfg UserServiceConfig) *UserService {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.GetTracer()
	}
	return &UserService{
		repo:        cfg.Repository,
		verifyCodes: cfg.VerifyCodeService,
		limiter:     cfg.RateLimiter,
		logger:      cfg.Logger,
		tracer:      tracer,
	}
}

var _ domain.UserServiceInterface = (*UserService)(nil)

func isSuperuser(u *domain.User) bool {
	return u != nil && u.IsSuperuser
}

func (s *UserService) List(ctx context.Context, caller *domain.User, params domain.UserListParams) ([]*domain.User, int, error) {
	if !domain.IsAdminCreate(caller, domain.ActionList) {
		return nil, 0, domain.ErrInsufficientPermissions
	}
	return s.repo.ListUsers(ctx, params)
}

func (s *UserService) Get(ctx context.Context, caller *domain.User, id string) (*domain.User, error) {
	if !domain.IsAdminCreate(caller, domain.ActionRetrieve) {
		return nil, domain.ErrInsufficientPermissions
	}
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, caller *domain.User, input domain.CreateUserInput) (*domain.User, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "Create")
	defer span.End()

	if !domain.IsAdminCreate(caller, domain.ActionCreate) {
		return nil, domain.ErrInsufficientPermissions
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsSuperuser:  input.IsSuperuser,
		IsActive:     input.IsActive == nil || *input.IsActive,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).WithField("created_by", caller.ID).Info("User created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, caller *domain.User, id string, input domain.UpdateUserInput, partial bool) (*domain.User, error) {
	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.IsAdminOrSelfChange(caller, target, domain.ActionUpdate) {
		return nil, domain.ErrInsufficientPermissions
	}
	if input.TouchesPrivileges() && !isSuperuser(caller) {
		return nil, errPrivilegedFields
	}

	updated := *target
	if err := input.Apply(&updated, partial); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateUser(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user. Superusers can never be deleted through the API.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, id string) error {
	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if target.IsSuperuser {
		return errSuperuserDelete
	}
	if !domain.IsAdminOrSelfChange(caller, target, domain.ActionDestroy) {
		return domain.ErrInsufficientPermissions
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	// verify_codes has no foreign key to users
	if err := s.verifyCodes.Consume(ctx, id); err != nil {
		s.logger.WithField("user_id", id).WithField("error", err.Error()).Warn("Failed to remove verify code of deleted user")
	}

	s.logger.WithField("user_id", id).WithField("deleted_by", caller.ID).Info("User deleted")
	return nil
}

func (s *UserService) ChangePassword(ctx context.Context, caller *domain.User, input domain.ChangePasswordInput) error {
	if caller == nil {
		return &domain.ErrUnauthorized{Message: "authentication required"}
	}

	user, err := s.repo.GetUserByID(ctx, caller.ID)
	if err != nil {
		return err
	}
	if !crypto.CheckPasswordHash(input.OldPassword, user.PasswordHash) {
		return domain.NewValidationError("old password is incorrect")
	}

	return s.setPassword(ctx, user, input.NewPassword)
}

// AdminResetPassword sets the password of the named user
func (s *UserService) AdminResetPassword(ctx context.Context, caller *domain.User, input domain.AdminResetPasswordInput) error {
	if !isSuperuser(caller) {
		return domain.ErrInsufficientPermissions
	}
	if input.Username == "" {
		return domain.NewValidationError("username is required")
	}

	user, err := s.repo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	if err := s.setPassword(ctx, user, input.NewPassword); err != nil {
		return err
	}

	s.logger.WithField("user_id", user.ID).WithField("reset_by", caller.ID).Info("Password reset by admin")
	return nil
}

func (s *UserService) SendVerifyCode(ctx context.Context, input domain.SendVerifyCodeInput) (*domain.SendVerifyCodeResult, error) {
	ctx, span := s.tracer.StartServiceSpan(ctx, "UserService", "SendVerifyCode")
	defer span.End()

	if input.Username == "" {
		return nil, domain.NewValidationError("username is required")
	}

	user, err := s.repo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	result, err := s.verifyCodes.Send(ctx, user)
	if err != nil {
		s.tracer.MarkSpanError(ctx, err)
		return nil, err
	}
	return result, nil
}

func (s *UserService) EmailResetPassword(ctx context.Context, input domain.EmailResetPasswordInput) error {
	if input.Username == "" || input.Code == "" {
		return domain.NewValidationError("username and code are required")
	}

	if s.limiter != nil && !s.limiter.Allow(ResetNamespace, input.Username) {
		s.logger.WithField("username", input.Username).Warn("Password reset rate limit exceeded")
		return &domain.ErrRateLimited{
			Message:    "too many reset attempts, please try again in a few minutes",
			RetryAfter: s.limiter.RetryAfter(ResetNamespace, input.Username),
		}
	}

	user, err := s.repo.GetUserByUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	if err := s.verifyCodes.Verify(ctx, user.ID, input.Code); err != nil {
		return err
	}
	if err := s.setPassword(ctx, user, input.NewPassword); err != nil {
		return err
	}
	if err := s.verifyCodes.Consume(ctx, user.ID); err != nil {
		return fmt.Errorf("password changed but code was not cleared: %w", err)
	}

	if s.limiter != nil {
		s.limiter.Reset(ResetNamespace, input.Username)
	}
	s.logger.WithField("user_id", user.ID).Info("Password reset by email code")
	return nil
}

func (s *UserService) setPassword(ctx context.Context, user *domain.User, password string) error {
	if err := domain.ValidatePassword(password, user.Username); err != nil {
		return err
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.ID, hash)
}
