package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/recordhub/recordhub/internal/domain UserRepository
//go:generate mockgen -destination mocks/mock_user_service.go -package mocks github.com/recordhub/recordhub/internal/domain UserServiceInterface

type contextKey string

// UserKey stores the authenticated *User in a request context
const UserKey contextKey = "user"

const (
	PasswordMinLength = 8
	PasswordMaxLength = 128
)

// User represents an account. PasswordHash is never serialized.
type User struct {
	ID           string     `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	IsSuperuser  bool       `json:"is_superuser" db:"is_superuser"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	DateJoined   time.Time  `json:"date_joined" db:"date_joined"`
	LastLogin    *time.Time `json:"last_login" db:"last_login"`
}

// WithUser returns a copy of ctx carrying user
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// UserFromContext returns the authenticated user, if any
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(UserKey).(*User)
	return user, ok && user != nil
}

type CreateUserInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsSuperuser bool   `json:"is_superuser"`
	IsActive    *bool  `json:"is_active"`
}

func (i *CreateUserInput) Validate() error {
	if err := validateUsername(i.Username); err != nil {
		return err
	}
	if !govalidator.IsEmail(i.Email) {
		return NewValidationError("email must be a valid email address")
	}
	return ValidatePassword(i.Password, i.Username)
}

// UpdateUserInput carries a full (PUT) or partial (PATCH) change. Nil fields are
// left untouched on PATCH and reset to their zero value on PUT.
type UpdateUserInput struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	IsSuperuser *bool   `json:"is_superuser"`
	IsActive    *bool   `json:"is_active"`
}

// TouchesPrivileges reports whether the input changes role or activation
func (i *UpdateUserInput) TouchesPrivileges() bool {
	return i.IsSuperuser != nil || i.IsActive != nil
}

// Apply copies the input onto user and validates the result
func (i *UpdateUserInput) Apply(user *User, partial bool) error {
	if !partial && (i.Username == nil || i.Email == nil) {
		return NewValidationError("username and email are required")
	}

	if i.Username != nil {
		user.Username = *i.Username
	}
	if i.Email != nil {
		user.Email = *i.Email
	}
	if i.FirstName != nil {
		user.FirstName = *i.FirstName
	} else if !partial {
		user.FirstName = ""
	}
	if i.LastName != nil {
		user.LastName = *i.LastName
	} else if !partial {
		user.LastName = ""
	}
	if i.IsSuperuser != nil {
		user.IsSuperuser = *i.IsSuperuser
	}
	if i.IsActive != nil {
		user.IsActive = *i.IsActive
	}

	if err := validateUsername(user.Username); err != nil {
		return err
	}
	if !govalidator.IsEmail(user.Email) {
		return NewValidationError("email must be a valid email address")
	}
	return nil
}

type UserListParams struct {
	// Search matches username or email, case insensitive
	Search string
	PageParams
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type AdminResetPasswordInput struct {
	Username    string `json:"username"`
	NewPassword string `json:"new_password"`
}

type SendVerifyCodeInput struct {
	Username string `json:"username"`
}

type EmailResetPasswordInput struct {
	Username    string `json:"username"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SendVerifyCodeResult is returned once a reset code has been emailed
type SendVerifyCodeResult struct {
	Detail string `json:"detail"`
	Email  string `json:"email"`
}

// ValidatePassword enforces length bounds and forbids reusing the username
func ValidatePassword(password, username string) error {
	if len(password) < PasswordMinLength {
		return NewValidationError(fmt.Sprintf("password must be at least %d characters", PasswordMinLength))
	}
	if len(password) > PasswordMaxLength {
		return NewValidationError(fmt.Sprintf("password must be at most %d characters", PasswordMaxLength))
	}
	if username != "" && strings.EqualFold(password, username) {
		return NewValidationError("password must not be the same as the username")
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return NewValidationError("username is required")
	}
	if len(username) > 150 {
		return NewValidationError("username must be at most 150 characters")
	}
	if !govalidator.Matches(username, `^[\w.@+-]+$`) {
		return NewValidationError("username may only contain letters, digits and @/./+/-/_")
	}
	return nil
}

// MaskEmail hides all but the first character of the local part: j***@example.com
func MaskEmail(email string) string {
	local, domainPart, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domainPart
}

// UserServiceInterface is what the HTTP layer needs from the user service
type UserServiceInterface interface {
	List(ctx context.Context, caller *User, params UserListParams) ([]*User, int, error)
	Get(ctx context.Context, caller *User, id string) (*User, error)
	Create(ctx context.Context, caller *User, input CreateUserInput) (*User, error)
	Update(ctx context.Context, caller *User, id string, input UpdateUserInput, partial bool) (*User, error)
	Delete(ctx context.Context, caller *User, id string) error
	ChangePassword(ctx context.Context, caller *User, input ChangePasswordInput) error
	AdminResetPassword(ctx context.Context, caller *User, input AdminResetPasswordInput) error
	SendVerifyCode(ctx context.Context, input SendVerifyCodeInput) (*SendVerifyCodeResult, error)
	EmailResetPassword(ctx context.Context, input EmailResetPasswordInput) error
}

type UserRepository interface {
	// CreateUser inserts user and returns ErrConflict on a duplicate username
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	ListUsers(ctx context.Context, params UserListParams) ([]*User, int, error)
	UpdateUser(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	DeleteUser(ctx context.Context, id string) error
}
