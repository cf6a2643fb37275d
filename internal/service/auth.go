package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/mailer"
	"storefront-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles registration, login, OTP verification and the token
// lifecycle.
type AuthService struct {
	users     repository.UserRepositoryInterface
	otp       OTPServiceInterface
	tokens    *auth.TokenManager
	mail      mailer.Enqueuer
	validator *validator.Validate
	log       *logger.Logger
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// NewAuthService creates a new AuthService
func NewAuthService(
	users repository.UserRepositoryInterface,
	otp OTPServiceInterface,
	tokens *auth.TokenManager,
	mail mailer.Enqueuer,
	validator *validator.Validate,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		otp:       otp,
		tokens:    tokens,
		mail:      mail,
		validator: validator,
		log:       log,
	}
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents the change-password payload
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPasswordConfirmRequest represents the reset confirmation payload
type ResetPasswordConfirmRequest struct {
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UpdateProfileRequest represents the profile update payload
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsVerified   bool      `json:"is_verified"`
	IsSuperadmin bool      `json:"is_superadmin"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
}

// TokenPair represents an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthResponse bundles the authenticated user with a token pair
type AuthResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// Register creates an unverified account and issues its first OTP. The
// account cannot log in until the code is verified.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(req.Email)
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := s.otp.Issue(ctx, user); err != nil {
		// The account exists either way; the user can ask for a resend.
		s.log.WithError(err).WithUser(email).Error("failed to issue registration otp")
	}

	response := s.toUserResponse(user)
	return &response, nil
}

// Login authenticates with email and password. Unverified accounts are
// rejected even with correct credentials.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	return s.authResponse(user)
}

// VerifyOTP consumes a code, marks the matching account verified and logs
// it in.
func (s *AuthService) VerifyOTP(ctx context.Context, code string) (*AuthResponse, error) {
	valid, email, err := s.otp.VerifyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to verify code: %w", err)
	}
	if !valid {
		return nil, apperrors.ErrInvalidOTP
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsVerified {
		user.IsVerified = true
		if err := s.users.Update(user); err != nil {
			return nil, fmt.Errorf("failed to mark user verified: %w", err)
		}
		s.sendTemplate(ctx, user, "verification_success.txt", "Your account is verified")
	}

	return s.authResponse(user)
}

// ResendOTP issues a fresh code for an unverified account.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.IsVerified {
		return &apperrors.BadRequestError{Message: "account is already verified"}
	}

	_, err = s.otp.Issue(ctx, user)
	return err
}

// OTPStatus reports the OTP state for an email.
func (s *AuthService) OTPStatus(ctx context.Context, email string) (*OTPStatus, error) {
	return s.otp.Status(ctx, email)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.tokens.DecodeRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	pair, err := s.tokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// ChangePassword rotates the password for an authenticated user after
// checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !auth.VerifyPassword(req.OldPassword, user.PasswordHash) {
		return apperrors.ErrOldPasswordMismatch
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// RequestPasswordReset issues a reset code. Unknown emails succeed
// silently so the endpoint cannot be used to probe for accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithUser(email).Info("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	_, err = s.otp.Issue(ctx, user)
	return err
}

// ConfirmPasswordReset consumes a reset code and sets the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req *ResetPasswordConfirmRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	valid, email, err := s.otp.VerifyByCode(ctx, req.Code)
	if err != nil {
		return fmt.Errorf("failed to verify code: %w", err)
	}
	if !valid {
		return apperrors.ErrInvalidOTP
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.sendTemplate(ctx, user, "password_reset_success.txt", "Your password was reset")
	return nil
}

// UpdateProfile applies partial profile changes for the current user.
func (s *AuthService) UpdateProfile(ctx context.Context, user *models.User, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	response := s.toUserResponse(user)
	return &response, nil
}

// TokensForUser issues a token pair for an already-authenticated user.
// The OAuth callback uses this after Google has vouched for the account.
func (s *AuthService) TokensForUser(user *models.User) (*AuthResponse, error) {
	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *models.User) (*AuthResponse, error) {
	pair, err := s.tokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: s.toUserResponse(user), Tokens: *pair}, nil
}

func (s *AuthService) tokenPair(userID uuid.UUID) (*TokenPair, error) {
	access, err := s.tokens.CreateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refresh, err := s.tokens.CreateRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func (s *AuthService) sendTemplate(ctx context.Context, user *models.User, template, subject string) {
	body, err := mailer.Render(template, map[string]string{"FirstName": user.FirstName})
	if err != nil {
		s.log.WithError(err).WithUser(user.Email).Error("failed to render email")
		return
	}
	if err := s.mail.Enqueue(ctx, mailer.Message{To: user.Email, Subject: subject, Body: body}); err != nil {
		s.log.WithError(err).WithUser(user.Email).Error("failed to enqueue email")
	}
}

// toUserResponse converts a User model to API response
func (s *AuthService) toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsVerified:   user.IsVerified,
		IsSuperadmin: user.IsSuperadmin,
		AvatarURL:    user.AvatarURL,
	}
}
