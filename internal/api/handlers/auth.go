package handlers

import (
	"net/http"

	"storefront-backend/internal/auth"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for identity operations
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Description Create an unverified account and email a verification code
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.UserResponse "Account created, verification pending"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Description Authenticate a verified account and return a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.AuthResponse "Authenticated"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "Account not verified"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type verifyOTPRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyOTP handles POST /auth/verify-otp
// @Summary Verify an account with a one-time code
// @Description Consume the emailed code, mark the account verified and log it in
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body verifyOTPRequest true "Verification code"
// @Success 200 {object} service.AuthResponse "Account verified"
// @Failure 400 {object} ErrorResponse "Invalid or expired code"
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.VerifyOTP(c.Request.Context(), req.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type emailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendOTP handles POST /auth/resend-otp
// @Summary Resend the verification code
// @Description Issue a fresh code for an unverified account, subject to the resend interval
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body emailRequest true "Account email"
// @Success 200 {object} map[string]string "Code sent"
// @Failure 404 {object} ErrorResponse "Unknown email"
// @Failure 429 {object} ErrorResponse "Resend too soon"
// @Router /auth/resend-otp [post]
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ResendOTP(c.Request.Context(), req.Email); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// OTPStatus handles GET /auth/otp-status/:email
// @Summary Inspect OTP state for an email
// @Description Report whether a code is outstanding, its attempt count and remaining TTL
// @Tags auth
// @Accept json
// @Produce json
// @Param email path string true "Account email"
// @Success 200 {object} service.OTPStatus "OTP state"
// @Router /auth/otp-status/{email} [get]
func (h *AuthHandler) OTPStatus(c *gin.Context) {
	status, err := h.authService.OTPStatus(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /auth/refresh-token
// @Summary Refresh the token pair
// @Description Exchange a valid refresh token for a new access/refresh pair
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body refreshRequest true "Refresh token"
// @Success 200 {object} service.TokenPair "New token pair"
// @Failure 401 {object} ErrorResponse "Invalid refresh token"
// @Router /auth/refresh-token [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// ChangePassword handles POST /auth/change-password
// @Summary Change the current user's password
// @Description Rotate the password after checking the old one
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body service.ChangePasswordRequest true "Old and new passwords"
// @Success 200 {object} map[string]string "Password changed"
// @Failure 400 {object} ErrorResponse "Old password incorrect"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), user, &req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

// RequestPasswordReset handles POST /auth/reset-password/request
// @Summary Request a password reset code
// @Description Email a reset code; unknown emails succeed silently
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body emailRequest true "Account email"
// @Success 200 {object} map[string]string "Reset code sent if the account exists"
// @Failure 429 {object} ErrorResponse "Resend too soon"
// @Router /auth/reset-password/request [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset code was sent"})
}

// ConfirmPasswordReset handles POST /auth/reset-password/confirm
// @Summary Confirm a password reset
// @Description Consume the reset code and set the new password
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body service.ResetPasswordConfirmRequest true "Code and new password"
// @Success 200 {object} map[string]string "Password reset"
// @Failure 400 {object} ErrorResponse "Invalid or expired code"
// @Router /auth/reset-password/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req service.ResetPasswordConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ConfirmPasswordReset(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

// GetProfile handles GET /profile
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} service.UserResponse "Current user"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}
	c.JSON(http.StatusOK, service.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsVerified:   user.IsVerified,
		IsSuperadmin: user.IsSuperadmin,
		AvatarURL:    user.AvatarURL,
	})
}

// UpdateProfile handles PUT /profile
// @Summary Update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body service.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.UpdateProfile(c.Request.Context(), user, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
