package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"storefront-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// OAuthHandler handles the Google OAuth code flow
type OAuthHandler struct {
	oauthService service.OAuthServiceInterface
	authService  service.AuthServiceInterface
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(oauthService service.OAuthServiceInterface, authService service.AuthServiceInterface) *OAuthHandler {
	return &OAuthHandler{
		oauthService: oauthService,
		authService:  authService,
	}
}

// GoogleLogin handles GET /auth/google/login
// @Summary Start Google sign-in
// @Description Redirect the browser to Google's consent page
// @Tags auth
// @Success 307 "Redirect to Google"
// @Failure 503 {object} ErrorResponse "Google OAuth not configured"
// @Router /auth/google/login [get]
func (h *OAuthHandler) GoogleLogin(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	url, err := h.oauthService.AuthURL(state)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback handles GET /auth/google/callback
// @Summary Complete Google sign-in
// @Description Exchange the authorization code, upsert a verified account and return tokens
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 200 {object} service.AuthResponse "Authenticated"
// @Failure 401 {object} ErrorResponse "Code exchange failed"
// @Router /auth/google/callback [get]
func (h *OAuthHandler) GoogleCallback(c *gin.Context) {
	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || c.Query("state") != expected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	user, err := h.oauthService.HandleCallback(c.Request.Context(), code)
	if err != nil {
		writeError(c, err)
		return
	}

	resp, err := h.authService.TokensForUser(user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func randomState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
