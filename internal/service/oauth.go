package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleProfile is the subset of the Google userinfo response we consume.
type googleProfile struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// OAuthService drives the Google authorization-code flow. A successful
// callback upserts a verified account; Google's say-so replaces OTP
// verification for these users.
type OAuthService struct {
	users  repository.UserRepositoryInterface
	config *oauth2.Config
	log    *logger.Logger
}

// Ensure OAuthService implements OAuthServiceInterface
var _ OAuthServiceInterface = (*OAuthService)(nil)

// NewOAuthService creates a Google OAuth service. clientID may be empty, in
// which case both operations fail with ErrOAuthNotConfigured.
func NewOAuthService(users repository.UserRepositoryInterface, clientID, clientSecret, redirectURI string, log *logger.Logger) *OAuthService {
	var config *oauth2.Config
	if clientID != "" && clientSecret != "" {
		config = &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return &OAuthService{users: users, config: config, log: log}
}

// AuthURL returns the Google consent page URL for the given CSRF state.
func (s *OAuthService) AuthURL(state string) (string, error) {
	if s.config == nil {
		return "", apperrors.ErrOAuthNotConfigured
	}
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// HandleCallback exchanges the authorization code, fetches the Google
// profile and returns the matching local user, creating a verified account
// on first sight.
func (s *OAuthService) HandleCallback(ctx context.Context, code string) (*models.User, error) {
	if s.config == nil {
		return nil, apperrors.ErrOAuthNotConfigured
	}

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, &apperrors.UnauthenticatedError{Message: "google code exchange failed"}
	}

	profile, err := s.fetchProfile(ctx, token)
	if err != nil {
		return nil, err
	}
	if profile.Email == "" || !profile.VerifiedEmail {
		return nil, &apperrors.UnauthenticatedError{Message: "google account email is not verified"}
	}

	return s.upsertUser(profile)
}

func (s *OAuthService) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := s.config.Client(ctx, token)
	resp, err := client.Get(googleUserinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch google profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo returned status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode google profile: %w", err)
	}
	return &profile, nil
}

func (s *OAuthService) upsertUser(profile *googleProfile) (*models.User, error) {
	email := strings.ToLower(profile.Email)
	user, err := s.users.GetByEmail(email)
	if err == nil {
		if !user.IsVerified {
			user.IsVerified = true
			if err := s.users.Update(user); err != nil {
				return nil, fmt.Errorf("failed to mark user verified: %w", err)
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user = &models.User{
		Email:      email,
		FirstName:  profile.GivenName,
		LastName:   profile.FamilyName,
		IsVerified: true,
	}
	if profile.Picture != "" {
		user.AvatarURL = &profile.Picture
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.log.WithUser(email).Info("created user from google oauth")
	return user, nil
}
