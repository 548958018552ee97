package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
	"github.com/nftpro1212/frons-pos/pkg/oauth"
	"github.com/nftpro1212/frons-pos/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtManager *utils.JWTManager
	oauthSvc   *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtManager *utils.JWTManager,
	oauthSvc *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtManager: jwtManager,
		oauthSvc:   oauthSvc,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a staff member and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}

// issueTokens loads the user's roles and mints an access/refresh pair.
func (s *AuthService) issueTokens(ctx context.Context, userID uuid.UUID) (*LoginOutput, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	roles := make([]string, 0)
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}
	permissions := user.GetPermissions()

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, roles, permissions)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register creates a new staff account with the default cashier role
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  usernameFromEmail(input.Email),
		Email:     input.Email,
		Password:  hashedPassword,
		Active:    true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if defaultRole, err := s.roleRepo.GetByName(ctx, "cashier"); err == nil && defaultRole != nil {
		_ = s.userRepo.AssignRole(ctx, user.ID, defaultRole.ID)
	}

	return user, nil
}

func usernameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return s.issueTokens(ctx, userID)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return errors.New("current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Username  string
	Photo     *string
}

// UpdateProfile updates the user's profile
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Username != "" && input.Username != user.Username {
		existingUser, err := s.userRepo.GetByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if existingUser != nil && existingUser.ID != user.ID {
			return nil, apperror.NewConflictError("Username already taken")
		}
		user.Username = input.Username
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GoogleAuthURL returns the Google consent URL for the given state token.
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if s.oauthSvc == nil || !s.oauthSvc.IsConfigured() {
		return "", oauth.ErrOAuthNotConfigured
	}
	return s.oauthSvc.GetAuthURL(state), nil
}

// GoogleRedirectTargets returns the frontend URLs the OAuth callback
// should land on. Empty strings mean the callback answers with JSON
// instead of redirecting.
func (s *AuthService) GoogleRedirectTargets() (successURL, errorURL string) {
	if s.oauthSvc == nil {
		return "", ""
	}
	return s.oauthSvc.GetFrontendSuccessURL(), s.oauthSvc.GetFrontendErrorURL()
}

// LoginWithGoogle exchanges an OAuth authorization code for tokens,
// creating the staff account on first sign-in. New Google accounts get
// the cashier role until an admin promotes them.
func (s *AuthService) LoginWithGoogle(ctx context.Context, code string) (*LoginOutput, error) {
	if s.oauthSvc == nil || !s.oauthSvc.IsConfigured() {
		return nil, oauth.ErrOAuthNotConfigured
	}

	token, err := s.oauthSvc.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := s.oauthSvc.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, apperror.NewBadRequestError("Google account email is not verified")
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			FirstName:  info.GivenName,
			LastName:   info.FamilyName,
			Username:   usernameFromEmail(info.Email),
			Email:      info.Email,
			Provider:   "google",
			ProviderID: &info.ID,
			Active:     true,
		}
		if info.Picture != "" {
			user.Photo = &info.Picture
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		if defaultRole, err := s.roleRepo.GetByName(ctx, "cashier"); err == nil && defaultRole != nil {
			_ = s.userRepo.AssignRole(ctx, user.ID, defaultRole.ID)
		}
	} else if user.Provider != "google" {
		// Link the Google identity to the existing local account
		user.Provider = "google"
		user.ProviderID = &info.ID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if !user.Active {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}
