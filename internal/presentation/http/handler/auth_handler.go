package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/request"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/dto/response"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

const oauthStateCookie = "oauth_state"

// Login handles user login
// @Summary Login
// @Description Authenticate staff member and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":          output.User.ID,
			"first_name":  output.User.FirstName,
			"last_name":   output.User.LastName,
			"email":       output.User.Email,
			"username":    output.User.Username,
			"photo":       output.User.Photo,
			"roles":       output.User.Roles,
			"permissions": output.User.GetPermissions(),
		},
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// Register handles user registration
// @Summary Register
// @Description Create a new staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Registration data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration successful", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"username":   user.Username,
		},
	})
}

// RefreshToken handles token refresh
// @Summary Refresh Token
// @Description Refresh access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed successfully", gin.H{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// Logout handles user logout
// @Summary Logout
// @Description Logout user (client should discard tokens)
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// JWT is stateless, so we just return success
	// Client should discard the tokens
	response.OK(c, "Logged out successfully", nil)
}

// GoogleLogin redirects to the Google consent page
// @Summary Google Login
// @Description Start the Google OAuth flow
// @Tags auth
// @Success 307
// @Router /auth/google [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		response.InternalServerError(c, "Failed to start OAuth flow")
		return
	}
	state := hex.EncodeToString(stateBytes)

	url, err := h.authService.GoogleAuthURL(state)
	if err != nil {
		response.Error(c, apperror.NewBadRequestError(err.Error()))
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback completes the Google OAuth flow
// @Summary Google Callback
// @Description Exchange the OAuth authorization code for tokens
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	successURL, errorURL := h.authService.GoogleRedirectTargets()

	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		h.oauthFail(c, errorURL, "Invalid OAuth state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		h.oauthFail(c, errorURL, "Missing authorization code")
		return
	}

	output, err := h.authService.LoginWithGoogle(c.Request.Context(), code)
	if err != nil {
		if errorURL != "" {
			h.oauthFail(c, errorURL, err.Error())
			return
		}
		response.Error(c, err)
		return
	}

	// Browser-initiated flows land back on the frontend with the tokens;
	// API clients without a configured frontend get them as JSON.
	if successURL != "" {
		q := url.Values{}
		q.Set("access_token", output.AccessToken)
		q.Set("refresh_token", output.RefreshToken)
		c.Redirect(http.StatusTemporaryRedirect, successURL+"?"+q.Encode())
		return
	}

	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":          output.User.ID,
			"first_name":  output.User.FirstName,
			"last_name":   output.User.LastName,
			"email":       output.User.Email,
			"username":    output.User.Username,
			"photo":       output.User.Photo,
			"roles":       output.User.Roles,
			"permissions": output.User.GetPermissions(),
		},
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	})
}

// oauthFail ends the OAuth flow with a redirect to the frontend error
// page when one is configured, or a plain 400 otherwise.
func (h *AuthHandler) oauthFail(c *gin.Context, errorURL, reason string) {
	if errorURL != "" {
		q := url.Values{}
		q.Set("error", reason)
		c.Redirect(http.StatusTemporaryRedirect, errorURL+"?"+q.Encode())
		return
	}
	response.BadRequest(c, reason)
}

// GetProfile handles fetching current user profile
// @Summary Get Profile
// @Description Get current user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", gin.H{
		"user": gin.H{
			"id":          user.ID,
			"first_name":  user.FirstName,
			"last_name":   user.LastName,
			"email":       user.Email,
			"username":    user.Username,
			"photo":       user.Photo,
			"active":      user.Active,
			"roles":       user.Roles,
			"permissions": user.GetPermissions(),
			"created_at":  user.CreatedAt,
			"updated_at":  user.UpdatedAt,
		},
	})
}

// UpdateProfile handles updating user profile
// @Summary Update Profile
// @Description Update current user's profile
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		UserID:    *userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Photo:     req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", gin.H{
		"user": user,
	})
}

// ChangePassword handles password change
// @Summary Change Password
// @Description Change current user's password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.ChangePasswordRequest true "Password change data"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /profile/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), &service.ChangePasswordInput{
		UserID:          *userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		if apperror.IsAppError(err) {
			response.Error(c, err)
		} else {
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.OK(c, "Password changed successfully", nil)
}
