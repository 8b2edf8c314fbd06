package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/application/service"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/request"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/response"
	"github.com/mercibizhub/bizhub-api/pkg/oauth"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService   *service.AuthService
	googleService *oauth.GoogleService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, googleService *oauth.GoogleService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		googleService: googleService,
	}
}

func userPayload(output *service.LoginOutput) gin.H {
	return gin.H{
		"user": gin.H{
			"id":         output.User.ID,
			"first_name": output.User.FirstName,
			"last_name":  output.User.LastName,
			"email":      output.User.Email,
			"photo":      output.User.Photo,
		},
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"token_type":    "Bearer",
	}
}

// Login handles user login
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

	response.OK(c, "Login successful", userPayload(output))
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Register(c.Request.Context(), &service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registration successful", userPayload(output))
}

// RefreshToken handles token refresh
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

// GoogleAuth starts the federated sign-in flow by redirecting to Google
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	if !h.googleService.IsConfigured() {
		response.BadRequest(c, "Google sign-in is not configured")
		return
	}

	state := uuid.New().String()
	// The state cookie is checked in the callback to block forged redirects.
	c.SetCookie("oauth_state", state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleService.AuthURL(state))
}

// GoogleCallback completes the federated sign-in flow. On success the
// browser is sent to the frontend with tokens in the fragment.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	savedState, err := c.Cookie("oauth_state")
	if err != nil || savedState == "" || c.Query("state") != savedState {
		c.Redirect(http.StatusTemporaryRedirect, h.googleService.FrontendErrorURL())
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, h.googleService.FrontendErrorURL())
		return
	}

	output, err := h.authService.LoginWithGoogle(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, h.googleService.FrontendErrorURL())
		return
	}

	fragment := url.Values{}
	fragment.Set("access_token", output.AccessToken)
	fragment.Set("refresh_token", output.RefreshToken)
	c.Redirect(http.StatusTemporaryRedirect, h.googleService.FrontendSuccessURL()+"#"+fragment.Encode())
}

// Logout handles user logout. JWTs are stateless; the client discards
// its tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, "Logged out successfully", nil)
}

// GetProfile handles fetching the current user's profile
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
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"photo":      user.Photo,
			"created_at": user.CreatedAt,
			"updated_at": user.UpdatedAt,
		},
	})
}

// UpdateProfile handles updating the current user's profile
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
		Photo:     req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"photo":      user.Photo,
		},
	})
}

// ChangePassword handles changing the current user's password
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
		response.Error(c, err)
		return
	}

	response.OK(c, "Password changed successfully", nil)
}

// ForgotPassword handles a password reset request
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req request.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), &service.ForgotPasswordInput{
		Email: req.Email,
	}); err != nil {
		response.Error(c, err)
		return
	}

	// Same response whether or not the account exists.
	response.OK(c, "If the email exists, a reset link has been sent", nil)
}

// ResetPassword handles completing a password reset
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ResetPassword(c.Request.Context(), &service.ResetPasswordInput{
		Email:       req.Email,
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password reset successfully", nil)
}
