package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/middleware"
	"stagedoor/internal/models"
)

// Login handles POST /api/auth/login. On success the session token is set as
// an HttpOnly cookie; the body never carries it.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	token, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, int(h.services.Auth.TokenTTL().Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		User:    models.UserInfo{Email: req.Email},
	})
}

// Logout handles POST /api/auth/logout by expiring the cookie.
func (h *Handlers) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

// Me handles GET /api/auth/me for an authenticated session.
func (h *Handlers) Me(c *gin.Context) {
	email := c.GetString(middleware.OperatorEmailKey)

	user, err := h.services.Auth.Me(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": models.UserInfo{Email: user.Email}})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *Handlers) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.services.Auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "OTP sent to your email"})
}

// VerifyOTP handles POST /api/auth/verify-otp.
func (h *Handlers) VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.services.Auth.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "OTP verified"})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *Handlers) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Validation("Invalid request body"))
		return
	}

	if err := h.services.Auth.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Password reset successfully"})
}
