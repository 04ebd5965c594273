package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/auth"
	"stagedoor/internal/config"
	"stagedoor/internal/models"
)

type AuthService struct {
	users      UserStore
	otps       OTPStore
	mailer     Mailer
	jwtSecret  string
	tokenTTL   time.Duration
	otpTTL     time.Duration
	bcryptCost int
}

func NewAuthService(cfg *config.Config, users UserStore, otps OTPStore, mailer Mailer) *AuthService {
	return &AuthService{
		users:      users,
		otps:       otps,
		mailer:     mailer,
		jwtSecret:  cfg.JWTSecret,
		tokenTTL:   cfg.TokenTTL,
		otpTTL:     cfg.OTPTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// TokenTTL is the lifetime of issued session tokens, exposed for the cookie
// max-age.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Login verifies the operator credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.Validation("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return "", apperrors.Unauthorized("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", apperrors.Unauthorized("Invalid email or password")
	}

	token, err := auth.NewToken(s.jwtSecret, user.Email, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Me returns the account behind an authenticated session.
func (s *AuthService) Me(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}
	return user, nil
}

// ForgotPassword generates a one-time code, stores it with a TTL, and emails
// it. The email here is synchronous: the caller is waiting for it, so a send
// failure is a real failure.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.Validation("Email is required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return apperrors.NotFound("No account found for this email")
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := s.otps.StoreOTP(ctx, user.Email, code, s.otpTTL); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	if err := s.mailer.SendPasswordResetOTP(user.Email, code, s.otpTTL); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	return nil
}

// VerifyOTP checks a submitted code against the stored one.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return apperrors.Validation("Email and OTP are required")
	}

	stored, err := s.otps.GetOTP(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get OTP: %w", err)
	}
	if stored == "" || stored != code {
		return apperrors.Unauthorized("Invalid or expired OTP")
	}
	return nil
}

// ResetPassword updates the stored password after OTP verification and
// consumes the code.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" || newPassword == "" {
		return apperrors.Validation("Email, OTP, and new password are required")
	}
	if len(newPassword) < 8 {
		return apperrors.Validation("Password must be at least 8 characters")
	}

	if err := s.VerifyOTP(ctx, email, code); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, email, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.otps.DeleteOTP(ctx, email); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}

	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
