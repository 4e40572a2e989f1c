package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"habtrack/internal/core/domain"
)

type AuthService struct {
	users    domain.UserRepository
	profiles domain.ProfileRepository
	tokens   *TokenService
}

func NewAuthService(users domain.UserRepository, profiles domain.ProfileRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	// Timezone is the client's detected IANA zone, captured at sign-up so
	// every later "today" computation lands on the user's wall-clock date.
	Timezone string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user, err := domain.NewUser(uuid.NewString(), input.Email)
	if err != nil {
		return nil, err
	}

	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: failed to create user: %w", err)
	}

	profile := domain.NewProfile(user.ID, input.Name, user.Email, input.Timezone)
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		// The profile is also created lazily on first session load, so a
		// failure here only costs the sign-up metadata.
		log.Printf("auth service: profile seed failed for %s: %v", user.ID, err)
	}

	return user, nil
}

// Login checks credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("auth service: lookup failed: %w", err)
	}

	if err := user.CheckPassword(password); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// RequestPasswordReset issues a short-lived reset token for the account.
// Delivery is the notification collaborator's job; an unknown email returns
// no error and no token, so the endpoint does not leak which emails exist.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("auth service: lookup failed: %w", err)
	}

	return s.tokens.GenerateResetToken(user.ID)
}

// ConfirmPasswordReset validates a reset token and applies the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.tokens.ValidateResetToken(token)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, user.ID, user.PasswordHash)
}
