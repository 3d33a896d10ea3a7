// Package auth owns credentials, JWT issuing and refresh rotation.
package auth

import (
	"context"
	"fmt"
	"time"

	"techmart-backend/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type IRefreshTokenRepository interface {
	Save(ctx context.Context, token *models.RefreshToken) error
	Find(ctx context.Context, tokenID string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, tokenID string) error
}

type ITokenService interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, string, error)
	ValidateToken(tokenStr, expectedType string) (jwt.MapClaims, error)
	RefreshTTL() time.Duration
}

// LoginResult is the complete outcome of a successful login: identity
// plus token pair, everything a session needs in one value.
type LoginResult struct {
	User         models.SessionUser
	AccessToken  string
	RefreshToken string
}

type Service struct {
	users    IUserRepository
	tokens   IRefreshTokenRepository
	tokenSvc ITokenService
}

func NewService(users IUserRepository, tokens IRefreshTokenRepository, tokenSvc ITokenService) *Service {
	return &Service{users: users, tokens: tokens, tokenSvc: tokenSvc}
}

// Login validates credentials and issues a token pair. Any failure
// leaves no trace: nothing is persisted until the credentials check
// out, so callers can establish their session only on success.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	pair, tokenID, err := s.tokenSvc.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokens.Save(ctx, &models.RefreshToken{
		TokenID:   tokenID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenSvc.RefreshTTL()),
	}); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &LoginResult{
		User: models.SessionUser{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Register creates a customer account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, name, email, password, role string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return fmt.Errorf("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password")
	}

	if role != models.RoleAdmin {
		role = models.RoleCustomer
	}

	newUser := &models.User{
		ID:       uuid.New(),
		Email:    email,
		Name:     name,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.users.Create(ctx, newUser); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// RefreshTokens rotates a refresh token: the presented token must be
// valid and not yet revoked; it is revoked and a fresh pair is issued.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokenSvc.ValidateToken(refreshToken, "refresh")
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	tokenID, _ := claims["jti"].(string)
	if tokenID == "" {
		return nil, fmt.Errorf("invalid refresh token: missing jti")
	}

	stored, err := s.tokens.Find(ctx, tokenID)
	if err != nil || stored.Revoked {
		return nil, fmt.Errorf("refresh token revoked or unknown")
	}

	userIDStr, _ := claims["sub"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: bad subject")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user no longer exists")
	}

	if err := s.tokens.Revoke(ctx, tokenID); err != nil {
		return nil, fmt.Errorf("failed to revoke token: %w", err)
	}

	pair, newTokenID, err := s.tokenSvc.GenerateTokenPair(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokens.Save(ctx, &models.RefreshToken{
		TokenID:   newTokenID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenSvc.RefreshTTL()),
	}); err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return pair, nil
}
