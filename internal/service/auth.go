package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickhirelabor/quickhire/internal/data/repository"
	"github.com/quickhirelabor/quickhire/internal/domain"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
	"github.com/quickhirelabor/quickhire/internal/security/jwt"
	"github.com/quickhirelabor/quickhire/internal/utils"
)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	users     repository.UserRepository
	tokens    *jwt.TokenManager
	accessTTL time.Duration
	logger    *logger.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, tokens *jwt.TokenManager, accessTTL time.Duration, log *logger.Logger) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		accessTTL: accessTTL,
		logger:    log,
	}
}

// RegisterRequest represents the request to create an account. Admin
// accounts are provisioned out of band, not through this endpoint.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=customer laborer"`
}

// LoginRequest represents a credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest updates the caller's own account.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}

// AuthResult is the login/register response payload.
type AuthResult struct {
	User   *domain.User      `json:"user"`
	Tokens *domain.TokenPair `json:"tokens"`
}

// Register creates a customer or laborer account and signs it in.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           utils.NanoID(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         domain.Role(req.Role),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user registered",
		"user_id", user.ID, "role", user.Role)

	return s.issue(user)
}

// Login verifies credentials and issues a token pair.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrUserDisabled
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return s.issue(user)
}

// Refresh trades a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, req *RefreshRequest) (*AuthResult, error) {
	claims, err := s.tokens.DecodeToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !jwt.IsRefreshToken(claims) {
		return nil, ErrInvalidToken
	}

	userID := jwt.GetPayloadString(claims, "user_id")
	if userID == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrUserDisabled
	}

	return s.issue(user)
}

// Profile returns the caller's account.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile updates the caller's mutable account fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// issue signs an access/refresh pair carrying the user's identity.
func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	payload := map[string]any{
		"user_id": user.ID,
		"role":    string(user.Role),
	}
	access, err := s.tokens.GenerateAccessToken(utils.NanoID(), payload)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(utils.NanoID(), payload)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User: user,
		Tokens: &domain.TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    int64(s.accessTTL.Seconds()),
		},
	}, nil
}
