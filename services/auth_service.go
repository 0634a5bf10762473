package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/models"
	"github.com/sohryuu101/web-wedding-sub000/pkg/token"
	"github.com/sohryuu101/web-wedding-sub000/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthResult is returned by register and login.
type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// IAuthService verifies credentials and issues session tokens.
type IAuthService interface {
	Register(ctx context.Context, input models.RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input models.LoginInput) (*AuthResult, error)
	Verify(raw string) (token.Identity, error)
	Me(ctx context.Context, userID uint) (*models.User, error)
}

type AuthService struct {
	users    repositories.IUserRepository
	tokens   *token.Manager
	hashCost int
}

func NewAuthService(users repositories.IUserRepository, tokens *token.Manager) IAuthService {
	return &AuthService{users: users, tokens: tokens, hashCost: bcrypt.DefaultCost}
}

// NewAuthServiceWithCost lets tests trade hash strength for speed.
func NewAuthServiceWithCost(users repositories.IUserRepository, tokens *token.Manager, cost int) IAuthService {
	return &AuthService{users: users, tokens: tokens, hashCost: cost}
}

func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		configslog.Log.Error("AuthService.Register: hash failed", zap.Error(err))
		return nil, ErrInternal
	}
	user := &models.User{Email: input.Email, Name: input.Name, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		configslog.Log.Error("AuthService.Register: create failed", zap.String("email", input.Email), zap.Error(err))
		return nil, ErrInternal
	}
	configslog.Log.Info("User registered", zap.Uint("user_id", user.ID))
	return s.issue(user)
}

// Login does not tell an unknown email apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, input models.LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("AuthService.Login: lookup failed", zap.Error(err))
		return nil, ErrInternal
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *AuthService) Verify(raw string) (token.Identity, error) {
	id, err := s.tokens.Verify(raw)
	if err != nil {
		return token.Identity{}, ErrUnauthorized
	}
	return id, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		configslog.Log.Error("AuthService.Me: lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, ErrInternal
	}
	return user, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	raw, exp, err := s.tokens.Issue(token.Identity{UserID: user.ID, Email: user.Email, Name: user.Name})
	if err != nil {
		configslog.Log.Error("AuthService: token issue failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, ErrInternal
	}
	return &AuthResult{Token: raw, ExpiresAt: exp, User: user}, nil
}

var _ IAuthService = (*AuthService)(nil)
