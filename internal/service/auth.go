package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/owlpost/lumos/internal/model"
)

const (
	bcryptCost = 12

	minPasswordLength = 8
	maxPasswordLength = 128
)

// UserRepository defines the interface for account storage.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// TokenIssuer mints access tokens for authenticated identities.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// AuthService handles email/password authentication. Successful
// authentication is the trigger for lazy profile creation downstream.
type AuthService struct {
	userRepo UserRepository
	tokens   TokenIssuer
}

// AuthServiceConfig holds configuration for the auth service.
type AuthServiceConfig struct {
	UserRepo UserRepository
	Tokens   TokenIssuer
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo: cfg.UserRepo,
		tokens:   cfg.Tokens,
	}
}

// AuthResult is a signed-in identity with its access token.
type AuthResult struct {
	User  *model.User
	Token string
}

func validateEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// Register creates an account and signs it in.
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{Email: email, Hash: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and signs the account in. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := validateEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}
