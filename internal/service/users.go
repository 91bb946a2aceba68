package service

import (
	"context"
	"errors"
	"strings"

	"buildunion/internal/domain/user"
	apperrors "buildunion/pkg/errors"
	"buildunion/pkg/password"

	"github.com/google/uuid"
)

// UserRepository is the persistence surface the auth flows need.
type UserRepository interface {
	Create(ctx context.Context, input user.CreateUserInput) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// TokenIssuer mints access tokens after a successful signup or login.
type TokenIssuer interface {
	Generate(userID uuid.UUID, email string) (string, error)
}

// AuthResult is the signed-in session handed back to the handler.
type AuthResult struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}

type UserService struct {
	repo   UserRepository
	tokens TokenIssuer
}

func NewUserService(repo UserRepository, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Signup hashes the password, creates the account and issues a token.
// A duplicate email surfaces as a conflict.
func (s *UserService) Signup(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, apperrors.InternalServer("failed to hash password", err)
	}

	u, err := s.repo.Create(ctx, user.CreateUserInput{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, apperrors.InternalServer("failed to issue token", err)
	}

	return &AuthResult{User: u, Token: token}, nil
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidCredentials()
		}
		return nil, err
	}

	if !password.Verify(plainPassword, u.PasswordHash) {
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.tokens.Generate(u.ID, u.Email)
	if err != nil {
		return nil, apperrors.InternalServer("failed to issue token", err)
	}

	return &AuthResult{User: u, Token: token}, nil
}
