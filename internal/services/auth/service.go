package auth

import (
	"context"
	"errors"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both Register and Login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)
}

type service struct {
	users repositories.UserRepository
}

func NewService(users repositories.UserRepository) Service {
	if users == nil {
		panic("users is required")
	}
	return &service{users: users}
}

func (s *service) Register(_ context.Context, input RegisterInput) (*AuthResponse, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}
	if len(input.Password) < 8 {
		return nil, ErrWeakPassword
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *service) Login(_ context.Context, input LoginInput) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

func (s *service) respond(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}
