package user

import (
	"context"
	"errors"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/attachment"
)

var ErrInvalidProfile = errors.New("invalid profile data")

// ProfileDraft carries the editable profile fields. Avatar follows the
// attachment three-state convention.
type ProfileDraft struct {
	Name   string                  `json:"name"`
	Avatar *models.AttachmentInput `json:"avatar,omitempty"`
}

type Service interface {
	Get(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, draft ProfileDraft) (*models.User, error)
}

type service struct {
	users    repositories.UserRepository
	resolver attachment.Resolver
}

func NewService(users repositories.UserRepository, resolver attachment.Resolver) Service {
	if users == nil {
		panic("users is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	return &service{users: users, resolver: resolver}
}

func (s *service) Get(_ context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, draft ProfileDraft) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(draft.Name); name != "" {
		user.Name = name
	} else if draft.Avatar == nil {
		return nil, ErrInvalidProfile
	}

	if draft.Avatar != nil {
		if draft.Avatar.IsEmpty() {
			user.Avatar = ""
		} else {
			url, err := s.resolver.Resolve(ctx, draft.Avatar, attachment.FolderUsers)
			if err != nil {
				return nil, err
			}
			user.Avatar = url
		}
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
