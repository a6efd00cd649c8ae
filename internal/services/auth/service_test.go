package auth

import (
	"context"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byEmail map[string]models.User
	nextID  uint
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]models.User), nextID: 1}
}

func (f *fakeUsers) Create(u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = *u
	return nil
}

func (f *fakeUsers) GetByID(id uint) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copy := u
			return &copy, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copy := u
	return &copy, nil
}

func (f *fakeUsers) Update(u *models.User) error {
	f.byEmail[u.Email] = *u
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(newFakeUsers())
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "Ada@Example.com", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	assert.Equal(t, "ada@example.com", reg.User.Email, "email is normalised")
	assert.NotEqual(t, "correct horse", reg.User.Password, "password must be hashed")

	claims, err := utils.ParseToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	login, err := svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newFakeUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.com", Password: "long enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@b.com", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(newFakeUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@b.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Eve", Email: "a@b.com", Password: "battery staple"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewService(newFakeUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ada", Email: "a@b.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@b.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
