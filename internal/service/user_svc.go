package service

import (
	"context"
	"errors"
	"time"

	"github.com/channelchat/channelchat-go/internal/model"
	"github.com/channelchat/channelchat-go/internal/repository"
	"github.com/channelchat/channelchat-go/pkg/password"
)

// ErrBadCredentials is returned when a login fails for any reason. Unknown
// username and wrong password are deliberately indistinguishable.
var ErrBadCredentials = errors.New("invalid username or password")

type UserService struct {
	repo *repository.UserRepo
}

func NewUserService(repo *repository.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user account with a hashed password. Returns
// repository.ErrAlreadyExists when the username is taken.
func (s *UserService) Register(ctx context.Context, username, plain string, email, firstName, lastName *string) (*model.User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns the login response on success.
func (s *UserService) Login(ctx context.Context, username, plain string) (*model.LoginResponse, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if !password.Verify(u.PasswordHash, plain) {
		return nil, ErrBadCredentials
	}

	return &model.LoginResponse{
		OK:        true,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}
