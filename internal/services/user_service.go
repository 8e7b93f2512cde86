package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
	"dwelloBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo *repositories.UserRepository
	Tokens   *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, u models.User) (models.User, error) {
	switch u.Role {
	case "homeowner", "pro":
	default:
		return models.User{}, errors.New("role must be homeowner or pro")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
	if err != nil {
		return models.User{}, err
	}
	u.Password = string(hash)
	return s.UserRepo.CreateUser(ctx, u)
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignInResponse, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.SignInResponse{}, models.ErrInvalidCredentials
		}
		return models.SignInResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.SignInResponse{}, models.ErrInvalidCredentials
	}
	user.Password = ""

	access, err := s.Tokens.NewAccessToken(user.ID, user.Role, accessTokenTTL)
	if err != nil {
		return models.SignInResponse{}, err
	}
	refresh, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.SignInResponse{}, err
	}
	_, err = s.UserRepo.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	})
	if err != nil {
		return models.SignInResponse{}, err
	}

	return models.SignInResponse{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, actor models.Actor, u models.User) (models.User, error) {
	if actor.Role != "admin" && actor.UserID != u.ID {
		return models.User{}, models.ErrPermissionDenied
	}
	return s.UserRepo.UpdateUser(ctx, u)
}
