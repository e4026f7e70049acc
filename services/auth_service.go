package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ujjwal-9/ordering-agent/entity"
	"github.com/ujjwal-9/ordering-agent/repository"
	"github.com/ujjwal-9/ordering-agent/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users  *repository.UserRepository
	secret string
	ttl    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

type LoginResult struct {
	Token string            `json:"token"`
	User  *entity.AdminUser `json:"user"`
}

func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.secret, s.ttl)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}
