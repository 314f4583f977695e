package services

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/repository"
	"github.com/IlyaM70/RedMango-API/utils"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	JWTSecret string
	Log       *zap.SugaredLogger
}

func NewAuthService(repo *repository.UserRepository, secret string, log *zap.SugaredLogger) *AuthService {
	return &AuthService{UserRepo: repo, JWTSecret: secret, Log: log}
}

type LoginResult struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Login verifies the credentials and issues a 7-day token carrying the user's
// single role claim. Unknown username and wrong password produce the exact
// same error, on purpose.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)

	user, err := s.UserRepo.FindByEmail(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.JWTSecret)
	if err != nil {
		s.Log.Errorw("generate token", "err", err)
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{Email: user.Email, Token: token}, nil
}

// Register creates a user. Only an explicit "admin" request is honored;
// every other role string becomes customer.
func (s *AuthService) Register(username, password, name, role string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	count, err := s.UserRepo.CountByEmail(username)
	if err != nil {
		s.Log.Errorw("count users", "err", err)
		return nil, ErrRegistrationFailed
	}
	if count > 0 {
		return nil, ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.Log.Errorw("hash password", "err", err)
		return nil, ErrRegistrationFailed
	}

	// Bootstrap the role vocabulary on first use, before any assignment.
	if err := s.UserRepo.EnsureRoles(); err != nil {
		s.Log.Errorw("ensure roles", "err", err)
		return nil, ErrRegistrationFailed
	}

	assigned := entity.RoleCustomer
	if role == entity.RoleAdmin {
		assigned = entity.RoleAdmin
	}

	user := &entity.User{
		Email:    username,
		Password: string(hashed),
		Name:     name,
		Role:     assigned,
	}
	if err := s.UserRepo.Create(user); err != nil {
		s.Log.Errorw("create user", "err", err)
		return nil, ErrRegistrationFailed
	}
	return user, nil
}
