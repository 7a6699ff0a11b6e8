package service

import (
	"context"
	"errors"
	"os"
	"time"

	"sneakers-store-be/internal/dto"
	"sneakers-store-be/internal/entity"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, userId uint) (*dto.UserResponse, error)
	CheckAdmin(ctx context.Context, userId uint) (*dto.CheckAdminResponse, error)
}

type authService struct {
	userRepo contract.UserRepository
	log      logger.ILogger
}

func NewAuthService(userRepo contract.UserRepository, log logger.ILogger) IAuthService {
	return &authService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         entity.UserRoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("auth", "user registered", map[string]interface{}{"user_id": user.Id, "username": user.Username})

	token, err := generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Same error as a bad password, so usernames cannot be probed.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *authService) GetProfile(ctx context.Context, userId uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *authService) CheckAdmin(ctx context.Context, userId uint) (*dto.CheckAdminResponse, error) {
	user, err := s.userRepo.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &dto.CheckAdminResponse{
		IsAdmin: user.IsAdmin(),
		User:    toUserResponse(user),
	}, nil
}

func generateToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.Id,
		"username": user.Username,
		"role":     user.Role,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
	}
}
