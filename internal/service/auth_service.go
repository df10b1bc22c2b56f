package service

import (
	"errors"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Config   *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Config: cfg}
}

type RegisterInput struct {
	Name       string `json:"name" binding:"required,min=2,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	TargetRole string `json:"targetRole"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	if _, err := s.UserRepo.FindByEmail(input.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   string(hashed),
		Role:       model.Student,
		TargetRole: input.TargetRole,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if user.Disabled {
		return nil, util.ErrPermissionDenied
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrUnauthorized
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// UpdateProfileInput 可更新的用户资料字段
type UpdateProfileInput struct {
	Name       string `json:"name"`
	TargetRole string `json:"targetRole"`
	Avatar     string `json:"avatar"`
}

func (s *AuthService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(userID uint, input UpdateProfileInput) (*model.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.TargetRole != "" {
		user.TargetRole = input.TargetRole
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
