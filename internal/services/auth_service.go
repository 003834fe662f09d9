package services

import (
	"context"
	"fmt"
	"strings"

	"gorent/internal/config"
	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *validators.RegisterRequest) (*models.User, *utils.TokenPair, error)
	Login(ctx context.Context, req *validators.LoginRequest) (*models.User, *utils.TokenPair, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
}

type authService struct {
	userRepo interfaces.UserRepository
	config   *config.Config
	log      *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, cfg *config.Config, log *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *validators.RegisterRequest) (*models.User, *utils.TokenPair, error) {
	if errs := validators.ValidateStruct(req); len(errs) > 0 {
		return nil, nil, NewValidationError(errs.Error())
	}

	role := models.UserRole(req.Role)
	if !role.Valid() {
		return nil, nil, NewValidationError("role must be owner or renter")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.config.Security.JWTSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.log.WithUserID(user.ID).WithField("role", user.Role).Info("User registered")

	return user, tokens, nil
}

func (s *authService) Login(ctx context.Context, req *validators.LoginRequest) (*models.User, *utils.TokenPair, error) {
	if errs := validators.ValidateStruct(req); len(errs) > 0 {
		return nil, nil, NewValidationError(errs.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, ErrBadCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, nil, ErrBadCredential
	}

	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.config.Security.JWTSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.log.WithUserID(user.ID).WithError(err).Warn("Failed to record last login")
	}

	return user, tokens, nil
}

func (s *authService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}
