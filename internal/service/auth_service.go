package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
	"github.com/ecelliitbhu/ecell-backend/pkg/jwt"
)

// MinAdminPasswordLength shortest password accepted for an admin
const MinAdminPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// TokenRevoker remembers logged-out admin tokens until they expire
type TokenRevoker interface {
	RevokeAdminToken(ctx context.Context, claims *jwt.Claims) error
}

// AuthService admin identity
type AuthService interface {
	// IsAdmin plain presence check
	IsAdmin(ctx context.Context, email string) (bool, error)
	// Login exchanges admin credentials for a signed capability token
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminTokenResponse, error)
	// Logout revokes the token until it would have expired anyway
	Logout(ctx context.Context, claims *jwt.Claims) error
	// SetAdmin creates the admin or replaces its password
	SetAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	revoker TokenRevoker
	logger  *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	revoker TokenRevoker,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		jwtMgr:  jwtMgr,
		revoker: revoker,
		logger:  logger,
	}
}

func (s *authService) IsAdmin(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.Admin.GetByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	s.logger.Error("failed to load admin", zap.String("email", email), zap.Error(err))
	return false, err
}

func (s *authService) Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminTokenResponse, error) {
	email := normalizeEmail(req.Email)

	// 1. load admin
	admin, err := s.repo.Admin.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load admin", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	// 2. verify password; rows without a hash cannot log in
	if admin.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. issue token
	token, err := s.jwtMgr.GenerateAdminToken(admin.Email)
	if err != nil {
		s.logger.Error("failed to sign admin token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("admin logged in", zap.String("email", admin.Email))
	return &dto.AdminTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwtMgr.TTL().Seconds()),
		Email:       admin.Email,
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if err := s.revoker.RevokeAdminToken(ctx, claims); err != nil {
		s.logger.Error("failed to revoke admin token", zap.String("jti", claims.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) SetAdmin(ctx context.Context, email, password string) error {
	if len(password) < MinAdminPasswordLength {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.Admin{Email: normalizeEmail(email), PasswordHash: string(hash)}
	if err := s.repo.Admin.Upsert(ctx, admin); err != nil {
		s.logger.Error("failed to save admin", zap.String("email", admin.Email), zap.Error(err))
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
