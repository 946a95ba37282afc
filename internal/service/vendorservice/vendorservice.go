package vendorservice

import (
	"context"
	"errors"
	"time"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Vendor, error)
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
}

type Service struct {
	vendorRepo  Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		vendorRepo:  repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) Signup(ctx context.Context, name, email, phone, password string) (*domain.Vendor, error) {
	existing, err := s.vendorRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find vendor: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("vendor already exists", zap.String("email", email))
		return nil, ErrEmailExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	vendor := &domain.Vendor{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
	}
	newVendor, err := s.vendorRepo.Create(ctx, vendor)
	if err != nil {
		zap.L().Error("can't create vendor: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("vendor successfully registered", zap.String("email", email))
	return newVendor, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindByEmail(ctx, email)
	if err != nil || vendor == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(vendor.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials")
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("vendor successfully authenticated", zap.String("email", email))
	return vendor, nil
}

func (s *Service) GenerateToken(vendorID int64) (string, error) {
	expirationTime := time.Now().Add(10 * time.Hour)

	token, err := s.jwtService.GenerateJWT(vendorID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
