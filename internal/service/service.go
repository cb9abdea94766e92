package service

import (
	"errors"

	"github.com/richei-group/richei-backend/internal/config"
	"github.com/richei-group/richei-backend/internal/db"
	"github.com/richei-group/richei-backend/internal/repository"
	"github.com/richei-group/richei-backend/internal/socket"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("resource already exists")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth        AuthService
	Project     ProjectService
	Broadcaster *socket.Broadcaster
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config      *config.Config
	Repos       *repository.Repositories
	Cache       *db.RedisDB
	Broadcaster *socket.Broadcaster
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Auth:        NewAuthService(deps.Config, deps.Repos.UserRepo),
		Project:     NewProjectService(deps.Repos.ProjectRepo, deps.Cache, deps.Broadcaster),
		Broadcaster: deps.Broadcaster,
	}
}
