package services

import (
	"log/slog"

	"jobtracker_backend/internal/repositories"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	UserService        UserService
	ApplicationService ApplicationService
}

// NewServiceContainer wires the services on top of the gorm repositories.
func NewServiceContainer(log *slog.Logger) *ServiceContainer {
	userService := NewUserService(repositories.NewUserRepository(), log)

	return &ServiceContainer{
		UserService:        userService,
		ApplicationService: NewApplicationService(repositories.NewApplicationRepository(), userService, log),
	}
}
