package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/pkg/apperrors"
)

const msgEmailAlreadyRegistered = "Email already registered"

type UserService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error)
	FindOne(ctx context.Context, db *gorm.DB, id uint) (*dto.UserResponse, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Remove(ctx context.Context, db *gorm.DB, id uint) (*dto.UserResponse, error)

	// CheckExists returns the stored user or a NOT_FOUND error.
	CheckExists(ctx context.Context, db *gorm.DB, id uint) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	log      *slog.Logger
}

func NewUserService(userRepo repositories.UserRepository, log *slog.Logger) UserService {
	if log == nil {
		log = slog.Default()
	}
	return &userService{
		userRepo: userRepo,
		log:      log.With("service", "users"),
	}
}

func (s *userService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Info("start creating user", "email", req.Email)
	db = withContext(ctx, db)

	_, err := s.userRepo.FindByEmail(db, req.Email)
	switch {
	case err == nil:
		log.Warn("email already registered", "email", req.Email)
		return nil, apperrors.Conflict(apperrors.DomainUser, msgEmailAlreadyRegistered)
	case !errors.Is(err, repositories.ErrUserNotFound):
		log.Error("failed to look up user by email", "error", err)
		return nil, handleUserError(err, 0)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		log.Error("failed to create user", "error", err)
		return nil, handleUserError(err, 0)
	}

	log.Info("user created", "user_id", user.ID)
	return dto.NewUserResponse(user), nil
}

func (s *userService) FindAll(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Debug("start listing users")

	users, err := s.userRepo.FindAll(withContext(ctx, db))
	if err != nil {
		log.Error("failed to list users", "error", err)
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponses(users), nil
}

func (s *userService) FindOne(ctx context.Context, db *gorm.DB, id uint) (*dto.UserResponse, error) {
	logger.FromContext(ctx, s.log).Debug("start finding user", "user_id", id)

	user, err := s.CheckExists(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Info("start updating user", "user_id", id)
	db = withContext(ctx, db)

	user, err := s.CheckExists(ctx, db, id)
	if err != nil {
		return nil, err
	}

	// An empty email is treated as not supplied.
	if req.Email != nil && *req.Email != "" && *req.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(db, *req.Email)
		switch {
		case err == nil && existing.ID != user.ID:
			log.Warn("email already registered", "email", *req.Email)
			return nil, apperrors.Conflict(apperrors.DomainUser, msgEmailAlreadyRegistered)
		case err != nil && !errors.Is(err, repositories.ErrUserNotFound):
			log.Error("failed to look up user by email", "error", err)
			return nil, handleUserError(err, id)
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			log.Error("failed to hash password", "error", err)
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(db, user); err != nil {
		log.Error("failed to update user", "user_id", id, "error", err)
		return nil, handleUserError(err, id)
	}

	log.Info("user updated", "user_id", id)
	return dto.NewUserResponse(user), nil
}

func (s *userService) Remove(ctx context.Context, db *gorm.DB, id uint) (*dto.UserResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Info("start removing user", "user_id", id)
	db = withContext(ctx, db)

	user, err := s.CheckExists(ctx, db, id)
	if err != nil {
		return nil, err
	}

	// Snapshot before the row (and its applications) go away.
	removed := dto.NewUserResponse(user)

	if err := s.userRepo.Delete(db, user); err != nil {
		log.Error("failed to remove user", "user_id", id, "error", err)
		return nil, handleUserError(err, id)
	}

	log.Info("user removed", "user_id", id)
	return removed, nil
}

func (s *userService) CheckExists(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(withContext(ctx, db), id)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			logger.FromContext(ctx, s.log).Error("failed to find user", "user_id", id, "error", err)
		}
		return nil, handleUserError(err, id)
	}
	return user, nil
}

func handleUserError(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.NotFound(apperrors.DomainUser, id)
	}
	if errors.Is(err, repositories.ErrUserAlreadyExists) {
		return apperrors.Conflict(apperrors.DomainUser, msgEmailAlreadyRegistered)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
