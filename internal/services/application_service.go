package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/pkg/apperrors"
)

const msgDuplicateLink = "You have already registered an application with this link."

type ApplicationService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*dto.ApplicationResponse, error)
	FindOne(ctx context.Context, db *gorm.DB, id uint) (*dto.ApplicationResponse, error)
	Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	Remove(ctx context.Context, db *gorm.DB, id uint) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	appRepo     repositories.ApplicationRepository
	userService UserService
	log         *slog.Logger
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	userService UserService,
	log *slog.Logger,
) ApplicationService {
	if log == nil {
		log = slog.Default()
	}
	return &applicationService{
		appRepo:     appRepo,
		userService: userService,
		log:         log.With("service", "applications"),
	}
}

func (s *applicationService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Info("start creating application", "user_id", req.UserID, "link", req.Link)
	db = withContext(ctx, db)

	// The owner must exist before the link is checked.
	if _, err := s.userService.CheckExists(ctx, db, req.UserID); err != nil {
		log.Warn("application owner not found", "user_id", req.UserID)
		return nil, err
	}

	if err := s.ensureLinkAvailable(db, req.UserID, req.Link, 0); err != nil {
		log.Warn("application link rejected", "user_id", req.UserID, "link", req.Link, "error", err)
		return nil, err
	}

	app := &models.Application{
		Title:          req.Title,
		Link:           req.Link,
		Recruiter:      req.Recruiter,
		Company:        req.Company,
		Status:         req.Status,
		FollowUpStatus: req.FollowUpStatus,
		UserID:         req.UserID,
	}
	if err := s.appRepo.Create(db, app); err != nil {
		log.Error("failed to create application", "error", err)
		return nil, handleApplicationError(err, 0)
	}

	log.Info("application created", "application_id", app.ID)
	return dto.NewApplicationResponse(app), nil
}

func (s *applicationService) FindAll(ctx context.Context, db *gorm.DB) ([]*dto.ApplicationResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Debug("start listing applications")

	apps, err := s.appRepo.FindAll(withContext(ctx, db))
	if err != nil {
		log.Error("failed to list applications", "error", err)
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationResponses(apps), nil
}

func (s *applicationService) FindOne(ctx context.Context, db *gorm.DB, id uint) (*dto.ApplicationResponse, error) {
	logger.FromContext(ctx, s.log).Debug("start finding application", "application_id", id)

	app, err := s.findByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	return dto.NewApplicationResponse(app), nil
}

func (s *applicationService) Update(ctx context.Context, db *gorm.DB, id uint, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Info("start updating application", "application_id", id)
	db = withContext(ctx, db)

	app, err := s.findByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	userID, link := app.UserID, app.Link
	if req.UserID != nil {
		userID = *req.UserID
	}
	if req.Link != nil && *req.Link != "" {
		link = *req.Link
	}

	if userID != app.UserID {
		if _, err := s.userService.CheckExists(ctx, db, userID); err != nil {
			log.Warn("application owner not found", "user_id", userID)
			return nil, err
		}
	}
	if userID != app.UserID || link != app.Link {
		if err := s.ensureLinkAvailable(db, userID, link, app.ID); err != nil {
			log.Warn("application link rejected", "user_id", userID, "link", link, "error", err)
			return nil, err
		}
	}

	app.UserID = userID
	app.Link = link
	if req.Title != nil {
		app.Title = *req.Title
	}
	if req.Recruiter != nil {
		app.Recruiter = *req.Recruiter
	}
	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.Status != nil {
		app.Status = *req.Status
	}
	if req.FollowUpStatus != nil {
		app.FollowUpStatus = *req.FollowUpStatus
	}

	if err := s.appRepo.Update(db, app); err != nil {
		log.Error("failed to update application", "application_id", id, "error", err)
		return nil, handleApplicationError(err, id)
	}

	log.Info("application updated", "application_id", id)
	return dto.NewApplicationResponse(app), nil
}

func (s *applicationService) Remove(ctx context.Context, db *gorm.DB, id uint) (*dto.ApplicationResponse, error) {
	log := logger.FromContext(ctx, s.log)
	log.Info("start removing application", "application_id", id)
	db = withContext(ctx, db)

	app, err := s.findByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	removed := dto.NewApplicationResponse(app)

	if err := s.appRepo.Delete(db, app); err != nil {
		log.Error("failed to remove application", "application_id", id, "error", err)
		return nil, handleApplicationError(err, id)
	}

	log.Info("application removed", "application_id", id)
	return removed, nil
}

func (s *applicationService) findByID(ctx context.Context, db *gorm.DB, id uint) (*models.Application, error) {
	app, err := s.appRepo.FindByID(withContext(ctx, db), id)
	if err != nil {
		if !errors.Is(err, repositories.ErrApplicationNotFound) {
			logger.FromContext(ctx, s.log).Error("failed to find application", "application_id", id, "error", err)
		}
		return nil, handleApplicationError(err, id)
	}
	return app, nil
}

// ensureLinkAvailable fails with CONFLICT when another application than selfID already
// holds (userID, link). selfID is 0 on create.
func (s *applicationService) ensureLinkAvailable(db *gorm.DB, userID uint, link string, selfID uint) error {
	existing, err := s.appRepo.FindByUserAndLink(db, userID, link)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	if existing.ID != selfID {
		return apperrors.Conflict(apperrors.DomainApplication, msgDuplicateLink)
	}
	return nil
}

func handleApplicationError(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.NotFound(apperrors.DomainApplication, id)
	}
	if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
		return apperrors.Conflict(apperrors.DomainApplication, msgDuplicateLink)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
