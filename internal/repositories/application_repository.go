package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobtracker_backend/internal/database"
	"jobtracker_backend/internal/models"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application with this link already exists for user")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id uint) (*models.Application, error)
	FindAll(db *gorm.DB) ([]models.Application, error)
	FindByUserAndLink(db *gorm.DB, userID uint, link string) (*models.Application, error)
	Update(db *gorm.DB, app *models.Application) error
	Delete(db *gorm.DB, app *models.Application) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Application, error) {
	var app models.Application
	err := db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Application, error) {
	var apps []models.Application
	err := db.Order("id ASC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByUserAndLink(db *gorm.DB, userID uint, link string) (*models.Application, error) {
	var app models.Application
	err := db.Where("user_id = ? AND link = ?", userID, link).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// Update writes every mutable column of app.
func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, app *models.Application) error {
	err := db.Model(app).Updates(map[string]interface{}{
		"title":            app.Title,
		"link":             app.Link,
		"recruiter":        app.Recruiter,
		"company":          app.Company,
		"status":           app.Status,
		"follow_up_status": app.FollowUpStatus,
		"user_id":          app.UserID,
		"updated_at":       time.Now(),
	}).Error
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, app *models.Application) error {
	result := db.Delete(app)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
