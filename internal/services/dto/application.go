package dto

import (
	"time"

	"jobtracker_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateApplicationRequest struct {
	Title          string                   `json:"title" validate:"required,min=4,max=30" example:"Node Developer"`
	Link           string                   `json:"link" validate:"required,url,max=512" example:"http://jobs.com/1"`
	Recruiter      string                   `json:"recruiter" validate:"required,min=4,max=30" example:"John Doe"`
	Company        string                   `json:"company" validate:"required,min=4,max=30" example:"Tech Corp"`
	Status         models.ApplicationStatus `json:"status" validate:"required,is-application-status" example:"APPLIED"`
	FollowUpStatus models.FollowUpStatus    `json:"followUpStatus" validate:"required,is-follow-up-status" example:"TO_DO"`
	UserID         uint                     `json:"userId" validate:"required,gt=0" example:"1"`
}

// UpdateApplicationRequest is a partial update: nil fields keep their stored value.
type UpdateApplicationRequest struct {
	Title          *string                   `json:"title,omitempty" validate:"omitempty,min=4,max=30"`
	Link           *string                   `json:"link,omitempty" validate:"omitempty,url,max=512"`
	Recruiter      *string                   `json:"recruiter,omitempty" validate:"omitempty,min=4,max=30"`
	Company        *string                   `json:"company,omitempty" validate:"omitempty,min=4,max=30"`
	Status         *models.ApplicationStatus `json:"status,omitempty" validate:"omitempty,is-application-status"`
	FollowUpStatus *models.FollowUpStatus    `json:"followUpStatus,omitempty" validate:"omitempty,is-follow-up-status"`
	UserID         *uint                     `json:"userId,omitempty" validate:"omitempty,gt=0"`
}

// ======================
// Response DTOs
// ======================

type ApplicationResponse struct {
	ID             uint                     `json:"id"`
	Title          string                   `json:"title"`
	Link           string                   `json:"link"`
	Recruiter      string                   `json:"recruiter"`
	Company        string                   `json:"company"`
	Status         models.ApplicationStatus `json:"status"`
	FollowUpStatus models.FollowUpStatus    `json:"followUpStatus"`
	UserID         uint                     `json:"userId"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

func NewApplicationResponse(app *models.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:             app.ID,
		Title:          app.Title,
		Link:           app.Link,
		Recruiter:      app.Recruiter,
		Company:        app.Company,
		Status:         app.Status,
		FollowUpStatus: app.FollowUpStatus,
		UserID:         app.UserID,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
}

func NewApplicationResponses(apps []models.Application) []*ApplicationResponse {
	responses := make([]*ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, NewApplicationResponse(&apps[i]))
	}
	return responses
}
