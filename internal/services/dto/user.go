package dto

import (
	"time"

	"jobtracker_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email" example:"bob.bobo@outlook.com"`
	Name     string `json:"name" validate:"required,min=4,max=30" example:"Bob Bobson"`
	Password string `json:"password" validate:"required,min=4,max=20" example:"test123"`
}

// UpdateUserRequest is a partial update: nil fields keep their stored value.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=4,max=30"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4,max=20"`
}

// ======================
// Response DTOs
// ======================

// UserResponse is the public view of a user. It never carries the password.
type UserResponse struct {
	ID           uint                   `json:"id"`
	Email        string                 `json:"email"`
	Name         string                 `json:"name"`
	Applications []*ApplicationResponse `json:"applications"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func NewUserResponse(user *models.User) *UserResponse {
	applications := make([]*ApplicationResponse, 0, len(user.Applications))
	for i := range user.Applications {
		applications = append(applications, NewApplicationResponse(&user.Applications[i]))
	}

	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Applications: applications,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func NewUserResponses(users []models.User) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, NewUserResponse(&users[i]))
	}
	return responses
}
