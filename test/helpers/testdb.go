package helpers

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services/dto"
)

var seq atomic.Int64

// UniqueEmail returns a fresh address for each call.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, seq.Add(1))
}

// CreateUser registers a user through the API.
func CreateUser(t *testing.T, ts *TestServer, email string) dto.UserResponse {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/users", map[string]interface{}{
		"email":    email,
		"name":     "Test User",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user dto.UserResponse
	DecodeJSON(t, body, &user)
	return user
}

// CreateApplication registers an application for userID through the API.
func CreateApplication(t *testing.T, ts *TestServer, userID uint, link string) dto.ApplicationResponse {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/applications", ApplicationBody(userID, link))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var app dto.ApplicationResponse
	DecodeJSON(t, body, &app)
	return app
}

// ApplicationBody is a valid create payload.
func ApplicationBody(userID uint, link string) map[string]interface{} {
	return map[string]interface{}{
		"title":          "Node Developer",
		"link":           link,
		"recruiter":      "John Doe",
		"company":        "Tech Corp",
		"status":         models.ApplicationStatusApplied,
		"followUpStatus": models.FollowUpStatusToDo,
		"userId":         userID,
	}
}
