package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/test/helpers"
)

func TestUsers_CRUD(t *testing.T) {
	ts := GetTestServer(t)

	user := helpers.CreateUser(t, ts, "bob.bobo@outlook.com")
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.Applications)

	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, "password")

	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/users/%d", user.ID), map[string]string{"name": "Robert Bobson"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated dto.UserResponse
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "Robert Bobson", updated.Name)
	assert.Equal(t, "bob.bobo@outlook.com", updated.Email)

	res, body = ts.SendRequest(t, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var all []dto.UserResponse
	helpers.DecodeJSON(t, body, &all)
	require.Len(t, all, 1)

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, fmt.Sprintf("User with ID %d not found", user.ID))
}

func TestUsers_PasswordIsHashedAtRest(t *testing.T) {
	ts := GetTestServer(t)
	user := helpers.CreateUser(t, ts, helpers.UniqueEmail("hash"))

	var stored models.User
	require.NoError(t, ts.DB.First(&stored, user.ID).Error)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("password123", stored.PasswordHash))
}

func TestUsers_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	helpers.CreateUser(t, ts, "dup@test.com")
	other := helpers.CreateUser(t, ts, "other@test.com")

	res, body := ts.SendRequest(t, http.MethodPost, "/users", map[string]string{
		"email":    "dup@test.com",
		"name":     "Second User",
		"password": "pass1234",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "Email already registered")

	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/users/%d", other.ID), map[string]string{"email": "dup@test.com"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "Email already registered")

	var count int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("email = ?", "dup@test.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUsers_DeleteCascadesToApplications(t *testing.T) {
	ts := GetTestServer(t)
	user := helpers.CreateUser(t, ts, helpers.UniqueEmail("cascade"))
	app := helpers.CreateApplication(t, ts, user.ID, "http://jobs.com/cascade")

	res, body := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var removed dto.UserResponse
	helpers.DecodeJSON(t, body, &removed)
	assert.Len(t, removed.Applications, 1)

	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/applications/%d", app.ID), nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUsers_Validation(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/users", map[string]string{
		"email":    "nope",
		"name":     "abc",
		"password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")

	res, _ = ts.SendRequest(t, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
