package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/services/dto"
	"jobtracker_backend/pkg/apperrors"
)

func newAppRequest(userID uint, link string) *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		Title:          "Node Developer",
		Link:           link,
		Recruiter:      "John Doe",
		Company:        "Tech Corp",
		Status:         models.ApplicationStatusApplied,
		FollowUpStatus: models.FollowUpStatusToDo,
		UserID:         userID,
	}
}

func TestApplicationService_Create(t *testing.T) {
	store, users, apps := newTestServices(t)
	ctx := context.Background()
	owner := createUser(t, users, "owner@example.com")
	other := createUser(t, users, "other@example.com")

	created, err := apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/1"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, owner.ID, created.UserID)
	assert.Equal(t, models.ApplicationStatusApplied, created.Status)
	assert.Equal(t, models.FollowUpStatusToDo, created.FollowUpStatus)

	t.Run("same link for the same user", func(t *testing.T) {
		before := len(store.apps)
		_, err := apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/1"))
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
		assert.Equal(t, "You have already registered an application with this link.", messageOf(t, err))
		assert.Len(t, store.apps, before)
	})

	t.Run("same link for another user", func(t *testing.T) {
		_, err := apps.Create(ctx, nil, newAppRequest(other.ID, "http://jobs.com/1"))
		assert.NoError(t, err)
	})

	t.Run("unknown user wins over duplicate link", func(t *testing.T) {
		before := len(store.apps)
		_, err := apps.Create(ctx, nil, newAppRequest(999, "http://jobs.com/1"))
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, "User with ID 999 not found", messageOf(t, err))
		assert.Len(t, store.apps, before)
	})
}

func TestApplicationService_FindAllAndFindOne(t *testing.T) {
	_, users, apps := newTestServices(t)
	ctx := context.Background()

	all, err := apps.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, all)

	owner := createUser(t, users, "owner@example.com")
	first, err := apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/1"))
	require.NoError(t, err)
	second, err := apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/2"))
	require.NoError(t, err)

	all, err = apps.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	got, err := apps.FindOne(ctx, nil, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://jobs.com/2", got.Link)

	_, err = apps.FindOne(ctx, nil, 77)
	require.Error(t, err)
	assert.Equal(t, "Application with ID 77 not found", messageOf(t, err))
}

func TestApplicationService_Update(t *testing.T) {
	_, users, apps := newTestServices(t)
	ctx := context.Background()

	owner := createUser(t, users, "owner@example.com")
	other := createUser(t, users, "other@example.com")
	one, err := apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/1"))
	require.NoError(t, err)
	_, err = apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/2"))
	require.NoError(t, err)
	_, err = apps.Create(ctx, nil, newAppRequest(other.ID, "http://jobs.com/3"))
	require.NoError(t, err)

	interviewing := models.ApplicationStatusInterviewing
	done := models.FollowUpStatusDone
	missingUser := uint(404)
	otherID := other.ID

	t.Run("title only", func(t *testing.T) {
		before, err := apps.FindOne(ctx, nil, one.ID)
		require.NoError(t, err)

		got, err := apps.Update(ctx, nil, one.ID, &dto.UpdateApplicationRequest{Title: strPtr("Go Developer")})
		require.NoError(t, err)
		assert.Equal(t, "Go Developer", got.Title)
		assert.Equal(t, before.ID, got.ID)
		assert.Equal(t, before.Link, got.Link)
		assert.Equal(t, before.Recruiter, got.Recruiter)
		assert.Equal(t, before.Company, got.Company)
		assert.Equal(t, before.Status, got.Status)
		assert.Equal(t, before.FollowUpStatus, got.FollowUpStatus)
		assert.Equal(t, before.UserID, got.UserID)

		stored, err := apps.FindOne(ctx, nil, one.ID)
		require.NoError(t, err)
		assert.Equal(t, "Go Developer", stored.Title)
		assert.Equal(t, before.Link, stored.Link)
		assert.Equal(t, before.UserID, stored.UserID)
	})

	t.Run("status fields", func(t *testing.T) {
		got, err := apps.Update(ctx, nil, one.ID, &dto.UpdateApplicationRequest{
			Status:         &interviewing,
			FollowUpStatus: &done,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusInterviewing, got.Status)
		assert.Equal(t, models.FollowUpStatusDone, got.FollowUpStatus)
		assert.Equal(t, "Go Developer", got.Title)
		assert.Equal(t, "http://jobs.com/1", got.Link)
	})

	t.Run("keeping its own link", func(t *testing.T) {
		got, err := apps.Update(ctx, nil, one.ID, &dto.UpdateApplicationRequest{
			Link:  strPtr("http://jobs.com/1"),
			Title: strPtr("Rust Developer"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Rust Developer", got.Title)
		assert.Equal(t, "http://jobs.com/1", got.Link)
	})

	t.Run("link taken by a sibling", func(t *testing.T) {
		_, err := apps.Update(ctx, nil, one.ID, &dto.UpdateApplicationRequest{Link: strPtr("http://jobs.com/2")})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))

		got, err := apps.FindOne(ctx, nil, one.ID)
		require.NoError(t, err)
		assert.Equal(t, "http://jobs.com/1", got.Link)
	})

	t.Run("moving to a user who already has the link", func(t *testing.T) {
		_, err := apps.Update(ctx, nil, one.ID, &dto.UpdateApplicationRequest{
			UserID: &otherID,
			Link:   strPtr("http://jobs.com/3"),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("moving to a missing user", func(t *testing.T) {
		_, err := apps.Update(ctx, nil, one.ID, &dto.UpdateApplicationRequest{UserID: &missingUser})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, "User with ID 404 not found", messageOf(t, err))
	})

	t.Run("moving to another user", func(t *testing.T) {
		got, err := apps.Update(ctx, nil, one.ID, &dto.UpdateApplicationRequest{UserID: &otherID})
		require.NoError(t, err)
		assert.Equal(t, other.ID, got.UserID)

		owned, err := users.FindOne(ctx, nil, other.ID)
		require.NoError(t, err)
		assert.Len(t, owned.Applications, 2)
	})

	t.Run("missing application", func(t *testing.T) {
		_, err := apps.Update(ctx, nil, 999, &dto.UpdateApplicationRequest{Title: strPtr("Whatever")})
		require.Error(t, err)
		assert.Equal(t, "Application with ID 999 not found", messageOf(t, err))
	})
}

func TestApplicationService_Remove(t *testing.T) {
	_, users, apps := newTestServices(t)
	ctx := context.Background()

	owner := createUser(t, users, "owner@example.com")
	app, err := apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/1"))
	require.NoError(t, err)

	removed, err := apps.Remove(ctx, nil, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app.ID, removed.ID)
	assert.Equal(t, "http://jobs.com/1", removed.Link)

	_, err = apps.FindOne(ctx, nil, app.ID)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = apps.Remove(ctx, nil, app.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// The link is free again once the application is gone.
	_, err = apps.Create(ctx, nil, newAppRequest(owner.ID, "http://jobs.com/1"))
	assert.NoError(t, err)

	user, err := users.FindOne(ctx, nil, owner.ID)
	require.NoError(t, err)
	assert.Len(t, user.Applications, 1)
}
