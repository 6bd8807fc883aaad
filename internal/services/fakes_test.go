package services

import (
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"jobtracker_backend/internal/models"
	"jobtracker_backend/internal/repositories"
)

// memStore is an in-memory stand-in for the database shared by both fake repositories.
type memStore struct {
	mu        sync.Mutex
	nextUser  uint
	nextApp   uint
	users     map[uint]models.User
	apps      map[uint]models.Application
	failWith  error
	createHit int
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uint]models.User),
		apps:  make(map[uint]models.Application),
	}
}

func (s *memStore) appsOf(userID uint) []models.Application {
	var out []models.Application
	for _, a := range s.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	r.s.createHit++
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.s.nextUser++
	now := time.Now()
	user.ID, user.CreatedAt, user.UpdatedAt = r.s.nextUser, now, now
	stored := *user
	stored.Applications = nil
	r.s.users[user.ID] = stored
	return nil
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	u.Applications = r.s.appsOf(id)
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ *gorm.DB) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u.Applications = r.s.appsOf(u.ID)
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	for _, u := range r.s.users {
		if u.Email == user.Email && u.ID != user.ID {
			return repositories.ErrUserAlreadyExists
		}
	}
	user.UpdatedAt = time.Now()
	stored := *user
	stored.Applications = nil
	r.s.users[user.ID] = stored
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.s.users, user.ID)
	for id, a := range r.s.apps {
		if a.UserID == user.ID {
			delete(r.s.apps, id)
		}
	}
	return nil
}

type fakeAppRepo struct{ s *memStore }

func (r *fakeAppRepo) Create(_ *gorm.DB, app *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	r.s.createHit++
	for _, a := range r.s.apps {
		if a.UserID == app.UserID && a.Link == app.Link {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	r.s.nextApp++
	now := time.Now()
	app.ID, app.CreatedAt, app.UpdatedAt = r.s.nextApp, now, now
	r.s.apps[app.ID] = *app
	return nil
}

func (r *fakeAppRepo) FindByID(_ *gorm.DB, id uint) (*models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return &a, nil
}

func (r *fakeAppRepo) FindAll(_ *gorm.DB) ([]models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]models.Application, 0, len(r.s.apps))
	for _, a := range r.s.apps {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAppRepo) FindByUserAndLink(_ *gorm.DB, userID uint, link string) (*models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.apps {
		if a.UserID == userID && a.Link == link {
			return &a, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeAppRepo) Update(_ *gorm.DB, app *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.apps {
		if a.ID != app.ID && a.UserID == app.UserID && a.Link == app.Link {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	app.UpdatedAt = time.Now()
	r.s.apps[app.ID] = *app
	return nil
}

func (r *fakeAppRepo) Delete(_ *gorm.DB, app *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.apps[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.s.apps, app.ID)
	return nil
}
