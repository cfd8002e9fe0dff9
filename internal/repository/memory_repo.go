package repository

import (
	"context"
	"sync"

	"go-blog-api/internal/model"
)

// MemoryUserRepository is a map-backed stand-in for the Postgres repository.
// Tests use it to exercise services and handlers without a database.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]model.User{}}
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := model.NormalizeEmail(email)
	for _, u := range r.users {
		if model.NormalizeEmail(u.Email) == key {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (r *MemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := model.NormalizeEmail(u.Email)
	for _, existing := range r.users {
		if model.NormalizeEmail(existing.Email) == key {
			return model.ErrDuplicateEmail
		}
	}

	r.users[u.ID] = u
	return nil
}

func (r *MemoryUserRepository) UpdateProfile(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[u.ID]
	if !ok {
		return model.ErrUserNotFound
	}

	existing.Name = u.Name
	existing.Bio = u.Bio
	existing.Avatar = u.Avatar
	existing.UpdatedAt = u.UpdatedAt
	r.users[u.ID] = existing
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *MemoryUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}
