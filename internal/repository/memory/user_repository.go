package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*domain.User),
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepository) Create(ctx context.Context, id string, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *user
	clone.ID = id
	clone.CreatedAt = time.Now()
	r.users[id] = &clone
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[id]
	if !exists {
		return apperrors.ErrUserNotFound
	}

	if v, ok := fields["name"].(string); ok {
		user.Name = v
	}
	if v, ok := fields["phone"].(string); ok {
		user.Phone = v
	}
	if v, ok := fields["image_url"].(string); ok {
		user.ImageURL = v
	}
	if v, ok := fields["device_token"].(string); ok {
		user.DeviceToken = v
	}
	return nil
}
