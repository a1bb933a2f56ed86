package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cleaning-marketplace/internal/domain"
	"github.com/cleaning-marketplace/internal/domain/repository"
	apperrors "github.com/cleaning-marketplace/internal/pkg/errors"
)

type userRepository struct {
	store  *firestore.Client
	logger *zap.Logger
}

// NewUserRepository создает firestore-реализацию UserRepository
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{
		store:  client.store,
		logger: client.logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	snap, err := r.store.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, apperrors.ErrUserNotFound
		}
		r.logger.Error("Failed to get user", zap.String("id", id), zap.Error(err))
		return nil, storeErr("get user "+id, err)
	}

	var user domain.User
	if err := snap.DataTo(&user); err != nil {
		return nil, storeErr("decode user "+id, err)
	}
	user.ID = snap.Ref.ID

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, id string, user *domain.User) error {
	_, err := r.store.Collection(usersCollection).Doc(id).Set(ctx, user)
	if err != nil {
		r.logger.Error("Failed to create user", zap.String("id", id), zap.Error(err))
		return storeErr("create user "+id, err)
	}

	r.logger.Debug("User created", zap.String("id", id))
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	_, err := r.store.Collection(usersCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		r.logger.Error("Failed to update user profile", zap.String("id", id), zap.Error(err))
		return storeErr("update user profile "+id, err)
	}

	r.logger.Debug("User profile updated", zap.String("id", id))
	return nil
}
