package service

import (
	"context"

	"go-blog-api/internal/model"
)

// UserStore is the persistence contract the services depend on. The Postgres
// repository satisfies it in production; tests plug in the in-memory one.
type UserStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
	UpdateProfile(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
