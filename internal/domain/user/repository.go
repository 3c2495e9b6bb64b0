package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/appointment-api/internal/models"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

type Repository interface {
	// Create assigns a fresh ID and stores u. A duplicate email yields
	// ErrEmailTaken.
	Create(ctx context.Context, u *models.User) error

	FindByEmail(ctx context.Context, email string) (*models.User, error)

	FindByID(ctx context.Context, id string) (*models.User, error)
}
