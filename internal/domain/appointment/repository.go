package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/appointment-api/internal/models"
)

// ErrRecordNotFound is returned by a Repository when the addressed
// appointment does not exist.
var ErrRecordNotFound = errors.New("appointment record not found")

// Repository is the persistence contract for appointments. Each method is
// expected to be atomic for the single record it touches.
type Repository interface {
	// Insert assigns a fresh ID and the timestamps, then stores ap.
	Insert(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// FindByOwner returns the owner's appointments in store order.
	FindByOwner(
		ctx context.Context,
		owner string,
	) ([]models.Appointment, error)

	FindByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// UpdateByID merges changes into the stored record and returns the
	// result, or ErrRecordNotFound.
	UpdateByID(
		ctx context.Context,
		id string,
		changes Changes,
	) (*models.Appointment, error)

	// DeleteByID removes the record. Removing a missing record is not an
	// error; the boolean reports whether anything was deleted.
	DeleteByID(
		ctx context.Context,
		id string,
	) (bool, error)
}
