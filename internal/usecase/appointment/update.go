package appointment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

type UpdateAppointment struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo: repo,
		log:  log,
	}
}

// Execute merges patch into the caller's appointment. Identity fields in
// patch are ignored, so the owner can never be reassigned here.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	callerID string,
	id string,
	patch domain.Fields,
) (*models.Appointment, error) {

	found, err := resolveOwned(ctx, uc.repo, uc.log, "update", callerID, id)
	if err != nil {
		return nil, err
	}

	changes, err := domain.BuildChanges(patch)
	if err != nil {
		return nil, err
	}
	if changes.IsEmpty() {
		return found, nil
	}

	updated, err := uc.repo.UpdateByID(ctx, id, changes)
	if errors.Is(err, domain.ErrRecordNotFound) {
		// deleted between lookup and write
		return nil, domain.ErrNotFound()
	}
	if err != nil {
		return nil, storeFailure(uc.log, "update", err)
	}

	return updated, nil
}
