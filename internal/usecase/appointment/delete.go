package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	log *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo: repo,
		log:  log,
	}
}

// Execute permanently removes the caller's appointment and returns its id.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	callerID string,
	id string,
) (string, error) {

	if _, err := resolveOwned(ctx, uc.repo, uc.log, "delete", callerID, id); err != nil {
		return "", err
	}

	deleted, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return "", storeFailure(uc.log, "delete", err)
	}
	if !deleted {
		return "", domain.ErrNotFound()
	}

	uc.log.Info("appointment deleted",
		zap.String("appointment_id", id),
		zap.String("owner", callerID),
	)

	return id, nil
}
