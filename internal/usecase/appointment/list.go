package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewListAppointments(
	repo domain.Repository,
	log *zap.Logger,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		log:  log,
	}
}

// Execute returns every appointment owned by callerID, never nil.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	callerID string,
) ([]models.Appointment, error) {

	if callerID == "" {
		return nil, domain.ErrUnauthenticated()
	}

	apps, err := uc.repo.FindByOwner(ctx, callerID)
	if err != nil {
		return nil, storeFailure(uc.log, "list", err)
	}
	if apps == nil {
		apps = []models.Appointment{}
	}

	return apps, nil
}
