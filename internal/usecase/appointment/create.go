package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

type CreateAppointment struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo: repo,
		log:  log,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	callerID string,
	payload domain.Fields,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Payload
	// --------------------------------------------------
	ap, err := domain.NewAppointment(callerID, payload)
	if err != nil {
		return nil, err
	}

	if callerID == "" {
		return nil, domain.ErrUnauthenticated()
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	if err := uc.repo.Insert(ctx, ap); err != nil {
		return nil, storeFailure(uc.log, "create", err)
	}

	uc.log.Info("appointment created",
		zap.String("appointment_id", ap.ID),
		zap.String("owner", ap.Owner),
	)

	return ap, nil
}
