package appointment

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

const codeStoreUnavailable = "store_unavailable"

// resolveOwned loads id and runs the ownership check against callerID.
// A missing record is reported before the caller is looked at.
func resolveOwned(
	ctx context.Context,
	repo domain.Repository,
	log *zap.Logger,
	operation string,
	callerID string,
	id string,
) (*models.Appointment, error) {

	ap, err := repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, storeFailure(log, operation, err)
	}

	result := domain.AssertOwnership(ap, callerID)
	if result != domain.OwnershipOK {
		log.Debug("ownership check failed",
			zap.String("operation", operation),
			zap.String("appointment_id", id),
			zap.Stringer("result", result),
		)
		return nil, result.Err()
	}

	return ap, nil
}

func storeFailure(log *zap.Logger, operation string, err error) error {
	log.Error("appointment store failure",
		zap.String("operation", operation),
		zap.Error(err),
	)
	return httperr.Infrastructure(codeStoreUnavailable, err)
}
