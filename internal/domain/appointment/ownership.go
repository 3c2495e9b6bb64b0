package appointment

import (
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

type Ownership int

const (
	OwnershipOK Ownership = iota
	OwnershipNotFound
	OwnershipUnauthenticated
	OwnershipUnauthorized
)

func (o Ownership) String() string {
	switch o {
	case OwnershipOK:
		return "ok"
	case OwnershipNotFound:
		return "not_found"
	case OwnershipUnauthenticated:
		return "unauthenticated"
	case OwnershipUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// AssertOwnership checks, in order, that the record exists, that a caller
// identity is present and that the caller owns the record.
func AssertOwnership(ap *models.Appointment, callerID string) Ownership {
	if ap == nil {
		return OwnershipNotFound
	}
	if callerID == "" {
		return OwnershipUnauthenticated
	}
	if ap.Owner != callerID {
		return OwnershipUnauthorized
	}
	return OwnershipOK
}

// Err converts the result into the error surfaced to the caller; nil for OK.
func (o Ownership) Err() error {
	switch o {
	case OwnershipOK:
		return nil
	case OwnershipNotFound:
		return ErrNotFound()
	case OwnershipUnauthenticated:
		return ErrUnauthenticated()
	default:
		return httperr.Forbidden("user_not_authorized", "User not authorized.")
	}
}

func ErrNotFound() error {
	return httperr.NotFoundErr("appointment_not_found", "Appointment not found.")
}

func ErrUnauthenticated() error {
	return httperr.Unauthenticated("user_not_found", "User not found.")
}
