package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

// AppointmentMemoryRepository is a process-local store. Records are copied
// in and out so callers never share state with the map.
type AppointmentMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.Appointment
	order []string
	now   func() time.Time
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		byID: make(map[string]models.Appointment),
		now:  time.Now,
	}
}

func (r *AppointmentMemoryRepository) Insert(
	_ context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	ap.ID = uuid.NewString()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	r.byID[ap.ID] = *ap
	r.order = append(r.order, ap.ID)
	return nil
}

func (r *AppointmentMemoryRepository) FindByOwner(
	_ context.Context,
	owner string,
) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apps := make([]models.Appointment, 0)
	for _, id := range r.order {
		if ap, ok := r.byID[id]; ok && ap.Owner == owner {
			apps = append(apps, ap)
		}
	}
	return apps, nil
}

func (r *AppointmentMemoryRepository) FindByID(
	_ context.Context,
	id string,
) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *AppointmentMemoryRepository) UpdateByID(
	_ context.Context,
	id string,
	changes domain.Changes,
) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if changes.IsEmpty() {
		return &ap, nil
	}

	changes.ApplyTo(&ap)
	ap.UpdatedAt = r.now().UTC()
	r.byID[id] = ap
	return &ap, nil
}

func (r *AppointmentMemoryRepository) DeleteByID(
	_ context.Context,
	id string,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)

	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
