package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Insert(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ap.ID = uuid.NewString()
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) FindByOwner(
	ctx context.Context,
	owner string,
) ([]models.Appointment, error) {

	apps := make([]models.Appointment, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

// UpdateByID writes the changes and reads the row back in one statement.
func (r *AppointmentGormRepository) UpdateByID(
	ctx context.Context,
	id string,
	changes domain.Changes,
) (*models.Appointment, error) {

	if changes.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	values := map[string]any{"updated_at": time.Now()}
	if changes.Text != nil {
		values["text"] = *changes.Text
	}

	var ap models.Appointment
	res := r.db.WithContext(ctx).
		Model(&ap).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) DeleteByID(
	ctx context.Context,
	id string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
