package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "github.com/BruksfildServices01/appointment-api/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-api/internal/httperr"
	"github.com/BruksfildServices01/appointment-api/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-api/internal/models"
)

type useCases struct {
	repo   domain.Repository
	list   *ListAppointments
	create *CreateAppointment
	update *UpdateAppointment
	delete *DeleteAppointment
}

func newUseCases(t *testing.T, repo domain.Repository) useCases {
	t.Helper()
	log := zaptest.NewLogger(t)
	return useCases{
		repo:   repo,
		list:   NewListAppointments(repo, log),
		create: NewCreateAppointment(repo, log),
		update: NewUpdateAppointment(repo, log),
		delete: NewDeleteAppointment(repo, log),
	}
}

func setup(t *testing.T) useCases {
	return newUseCases(t, repository.NewAppointmentMemoryRepository())
}

func requireKind(t *testing.T, err error, kind httperr.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, httperr.KindOf(err), "error: %v", err)
}

// failingRepo fails every call with err.
type failingRepo struct {
	err error
	ap  *models.Appointment
}

func (f failingRepo) Insert(context.Context, *models.Appointment) error { return f.err }

func (f failingRepo) FindByOwner(context.Context, string) ([]models.Appointment, error) {
	return nil, f.err
}

func (f failingRepo) FindByID(context.Context, string) (*models.Appointment, error) {
	if f.ap != nil {
		return f.ap, nil
	}
	return nil, f.err
}

func (f failingRepo) UpdateByID(context.Context, string, domain.Changes) (*models.Appointment, error) {
	return nil, f.err
}

func (f failingRepo) DeleteByID(context.Context, string) (bool, error) { return false, f.err }

func TestOwnerScopedFlow(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	created, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "U1", created.Owner)
	assert.Equal(t, "dentist", created.Text)

	mine, err := uc.list.Execute(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	theirs, err := uc.list.Execute(ctx, "U2")
	require.NoError(t, err)
	assert.NotNil(t, theirs)
	assert.Empty(t, theirs)

	_, err = uc.update.Execute(ctx, "U2", created.ID, domain.Fields{"text": "x"})
	requireKind(t, err, httperr.KindAuthorization)

	stored, err := uc.repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "dentist", stored.Text)

	id, err := uc.delete.Execute(ctx, "U1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	mine, err = uc.list.Execute(ctx, "U1")
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = uc.delete.Execute(ctx, "U1", created.ID)
	requireKind(t, err, httperr.KindNotFound)
}

func TestListAppointments(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		_, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": text})
		require.NoError(t, err)
	}
	_, err := uc.create.Execute(ctx, "U2", domain.Fields{"text": "other"})
	require.NoError(t, err)

	apps, err := uc.list.Execute(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, apps, 3)
	for i, text := range []string{"a", "b", "c"} {
		assert.Equal(t, text, apps[i].Text)
		assert.Equal(t, "U1", apps[i].Owner)
	}

	_, err = uc.list.Execute(ctx, "")
	requireKind(t, err, httperr.KindAuthentication)
}

func TestCreateAppointment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.Fields
	}{
		{"missing text", domain.Fields{}},
		{"empty text", domain.Fields{"text": ""}},
		{"non-string text", domain.Fields{"text": 42}},
		{"nil payload", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := setup(t)
			ctx := context.Background()

			_, err := uc.create.Execute(ctx, "U1", tt.payload)
			requireKind(t, err, httperr.KindValidation)
			assert.True(t, httperr.IsBusiness(err, "missing_text_field"))

			apps, err := uc.list.Execute(ctx, "U1")
			require.NoError(t, err)
			assert.Empty(t, apps)
		})
	}
}

func TestCreateAppointment_IgnoresIdentityKeys(t *testing.T) {
	uc := setup(t)

	ap, err := uc.create.Execute(context.Background(), "U1", domain.Fields{
		"text":  "dentist",
		"owner": "U2",
		"id":    "chosen-id",
	})
	require.NoError(t, err)
	assert.Equal(t, "U1", ap.Owner)
	assert.NotEqual(t, "chosen-id", ap.ID)
}

func TestCreateAppointment_ValidatesBeforeCaller(t *testing.T) {
	uc := setup(t)

	_, err := uc.create.Execute(context.Background(), "", domain.Fields{})
	requireKind(t, err, httperr.KindValidation)

	_, err = uc.create.Execute(context.Background(), "", domain.Fields{"text": "dentist"})
	requireKind(t, err, httperr.KindAuthentication)
}

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("merges text", func(t *testing.T) {
		uc := setup(t)
		ap, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
		require.NoError(t, err)

		got, err := uc.update.Execute(ctx, "U1", ap.ID, domain.Fields{"text": "dentist 3pm"})
		require.NoError(t, err)
		assert.Equal(t, ap.ID, got.ID)
		assert.Equal(t, "dentist 3pm", got.Text)
		assert.Equal(t, "U1", got.Owner)
	})

	t.Run("owner is not reassignable", func(t *testing.T) {
		uc := setup(t)
		ap, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
		require.NoError(t, err)

		got, err := uc.update.Execute(ctx, "U1", ap.ID, domain.Fields{
			"owner": "U2",
			"user":  "U2",
			"id":    "other",
			"_id":   "other",
		})
		require.NoError(t, err)
		assert.Equal(t, "U1", got.Owner)
		assert.Equal(t, ap.ID, got.ID)
		assert.Equal(t, "dentist", got.Text)

		theirs, err := uc.list.Execute(ctx, "U2")
		require.NoError(t, err)
		assert.Empty(t, theirs)
	})

	t.Run("invalid text", func(t *testing.T) {
		uc := setup(t)
		ap, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
		require.NoError(t, err)

		_, err = uc.update.Execute(ctx, "U1", ap.ID, domain.Fields{"text": ""})
		requireKind(t, err, httperr.KindValidation)
	})

	t.Run("not found regardless of caller", func(t *testing.T) {
		uc := setup(t)

		for _, caller := range []string{"U1", "U2", ""} {
			_, err := uc.update.Execute(ctx, caller, "missing", domain.Fields{"text": "x"})
			requireKind(t, err, httperr.KindNotFound)
		}
	})

	t.Run("missing caller", func(t *testing.T) {
		uc := setup(t)
		ap, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
		require.NoError(t, err)

		_, err = uc.update.Execute(ctx, "", ap.ID, domain.Fields{"text": "x"})
		requireKind(t, err, httperr.KindAuthentication)
	})

	t.Run("ownership is checked before the patch", func(t *testing.T) {
		uc := setup(t)
		ap, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
		require.NoError(t, err)

		_, err = uc.update.Execute(ctx, "U2", ap.ID, domain.Fields{"text": ""})
		requireKind(t, err, httperr.KindAuthorization)
	})
}

func TestDeleteAppointment_Ownership(t *testing.T) {
	uc := setup(t)
	ctx := context.Background()

	ap, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
	require.NoError(t, err)

	_, err = uc.delete.Execute(ctx, "U2", ap.ID)
	requireKind(t, err, httperr.KindAuthorization)

	_, err = uc.delete.Execute(ctx, "", ap.ID)
	requireKind(t, err, httperr.KindAuthentication)

	_, err = uc.delete.Execute(ctx, "U2", "missing")
	requireKind(t, err, httperr.KindNotFound)

	_, err = uc.repo.FindByID(ctx, ap.ID)
	require.NoError(t, err)
}

func TestStoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("list", func(t *testing.T) {
		uc := newUseCases(t, failingRepo{err: boom})
		_, err := uc.list.Execute(ctx, "U1")
		requireKind(t, err, httperr.KindInfrastructure)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("create", func(t *testing.T) {
		uc := newUseCases(t, failingRepo{err: boom})
		_, err := uc.create.Execute(ctx, "U1", domain.Fields{"text": "dentist"})
		requireKind(t, err, httperr.KindInfrastructure)
	})

	t.Run("lookup", func(t *testing.T) {
		uc := newUseCases(t, failingRepo{err: boom})
		_, err := uc.update.Execute(ctx, "U1", "id", domain.Fields{"text": "x"})
		requireKind(t, err, httperr.KindInfrastructure)
	})

	t.Run("write", func(t *testing.T) {
		owned := &models.Appointment{ID: "id", Text: "dentist", Owner: "U1"}
		uc := newUseCases(t, failingRepo{err: boom, ap: owned})

		_, err := uc.update.Execute(ctx, "U1", "id", domain.Fields{"text": "x"})
		requireKind(t, err, httperr.KindInfrastructure)

		_, err = uc.delete.Execute(ctx, "U1", "id")
		requireKind(t, err, httperr.KindInfrastructure)
	})

	t.Run("vanished before write", func(t *testing.T) {
		owned := &models.Appointment{ID: "id", Text: "dentist", Owner: "U1"}
		uc := newUseCases(t, failingRepo{err: domain.ErrRecordNotFound, ap: owned})

		_, err := uc.update.Execute(ctx, "U1", "id", domain.Fields{"text": "x"})
		requireKind(t, err, httperr.KindNotFound)
	})

	t.Run("empty patch skips the write", func(t *testing.T) {
		owned := &models.Appointment{ID: "id", Text: "dentist", Owner: "U1"}
		uc := newUseCases(t, failingRepo{err: boom, ap: owned})

		got, err := uc.update.Execute(ctx, "U1", "id", domain.Fields{"color": "red"})
		require.NoError(t, err)
		assert.Equal(t, "dentist", got.Text)
	})
}
