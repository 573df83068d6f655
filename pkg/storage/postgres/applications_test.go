package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
)

func TestPgSQL_Applications(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	talent := newTalent(t, pgSQL, "75011", 30, &paris, 1)
	project := newProject(t, pgSQL, domain.UserID(uuid.New()), domain.ProjectStatusPublished, &paris, false, 1)

	application, err := pgSQL.StoreApplication(ctx, domain.Application{
		ProjectID: project.ID,
		TalentID:  talent.UserID,
		Message:   "Disponible dès lundi",
		Status:    domain.ApplicationStatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusPending, application.Status)

	t.Run("duplicate application", func(t *testing.T) {
		_, err := pgSQL.StoreApplication(ctx, domain.Application{
			ProjectID: project.ID,
			TalentID:  talent.UserID,
			Status:    domain.ApplicationStatusPending,
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("list and fetch", func(t *testing.T) {
		list, err := pgSQL.ProjectApplications(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, application.ID, list[0].ID)

		got, err := pgSQL.ApplicationByID(ctx, application.ID)
		require.NoError(t, err)
		require.Equal(t, "Disponible dès lundi", got.Message)

		missing, err := pgSQL.ApplicationByID(ctx, domain.ApplicationID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("status transition", func(t *testing.T) {
		accepted, err := pgSQL.UpdateApplicationStatus(ctx, application.ID,
			domain.ApplicationStatusPending, domain.ApplicationStatusAccepted)
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationStatusAccepted, accepted.Status)

		again, err := pgSQL.UpdateApplicationStatus(ctx, application.ID,
			domain.ApplicationStatusPending, domain.ApplicationStatusRejected)
		require.NoError(t, err)
		require.Nil(t, again)
	})
}
