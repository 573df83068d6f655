package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"

	"marketplace/internal/locator"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
	"marketplace/pkg/storage/postgres"
)

func draftProject(owner domain.UserID, postalCode string) domain.Project {
	return domain.Project{
		OwnerID:    owner,
		Title:      "Épicerie solidaire",
		Phase:      domain.ProjectPhaseIdea,
		Status:     domain.ProjectStatusDraft,
		PostalCode: postalCode,
		City:       "Nantes",
	}
}

// storeWithGeocoding stores a draft project and queues its geocoding job on s,
// the way project creation does.
func storeWithGeocoding(ctx context.Context, s storage.AllStorage, project domain.Project) (*domain.Project, error) {
	stored, err := s.StoreProject(ctx, project)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if _, err := s.AddJob(ctx, locator.JobArgs{
		Target:     locator.TargetProject,
		ID:         uuid.UUID(stored.ID),
		PostalCode: stored.PostalCode,
		City:       stored.City,
	}, nil); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return stored, nil
}

func TestPgSQL_TxStateErrors(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.WithTx(ctx, func(storage.AllStorage) error { return nil }), storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_WithTx_CommitsProjectAndGeocodingJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	migrateRiver(t, pg)
	ctx := context.Background()

	var project *domain.Project
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		project, err = storeWithGeocoding(ctx, s, draftProject(domain.UserID(uuid.New()), "44000"))

		return err
	})
	require.NoError(t, err)

	found, err := pg.ProjectByID(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "44000", found.PostalCode)

	job := rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&locator.JobArgs{},
		&rivertest.RequireInsertedOpts{Queue: locator.Queue},
	)
	require.Equal(t, locator.TargetProject, job.Args.Target)
	require.Equal(t, uuid.UUID(project.ID), job.Args.ID)
}

func TestPgSQL_WithTx_RollsBackProjectAndGeocodingJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	migrateRiver(t, pg)
	ctx := context.Background()

	errUnknownSkill := errors.New("unknown skill")
	var project *domain.Project
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		if project, err = storeWithGeocoding(ctx, s, draftProject(domain.UserID(uuid.New()), "44100")); err != nil {
			return err
		}

		return errUnknownSkill
	})
	require.ErrorIs(t, err, errUnknownSkill)
	require.NotNil(t, project)

	found, err := pg.ProjectByID(ctx, project.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	rivertest.RequireNotInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&locator.JobArgs{},
		nil,
	)
}

func TestPgSQL_Rollback_DiscardsTalent(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	userID := domain.UserID(uuid.New())
	_, err = txStorage.UpsertTalent(ctx, domain.Talent{
		UserID:        userID,
		DisplayName:   "Camille",
		PostalCode:    "35000",
		MaxDistanceKm: 30,
	})
	require.NoError(t, err)

	inTx, err := txStorage.TalentByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, inTx)

	require.NoError(t, txStorage.Rollback())

	talent, err := pg.TalentByUserID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, talent)
}
