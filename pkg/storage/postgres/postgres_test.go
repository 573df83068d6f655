package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"marketplace"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage/postgres"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB) error {
	migrations, err := fs.Sub(marketplace.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	err = runMigrations(pgSQL.DB.(*sql.DB))
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

// Paris, Versailles (~17 km) and Lyon (~392 km).
var (
	paris      = domain.Coordinates{Lat: 48.8566, Lon: 2.3522}
	versailles = domain.Coordinates{Lat: 48.8049, Lon: 2.1204}
	lyon       = domain.Coordinates{Lat: 45.7640, Lon: 4.8357}
)

func newTalent(t *testing.T, pg *postgres.PgSQL, postalCode string, radius float64, loc *domain.Coordinates, skills ...domain.SkillID) domain.Talent {
	t.Helper()
	ctx := context.Background()

	stored, err := pg.UpsertTalent(ctx, domain.Talent{
		UserID:        domain.UserID(uuid.New()),
		DisplayName:   "Camille",
		PostalCode:    postalCode,
		City:          "Somewhere",
		MaxDistanceKm: radius,
		Available:     true,
	})
	require.NoError(t, err)
	require.NoError(t, pg.SetTalentSkills(ctx, stored.UserID, skills...))
	if loc != nil {
		ok, err := pg.UpdateTalentLocation(ctx, stored.UserID, postalCode, *loc)
		require.NoError(t, err)
		require.True(t, ok)
	}

	talent, err := pg.TalentByUserID(ctx, stored.UserID)
	require.NoError(t, err)

	return *talent
}

func newProject(t *testing.T, pg *postgres.PgSQL, owner domain.UserID, status domain.ProjectStatus, loc *domain.Coordinates, remote bool, skills ...domain.SkillID) domain.Project {
	t.Helper()

	stored, err := pg.StoreProject(context.Background(), domain.Project{
		OwnerID:        owner,
		Title:          "Atelier vélo",
		Phase:          domain.ProjectPhaseLaunch,
		Status:         status,
		PostalCode:     "75011",
		City:           "Paris",
		Location:       loc,
		RemotePossible: remote,
		SkillIDs:       skills,
	})
	require.NoError(t, err)

	return *stored
}
