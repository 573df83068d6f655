package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
)

const (
	applicationsTable = "applications"
)

// StoreApplication inserts an application, mapping the (project, talent)
// uniqueness violation to storage.ErrDuplicate.
func (p *PgSQL) StoreApplication(ctx context.Context, application domain.Application) (*domain.Application, error) {
	var row PgApplication
	row.FromDomain(application)

	var result PgApplication
	if _, err := p.Builder.Insert(applicationsTable).
		Rows(row).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store application into pg: %w", err)
	}

	a := result.ToDomain()

	return &a, nil
}

// ApplicationByID fetches an application, or nil when not found.
func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	a := row.ToDomain()

	return &a, nil
}

// ProjectApplications lists the applications of a project, oldest first.
func (p *PgSQL) ProjectApplications(ctx context.Context, projectID domain.ProjectID) ([]domain.Application, error) {
	var rows []PgApplication
	if err := p.Builder.From(applicationsTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(projectID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch project applications from pg: %w", err)
	}

	return toDomain(rows, (*PgApplication).ToDomain), nil
}

// UpdateApplicationStatus moves an application from one status to another.
func (p *PgSQL) UpdateApplicationStatus(ctx context.Context,
	id domain.ApplicationID,
	from, to domain.ApplicationStatus) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(goqu.Record{
			"status":     string(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(from)),
		).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	a := row.ToDomain()

	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
