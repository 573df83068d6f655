package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
)

const (
	projectsTable = "projects"
)

// StoreProject inserts a project and its required skills.
func (p *PgSQL) StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var row PgProject
	row.FromDomain(project)

	var result PgProject
	if _, err := p.Builder.Insert(projectsTable).
		Rows(row).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store project into pg: %w", err)
	}

	skillIDs := uniqueSkills(project.SkillIDs)
	if err := p.insertSkills(ctx, projectSkillsTable, "project_id", result.ID, skillIDs); err != nil {
		return nil, err
	}

	stored := result.ToDomain()
	stored.SkillIDs = skillIDs

	return &stored, nil
}

// ProjectByID fetches a project with its skills, or nil when not found.
func (p *PgSQL) ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	projects, err := p.withProjectSkills(ctx, []PgProject{row})
	if err != nil {
		return nil, err
	}

	return &projects[0], nil
}

// UpdateProjectStatus moves a project to status, guarded by its current status.
func (p *PgSQL) UpdateProjectStatus(ctx context.Context,
	id domain.ProjectID,
	status domain.ProjectStatus,
	from ...domain.ProjectStatus) (*domain.Project, error) {
	w := []exp.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if len(from) > 0 {
		statuses := make([]any, 0, len(from))
		for _, s := range from {
			statuses = append(statuses, string(s))
		}
		w = append(w, goqu.I("status").In(statuses...))
	}

	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(goqu.Record{
			"status":     string(status),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(w...).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update project status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	projects, err := p.withProjectSkills(ctx, []PgProject{row})
	if err != nil {
		return nil, err
	}

	return &projects[0], nil
}

// UpdateProjectLocation stores coordinates for a project whose postal code is
// still postalCode.
func (p *PgSQL) UpdateProjectLocation(ctx context.Context,
	id domain.ProjectID,
	postalCode string,
	location domain.Coordinates) (bool, error) {
	res, err := p.Builder.Update(projectsTable).
		Set(goqu.Record{
			"latitude":   location.Lat,
			"longitude":  location.Lon,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("postal_code").Eq(postalCode),
			goqu.I("deleted_at").IsNull(),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update project location in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

// OwnerProjects returns a page of the projects of owner, newest first.
func (p *PgSQL) OwnerProjects(ctx context.Context,
	owner domain.UserID,
	cursor time.Time,
	limit uint) (storage.OwnerProjects, error) {
	w := []exp.Expression{
		goqu.I("owner_id").Eq(uuid.UUID(owner)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	limit = max(limit, 1)

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(projectsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgProject
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.OwnerProjects{}, fmt.Errorf("could not fetch owner projects from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	projects, err := p.withProjectSkills(ctx, rows)
	if err != nil {
		return storage.OwnerProjects{}, err
	}

	return storage.OwnerProjects{
		Projects:   projects,
		NextCursor: nextCursor,
	}, nil
}

// NearbyProjects returns the published projects around the query origin with
// the distance computed by the database.
func (p *PgSQL) NearbyProjects(ctx context.Context, query storage.NearbyQuery) ([]storage.NearbyProject, error) {
	iw := []exp.Expression{
		goqu.I("status").Eq(string(domain.ProjectStatusPublished)),
		goqu.I("deleted_at").IsNull(),
	}
	if query.ExcludeOwner != nil {
		iw = append(iw, goqu.I("owner_id").Neq(uuid.UUID(*query.ExcludeOwner)))
	}
	inner := p.Builder.From(projectsTable).
		Select(goqu.Star(), distanceExpr(query.Origin)).
		Where(iw...)

	var w []exp.Expression
	if query.Origin != nil && query.RadiusKm > 0 {
		w = append(w, goqu.Or(
			goqu.I(distanceColumn).IsNull(),
			goqu.I(distanceColumn).Lte(query.RadiusKm),
			goqu.I("remote_possible").IsTrue(),
		))
	}

	ds := p.Builder.From(inner.As("p")).
		Where(w...).
		Order(
			goqu.I(distanceColumn).Asc().NullsLast(),
			goqu.I("created_at").Desc(),
			goqu.I("id").Asc(),
		)
	if query.Limit > 0 {
		ds = ds.Limit(query.Limit)
	}

	var rows []PgNearbyProject
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch nearby projects from pg: %w", err)
	}

	plain := make([]PgProject, 0, len(rows))
	for _, r := range rows {
		plain = append(plain, r.PgProject)
	}
	projects, err := p.withProjectSkills(ctx, plain)
	if err != nil {
		return nil, err
	}

	out := make([]storage.NearbyProject, 0, len(rows))
	for i := range rows {
		out = append(out, storage.NearbyProject{
			Project:    projects[i],
			DistanceKm: nullFloat(rows[i].DistanceKm),
		})
	}

	return out, nil
}

func (p *PgSQL) withProjectSkills(ctx context.Context, rows []PgProject) ([]domain.Project, error) {
	owners := make([]any, 0, len(rows))
	for _, r := range rows {
		owners = append(owners, r.ID)
	}
	skills, err := p.ownedSkills(ctx, projectSkillsTable, "project_id", owners)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(rows))
	for i := range rows {
		project := rows[i].ToDomain()
		project.SkillIDs = orEmpty(skills[rows[i].ID.String()])
		out = append(out, project)
	}

	return out, nil
}

func uniqueSkills(ids []domain.SkillID) []domain.SkillID {
	seen := make(map[domain.SkillID]struct{}, len(ids))
	out := make([]domain.SkillID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
