package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
)

const (
	talentsTable = "talents"
)

// UpsertTalent inserts or updates a talent profile. Stored coordinates are
// cleared when the postal code changes so that they never describe another
// place than the one the talent declared.
func (p *PgSQL) UpsertTalent(ctx context.Context, talent domain.Talent) (*domain.Talent, error) {
	var row PgTalent
	row.FromDomain(talent)

	var result PgTalent
	if _, err := p.Builder.Insert(talentsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"display_name":    goqu.L("EXCLUDED.display_name"),
			"bio":             goqu.L("EXCLUDED.bio"),
			"postal_code":     goqu.L("EXCLUDED.postal_code"),
			"city":            goqu.L("EXCLUDED.city"),
			"max_distance_km": goqu.L("EXCLUDED.max_distance_km"),
			"available":       goqu.L("EXCLUDED.available"),
			"latitude": goqu.L("CASE WHEN talents.postal_code = EXCLUDED.postal_code " +
				"THEN talents.latitude END"),
			"longitude": goqu.L("CASE WHEN talents.postal_code = EXCLUDED.postal_code " +
				"THEN talents.longitude END"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgTalent{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert talent into pg: %w", err)
	}

	t := result.ToDomain()

	return &t, nil
}

// SetTalentSkills replaces the skills held by a talent.
func (p *PgSQL) SetTalentSkills(ctx context.Context, userID domain.UserID, skillIDs ...domain.SkillID) error {
	return p.replaceSkills(ctx, talentSkillsTable, "user_id", uuid.UUID(userID), skillIDs)
}

// TalentByUserID fetches a talent with its skills, or nil when not found.
func (p *PgSQL) TalentByUserID(ctx context.Context, userID domain.UserID) (*domain.Talent, error) {
	var row PgTalent
	found, err := p.Builder.From(talentsTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch talent by user id: %w", err)
	}
	if !found {
		return nil, nil
	}

	skills, err := p.ownedSkills(ctx, talentSkillsTable, "user_id", []any{row.UserID})
	if err != nil {
		return nil, err
	}

	t := row.ToDomain()
	t.SkillIDs = orEmpty(skills[row.UserID.String()])

	return &t, nil
}

// UpdateTalentLocation stores coordinates for a talent whose postal code is
// still postalCode.
func (p *PgSQL) UpdateTalentLocation(ctx context.Context,
	userID domain.UserID,
	postalCode string,
	location domain.Coordinates) (bool, error) {
	res, err := p.Builder.Update(talentsTable).
		Set(goqu.Record{
			"latitude":   location.Lat,
			"longitude":  location.Lon,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("postal_code").Eq(postalCode),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update talent location in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

// TalentsNear returns available talents around the query origin. Unless
// IncludeOutOfRange is set, only located talents whose own travel radius
// (and the query radius, if any) covers the distance are returned.
func (p *PgSQL) TalentsNear(ctx context.Context, query storage.TalentQuery) ([]storage.NearbyTalent, error) {
	inner := p.Builder.From(talentsTable).
		Select(goqu.Star(), distanceExpr(query.Origin)).
		Where(goqu.I("available").IsTrue())

	var w []exp.Expression
	if query.Origin != nil && !query.IncludeOutOfRange {
		w = append(w,
			goqu.I(distanceColumn).IsNotNull(),
			goqu.I(distanceColumn).Lte(goqu.I("max_distance_km")),
		)
		if query.RadiusKm > 0 {
			w = append(w, goqu.I(distanceColumn).Lte(query.RadiusKm))
		}
	}

	ds := p.Builder.From(inner.As("t")).
		Where(w...).
		Order(goqu.I(distanceColumn).Asc().NullsLast(), goqu.I("user_id").Asc())
	if query.Limit > 0 {
		ds = ds.Limit(query.Limit)
	}

	var rows []PgNearbyTalent
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch nearby talents from pg: %w", err)
	}

	owners := make([]any, 0, len(rows))
	for _, r := range rows {
		owners = append(owners, r.UserID)
	}
	skills, err := p.ownedSkills(ctx, talentSkillsTable, "user_id", owners)
	if err != nil {
		return nil, err
	}

	out := make([]storage.NearbyTalent, 0, len(rows))
	for i := range rows {
		t := rows[i].ToDomain()
		t.SkillIDs = orEmpty(skills[rows[i].UserID.String()])
		out = append(out, storage.NearbyTalent{
			Talent:     t,
			DistanceKm: nullFloat(rows[i].DistanceKm),
		})
	}

	return out, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
