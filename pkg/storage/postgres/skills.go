package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"marketplace/pkg/domain"
)

const (
	skillsTable        = "skills"
	talentSkillsTable  = "talent_skills"
	projectSkillsTable = "project_skills"
)

// Skills returns every skill ordered by category then name.
func (p *PgSQL) Skills(ctx context.Context) ([]domain.Skill, error) {
	var rows []PgSkill
	if err := p.Builder.From(skillsTable).
		Order(goqu.I("category").Asc(), goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch skills from pg: %w", err)
	}

	return toDomain(rows, (*PgSkill).ToDomain), nil
}

// SkillsByIDs returns the existing skills among ids.
func (p *PgSQL) SkillsByIDs(ctx context.Context, ids ...domain.SkillID) ([]domain.Skill, error) {
	if len(ids) == 0 {
		return []domain.Skill{}, nil
	}

	var rows []PgSkill
	if err := p.Builder.From(skillsTable).
		Where(goqu.I("id").In(skillArgs(ids)...)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch skills by ids from pg: %w", err)
	}

	return toDomain(rows, (*PgSkill).ToDomain), nil
}

type pgOwnedSkill struct {
	OwnerID string `db:"owner_id"`
	SkillID int64  `db:"skill_id"`
}

// ownedSkills loads the skills of many owners (talents or projects) in one
// query, keyed by owner id.
func (p *PgSQL) ownedSkills(ctx context.Context, table, ownerColumn string, owners []any) (map[string][]domain.SkillID, error) {
	out := make(map[string][]domain.SkillID, len(owners))
	if len(owners) == 0 {
		return out, nil
	}

	var rows []pgOwnedSkill
	if err := p.Builder.From(table).
		Select(goqu.L("?::TEXT", goqu.I(ownerColumn)).As("owner_id"), goqu.I("skill_id")).
		Where(goqu.I(ownerColumn).In(owners...)).
		Order(goqu.I("skill_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch %s from pg: %w", table, err)
	}

	for _, r := range rows {
		out[r.OwnerID] = append(out[r.OwnerID], domain.SkillID(r.SkillID))
	}

	return out, nil
}

// replaceSkills deletes the skills of owner and inserts skillIDs.
func (p *PgSQL) replaceSkills(ctx context.Context, table, ownerColumn string, owner any, skillIDs []domain.SkillID) error {
	if _, err := p.Builder.Delete(table).
		Where(goqu.I(ownerColumn).Eq(owner)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete %s in pg: %w", table, err)
	}

	return p.insertSkills(ctx, table, ownerColumn, owner, skillIDs)
}

func (p *PgSQL) insertSkills(ctx context.Context, table, ownerColumn string, owner any, skillIDs []domain.SkillID) error {
	if len(skillIDs) == 0 {
		return nil
	}

	rows := make([]goqu.Record, 0, len(skillIDs))
	for _, id := range skillIDs {
		rows = append(rows, goqu.Record{ownerColumn: owner, "skill_id": int64(id)})
	}

	if _, err := p.Builder.Insert(table).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert %s in pg: %w", table, err)
	}

	return nil
}

func skillArgs(ids []domain.SkillID) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}

	return out
}
