package storage

import (
	"context"

	"marketplace/pkg/domain"
)

// SkillStorage reads the reference list of skills.
type SkillStorage interface {
	// Skills returns every skill ordered by category then name.
	Skills(ctx context.Context) ([]domain.Skill, error)
	// SkillsByIDs returns the skills among ids that exist. Unknown ids are skipped.
	SkillsByIDs(ctx context.Context, ids ...domain.SkillID) ([]domain.Skill, error)
}
