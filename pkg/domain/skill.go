package domain

// SkillID identifies an entry of the skills reference list.
type SkillID int64

// Skill is a competence a talent can hold and a project can require.
type Skill struct {
	ID       SkillID `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
}
