package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"marketplace/pkg/domain"
)

func nullCoordinates(c *domain.Coordinates) (sql.NullFloat64, sql.NullFloat64) {
	if c == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: c.Lat, Valid: true}, sql.NullFloat64{Float64: c.Lon, Valid: true}
}

func coordinates(lat, lon sql.NullFloat64) *domain.Coordinates {
	if !lat.Valid || !lon.Valid {
		return nil
	}

	return &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}

	return &v.Float64
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

type PgSkill struct {
	ID       int64  `db:"id"       goqu:"skipinsert"`
	Name     string `db:"name"`
	Category string `db:"category"`
}

func (p *PgSkill) ToDomain() domain.Skill {
	return domain.Skill{
		ID:       domain.SkillID(p.ID),
		Name:     p.Name,
		Category: p.Category,
	}
}

type PgTalent struct {
	UserID      uuid.UUID `db:"user_id"`
	DisplayName string    `db:"display_name"`
	Bio         string    `db:"bio"`
	PostalCode  string    `db:"postal_code"`
	City        string    `db:"city"`

	Latitude  sql.NullFloat64 `db:"latitude"  goqu:"skipinsert"`
	Longitude sql.NullFloat64 `db:"longitude" goqu:"skipinsert"`

	MaxDistanceKm float64 `db:"max_distance_km"`
	Available     bool    `db:"available"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTalent) ToDomain() domain.Talent {
	return domain.Talent{
		UserID:        domain.UserID(p.UserID),
		DisplayName:   p.DisplayName,
		Bio:           p.Bio,
		PostalCode:    p.PostalCode,
		City:          p.City,
		Location:      coordinates(p.Latitude, p.Longitude),
		MaxDistanceKm: p.MaxDistanceKm,
		Available:     p.Available,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (p *PgTalent) FromDomain(t domain.Talent) {
	lat, lon := nullCoordinates(t.Location)
	*p = PgTalent{
		UserID:        uuid.UUID(t.UserID),
		DisplayName:   t.DisplayName,
		Bio:           t.Bio,
		PostalCode:    t.PostalCode,
		City:          t.City,
		Latitude:      lat,
		Longitude:     lon,
		MaxDistanceKm: t.MaxDistanceKm,
		Available:     t.Available,
		CreatedAt:     t.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  t.UpdatedAt,
			Valid: !t.UpdatedAt.IsZero(),
		},
	}
}

// PgNearbyTalent is a talent row annotated by the distance subquery.
type PgNearbyTalent struct {
	PgTalent

	DistanceKm sql.NullFloat64 `db:"distance_km"`
}

type PgProject struct {
	ID          uuid.UUID `db:"id"       goqu:"skipinsert"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Phase       string    `db:"phase"`
	Status      string    `db:"status"`
	PostalCode  string    `db:"postal_code"`
	City        string    `db:"city"`

	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`

	RemotePossible bool `db:"remote_possible"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProject) ToDomain() domain.Project {
	return domain.Project{
		ID:             domain.ProjectID(p.ID),
		OwnerID:        domain.UserID(p.OwnerID),
		Title:          p.Title,
		Description:    p.Description,
		Phase:          domain.ProjectPhase(p.Phase),
		Status:         domain.ProjectStatus(p.Status),
		PostalCode:     p.PostalCode,
		City:           p.City,
		Location:       coordinates(p.Latitude, p.Longitude),
		RemotePossible: p.RemotePossible,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgProject) FromDomain(project domain.Project) {
	lat, lon := nullCoordinates(project.Location)
	*p = PgProject{
		ID:             uuid.UUID(project.ID),
		OwnerID:        uuid.UUID(project.OwnerID),
		Title:          project.Title,
		Description:    project.Description,
		Phase:          string(project.Phase),
		Status:         string(project.Status),
		PostalCode:     project.PostalCode,
		City:           project.City,
		Latitude:       lat,
		Longitude:      lon,
		RemotePossible: project.RemotePossible,
		CreatedAt:      project.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  project.UpdatedAt,
			Valid: !project.UpdatedAt.IsZero(),
		},
	}
}

// PgNearbyProject is a project row annotated by the distance subquery.
type PgNearbyProject struct {
	PgProject

	DistanceKm sql.NullFloat64 `db:"distance_km"`
}

type PgApplication struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`
	TalentID  uuid.UUID `db:"talent_id"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() domain.Application {
	return domain.Application{
		ID:        domain.ApplicationID(p.ID),
		ProjectID: domain.ProjectID(p.ProjectID),
		TalentID:  domain.UserID(p.TalentID),
		Message:   p.Message,
		Status:    domain.ApplicationStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgApplication) FromDomain(a domain.Application) {
	*p = PgApplication{
		ID:        uuid.UUID(a.ID),
		ProjectID: uuid.UUID(a.ProjectID),
		TalentID:  uuid.UUID(a.TalentID),
		Message:   a.Message,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

type PgNotification struct {
	ID            uuid.UUID     `db:"id"             goqu:"skipinsert"`
	UserID        uuid.UUID     `db:"user_id"`
	Kind          string        `db:"kind"`
	ProjectID     uuid.NullUUID `db:"project_id"`
	ApplicationID uuid.NullUUID `db:"application_id"`
	Score         int           `db:"score"`
	Message       string        `db:"message"`

	ReadAt    sql.NullTime `db:"read_at"    goqu:"skipinsert"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() domain.Notification {
	n := domain.Notification{
		ID:        domain.NotificationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Kind:      domain.NotificationKind(p.Kind),
		ProjectID: domain.ProjectID(p.ProjectID.UUID),
		Score:     p.Score,
		Message:   p.Message,
		ReadAt:    p.ReadAt.Time,
		CreatedAt: p.CreatedAt,
	}
	if p.ApplicationID.Valid {
		id := domain.ApplicationID(p.ApplicationID.UUID)
		n.ApplicationID = &id
	}

	return n
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		ID:        uuid.UUID(n.ID),
		UserID:    uuid.UUID(n.UserID),
		Kind:      string(n.Kind),
		ProjectID: nullUUID(uuid.UUID(n.ProjectID)),
		Score:     n.Score,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
	if n.ApplicationID != nil {
		p.ApplicationID = nullUUID(uuid.UUID(*n.ApplicationID))
	}
}

func toDomain[P any, D any](rows []P, conv func(*P) D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, conv(&rows[i]))
	}

	return out
}
