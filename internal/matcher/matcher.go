// Package matcher ranks projects for talents and talents for projects with
// the relevance engine, on top of the candidates the storage selects by
// distance.
package matcher

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"marketplace/internal/config"
	"marketplace/pkg/domain"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"marketplace/pkg/relevance"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage"
)

const tracerName = "marketplace/internal/matcher"

// Options configure how candidates are selected and when talents are notified.
type Options struct {
	// SearchRadiusKm bounds the candidates loaded from storage around the
	// talent or the project. Remote projects are loaded regardless.
	SearchRadiusKm float64
	// CandidateLimit bounds the number of projects scored per listing.
	CandidateLimit uint
	// DefaultLimit is the number of matches returned when the query sets none.
	DefaultLimit uint
	// MaxLimit caps the number of matches returned.
	MaxLimit uint
	// NotifyMinScore is the lowest score getting a project_match notification.
	NotifyMinScore int
	// NotifyTalentLimit bounds the number of talents scored per project.
	NotifyTalentLimit uint
	// Scorer computes the scores. Defaults to relevance.NewScorer().
	Scorer *relevance.Scorer
	// Metrics records business metrics. Optional.
	Metrics *metrics.Recorder
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SearchRadiusKm:    cfg.Matching.SearchRadiusKm,
		CandidateLimit:    cfg.Matching.CandidateLimit,
		DefaultLimit:      cfg.Matching.DefaultLimit,
		MaxLimit:          cfg.Matching.MaxLimit,
		NotifyMinScore:    cfg.Matching.NotifyMinScore,
		NotifyTalentLimit: cfg.Matching.NotifyTalentLimit,
	}
}

type matcher struct {
	options Options
	storage storage.Storage
	tracer  trace.Tracer
}

// Matches loads the talent and the published projects around it, scores
// them and applies the query criteria.
func (m *matcher) Matches(ctx context.Context, userID domain.UserID, query MatchQuery) ([]Match, error) {
	ctx, span := m.tracer.Start(ctx, "Matcher.Matches",
		trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()
	start := time.Now()

	if err := validateCriteria(query.Criteria); err != nil {
		return nil, err
	}

	talent, err := m.storage.TalentByUserID(ctx, userID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("could not get talent: %w", err)
	}
	if talent == nil {
		return nil, serrors.With(serrors.ErrNotFound, "talent profile not found")
	}

	criteria := query.Criteria
	if criteria.MaxDistanceKm == nil && talent.MaxDistanceKm > 0 {
		maxDistance := talent.MaxDistanceKm
		criteria.MaxDistanceKm = &maxDistance
	}

	candidates, err := m.storage.NearbyProjects(ctx, storage.NearbyQuery{
		Origin:       talent.Location,
		RadiusKm:     m.options.SearchRadiusKm,
		ExcludeOwner: &userID,
		Limit:        m.options.CandidateLimit,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("could not get nearby projects: %w", err)
	}

	projects := make(map[domain.ProjectID]domain.Project, len(candidates))
	input := make([]relevance.ProjectCandidate, 0, len(candidates))
	for i := range candidates {
		projects[candidates[i].ID] = candidates[i].Project
		input = append(input, toCandidate(candidates[i].Project, candidates[i].DistanceKm))
	}

	scored := relevance.Filter(m.options.Scorer.Score(toProfile(talent), input), criteria)
	if limit := m.limit(query.Limit); uint(len(scored)) > limit {
		scored = scored[:limit]
	}

	matches := make([]Match, 0, len(scored))
	scores := make([]int, 0, len(scored))
	for i := range scored {
		matches = append(matches, Match{ScoredProject: scored[i], Project: projects[scored[i].ID]})
		scores = append(scores, scored[i].Score)
	}

	span.SetAttributes(
		attribute.Int("matcher.candidates", len(candidates)),
		attribute.Int("matcher.results", len(matches)))
	m.options.Metrics.ObserveMatch(time.Since(start).Seconds(), scores)

	return matches, nil
}

// NotifyTalents stores a project_match notification for every available
// talent around the project scoring at least NotifyMinScore.
func (m *matcher) NotifyTalents(ctx context.Context, projectID domain.ProjectID) (int, error) {
	ctx, span := m.tracer.Start(ctx, "Matcher.NotifyTalents",
		trace.WithAttributes(attribute.String("project.id", projectID.String())))
	defer span.End()

	project, err := m.storage.ProjectByID(ctx, projectID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return 0, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return 0, serrors.With(serrors.ErrNotFound, "project not found")
	}
	if project.Status != domain.ProjectStatusPublished {
		return 0, serrors.With(serrors.ErrConflict, "project is %s", project.Status)
	}
	if project.Location == nil && !project.RemotePossible {
		return 0, serrors.With(serrors.ErrUnavailable, "project is not located yet")
	}

	talents, err := m.storage.TalentsNear(ctx, storage.TalentQuery{
		Origin:            project.Location,
		RadiusKm:          m.options.SearchRadiusKm,
		IncludeOutOfRange: project.RemotePossible,
		Limit:             m.options.NotifyTalentLimit,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return 0, fmt.Errorf("could not get nearby talents: %w", err)
	}

	var notifications []domain.Notification
	for i := range talents {
		if talents[i].UserID == project.OwnerID {
			continue
		}

		scored := m.options.Scorer.ScoreOne(toProfile(&talents[i].Talent), toCandidate(*project, talents[i].DistanceKm))
		if scored.Score < m.options.NotifyMinScore {
			continue
		}

		notifications = append(notifications, domain.Notification{
			UserID:    talents[i].UserID,
			Kind:      domain.NotificationKindProjectMatch,
			ProjectID: project.ID,
			Score:     scored.Score,
			Message:   fmt.Sprintf("New project %q in %s matches your profile (%d%%)", project.Title, project.City, scored.Score),
		})
	}

	span.SetAttributes(
		attribute.Int("matcher.talents", len(talents)),
		attribute.Int("matcher.matched", len(notifications)))
	if len(notifications) == 0 {
		logger.Info(ctx, "no talent to notify", zap.Int("talents", len(talents)))

		return 0, nil
	}

	stored, err := m.storage.StoreNotifications(ctx, notifications...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())

		return 0, fmt.Errorf("could not store notifications: %w", err)
	}
	m.options.Metrics.NotificationsStored(string(domain.NotificationKindProjectMatch), stored)

	logger.Info(ctx, "talents notified",
		zap.Int("talents", len(talents)),
		zap.Int("matched", len(notifications)),
		zap.Int("stored", stored))

	return stored, nil
}

func (m *matcher) limit(requested uint) uint {
	limit := requested
	if limit == 0 {
		limit = m.options.DefaultLimit
	}
	if m.options.MaxLimit > 0 && limit > m.options.MaxLimit {
		limit = m.options.MaxLimit
	}

	return limit
}

func validateCriteria(c relevance.Criteria) error {
	if c.Phase != "" && c.Phase != relevance.PhaseAll && !domain.ProjectPhase(c.Phase).Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown phase %q", c.Phase)
	}
	if d := c.MaxDistanceKm; d != nil && (math.IsNaN(*d) || math.IsInf(*d, 0) || *d < 0) {
		return serrors.With(serrors.ErrBadRequest, "max distance must be a finite, non-negative number")
	}
	if c.MinScore < relevance.MinScore || c.MinScore > relevance.MaxScore {
		return serrors.With(serrors.ErrBadRequest, "min score must be between %d and %d",
			relevance.MinScore, relevance.MaxScore)
	}

	return nil
}

func toProfile(t *domain.Talent) relevance.TalentProfile {
	return relevance.TalentProfile{
		ID:            t.UserID,
		Location:      t.Location,
		MaxDistanceKm: t.MaxDistanceKm,
		SkillIDs:      t.SkillIDs,
	}
}

func toCandidate(p domain.Project, distanceKm *float64) relevance.ProjectCandidate {
	return relevance.ProjectCandidate{
		ID:               p.ID,
		Phase:            p.Phase,
		CreatedAt:        p.CreatedAt,
		DistanceKm:       distanceKm,
		RemotePossible:   p.RemotePossible,
		RequiredSkillIDs: p.SkillIDs,
	}
}

// New creates a Matcher backed by the provided storage.
func New(storage storage.Storage, options Options) Matcher {
	if options.Scorer == nil {
		options.Scorer = relevance.NewScorer()
	}

	return &matcher{
		options: options,
		storage: storage,
		tracer:  otel.Tracer(tracerName),
	}
}
