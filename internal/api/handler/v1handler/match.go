package v1handler

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"

	"marketplace/internal/matcher"
	"marketplace/pkg/relevance"
	"marketplace/pkg/serrors"
)

// ListMatches returns the published projects ranked for the calling talent.
func (h *Handler) ListMatches(e *jx.Encoder, r *http.Request) (int, error) {
	query, err := matchQuery(r)
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	matches, err := h.deps.Matcher.Matches(ctx, GetUserIDFromContext(ctx), query)
	if err != nil {
		return 0, fmt.Errorf("could not list matches: %w", err)
	}

	encodeList(e, len(matches), func(e *jx.Encoder, i int) { encodeMatch(e, &matches[i]) }, false, "")

	return http.StatusOK, nil
}

func matchQuery(r *http.Request) (matcher.MatchQuery, error) {
	q := r.URL.Query()
	query := matcher.MatchQuery{
		Criteria: relevance.Criteria{Phase: q.Get("phase")},
	}

	if v := q.Get("maxDistanceKm"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return query, serrors.Wrap(serrors.ErrBadRequest, err, "invalid maxDistanceKm")
		}
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return query, serrors.With(serrors.ErrBadRequest, "invalid maxDistanceKm")
		}
		query.Criteria.MaxDistanceKm = &d
	}

	if v := q.Get("minScore"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return query, serrors.Wrap(serrors.ErrBadRequest, err, "invalid minScore")
		}
		query.Criteria.MinScore = s
	}

	var err error
	if query.Criteria.RemoteOnly, err = queryBool(r, "remoteOnly"); err != nil {
		return query, err
	}
	if query.Limit, err = queryUint(r, "limit"); err != nil {
		return query, err
	}

	return query, nil
}

func encodeMatch(e *jx.Encoder, m *matcher.Match) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("project", func(e *jx.Encoder) { encodeProject(e, &m.Project) })
		e.Field("score", func(e *jx.Encoder) { e.Int(m.Score) })
		e.Field("skillOverlap", func(e *jx.Encoder) { e.Int(m.Overlap) })
		e.Field("distanceKm", func(e *jx.Encoder) {
			if d, ok := m.Distance(); ok {
				e.Float64(d)

				return
			}
			e.Null()
		})
		e.Field("breakdown", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("distance", func(e *jx.Encoder) { e.Float64(m.Breakdown.Distance) })
				e.Field("skills", func(e *jx.Encoder) { e.Float64(m.Breakdown.Skills) })
				e.Field("remote", func(e *jx.Encoder) { e.Float64(m.Breakdown.Remote) })
				e.Field("recency", func(e *jx.Encoder) { e.Float64(m.Breakdown.Recency) })
			})
		})
	})
}
