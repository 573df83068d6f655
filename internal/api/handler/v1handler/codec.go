package v1handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"marketplace/pkg/domain"
	"marketplace/pkg/serrors"
)

// maxBodySize bounds the size of request bodies.
const maxBodySize = 1 << 20

func encodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeCoordinates(e *jx.Encoder, c *domain.Coordinates) {
	if c == nil {
		e.Null()

		return
	}
	e.Obj(func(e *jx.Encoder) {
		e.Field("lat", func(e *jx.Encoder) { e.Float64(c.Lat) })
		e.Field("lon", func(e *jx.Encoder) { e.Float64(c.Lon) })
	})
}

func encodeSkillIDs(e *jx.Encoder, ids []domain.SkillID) {
	e.Arr(func(e *jx.Encoder) {
		for _, id := range ids {
			e.Int64(int64(id))
		}
	})
}

func encodeSkill(e *jx.Encoder, s *domain.Skill) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int64(int64(s.ID)) })
		e.Field("name", func(e *jx.Encoder) { e.Str(s.Name) })
		e.Field("category", func(e *jx.Encoder) { e.Str(s.Category) })
	})
}

func encodeTalent(e *jx.Encoder, t *domain.Talent) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("userId", func(e *jx.Encoder) { e.Str(t.UserID.String()) })
		e.Field("displayName", func(e *jx.Encoder) { e.Str(t.DisplayName) })
		e.Field("bio", func(e *jx.Encoder) { e.Str(t.Bio) })
		e.Field("postalCode", func(e *jx.Encoder) { e.Str(t.PostalCode) })
		e.Field("city", func(e *jx.Encoder) { e.Str(t.City) })
		e.Field("location", func(e *jx.Encoder) { encodeCoordinates(e, t.Location) })
		e.Field("maxDistanceKm", func(e *jx.Encoder) { e.Float64(t.MaxDistanceKm) })
		e.Field("available", func(e *jx.Encoder) { e.Bool(t.Available) })
		e.Field("skillIds", func(e *jx.Encoder) { encodeSkillIDs(e, t.SkillIDs) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, t.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, t.UpdatedAt) })
	})
}

func encodeProject(e *jx.Encoder, p *domain.Project) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(p.ID.String()) })
		e.Field("ownerId", func(e *jx.Encoder) { e.Str(p.OwnerID.String()) })
		e.Field("title", func(e *jx.Encoder) { e.Str(p.Title) })
		e.Field("description", func(e *jx.Encoder) { e.Str(p.Description) })
		e.Field("phase", func(e *jx.Encoder) { e.Str(string(p.Phase)) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(p.Status)) })
		e.Field("postalCode", func(e *jx.Encoder) { e.Str(p.PostalCode) })
		e.Field("city", func(e *jx.Encoder) { e.Str(p.City) })
		e.Field("location", func(e *jx.Encoder) { encodeCoordinates(e, p.Location) })
		e.Field("remotePossible", func(e *jx.Encoder) { e.Bool(p.RemotePossible) })
		e.Field("skillIds", func(e *jx.Encoder) { encodeSkillIDs(e, p.SkillIDs) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, p.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, p.UpdatedAt) })
	})
}

func encodeApplication(e *jx.Encoder, a *domain.Application) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(a.ID.String()) })
		e.Field("projectId", func(e *jx.Encoder) { e.Str(a.ProjectID.String()) })
		e.Field("talentId", func(e *jx.Encoder) { e.Str(a.TalentID.String()) })
		e.Field("message", func(e *jx.Encoder) { e.Str(a.Message) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(a.Status)) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, a.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, a.UpdatedAt) })
	})
}

func encodeNotification(e *jx.Encoder, n *domain.Notification) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(n.ID.String()) })
		e.Field("kind", func(e *jx.Encoder) { e.Str(string(n.Kind)) })
		e.Field("projectId", func(e *jx.Encoder) { e.Str(n.ProjectID.String()) })
		e.Field("applicationId", func(e *jx.Encoder) {
			if n.ApplicationID == nil {
				e.Null()

				return
			}
			e.Str(n.ApplicationID.String())
		})
		e.Field("score", func(e *jx.Encoder) { e.Int(n.Score) })
		e.Field("message", func(e *jx.Encoder) { e.Str(n.Message) })
		e.Field("read", func(e *jx.Encoder) { e.Bool(!n.ReadAt.IsZero()) })
		e.Field("readAt", func(e *jx.Encoder) { encodeTime(e, n.ReadAt) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, n.CreatedAt) })
	})
}

// encodeList writes {"items": [...], "nextCursor": ...}. The cursor is only
// written when paged is set.
func encodeList(e *jx.Encoder, n int, item func(e *jx.Encoder, i int), paged bool, nextCursor string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range n {
					item(e, i)
				}
			})
		})
		if paged {
			e.Field("nextCursor", func(e *jx.Encoder) {
				if nextCursor == "" {
					e.Null()

					return
				}
				e.Str(nextCursor)
			})
		}
	})
}

// decodeBody decodes the JSON object of the request body, calling field for
// every key. Unknown keys must be skipped by field. An empty body is an empty
// object.
func decodeBody(r *http.Request, field func(d *jx.Decoder, key string) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read body")
	}
	if len(body) == 0 {
		return nil
	}

	if err := jx.DecodeBytes(body).Obj(field); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return nil
}

func decodeSkillIDs(d *jx.Decoder) ([]domain.SkillID, error) {
	ids := []domain.SkillID{}
	if err := d.Arr(func(d *jx.Decoder) error {
		id, err := d.Int64()
		if err != nil {
			return errors.Wrap(err, "skill id")
		}
		ids = append(ids, domain.SkillID(id))

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "skillIds")
	}

	return ids, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

func queryUint(r *http.Request, name string) (uint, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return uint(n), nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return b, nil
}
