package v1handler

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"marketplace/internal/marketplace"
)

// GetTalentProfile returns the talent profile of the caller.
func (h *Handler) GetTalentProfile(e *jx.Encoder, r *http.Request) (int, error) {
	ctx := r.Context()
	talent, err := h.deps.Marketplace.TalentProfile(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("could not get talent profile: %w", err)
	}

	encodeTalent(e, talent)

	return http.StatusOK, nil
}

// SaveTalentProfile creates or replaces the talent profile of the caller.
func (h *Handler) SaveTalentProfile(e *jx.Encoder, r *http.Request) (int, error) {
	input, err := decodeTalentInput(r)
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	talent, err := h.deps.Marketplace.SaveTalentProfile(ctx, GetUserIDFromContext(ctx), input)
	if err != nil {
		return 0, fmt.Errorf("could not save talent profile: %w", err)
	}

	encodeTalent(e, talent)

	return http.StatusOK, nil
}

func decodeTalentInput(r *http.Request) (marketplace.TalentInput, error) {
	var input marketplace.TalentInput
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "displayName":
			input.DisplayName, err = d.Str()
		case "bio":
			input.Bio, err = d.Str()
		case "postalCode":
			input.PostalCode, err = d.Str()
		case "city":
			input.City, err = d.Str()
		case "maxDistanceKm":
			input.MaxDistanceKm, err = d.Float64()
		case "available":
			input.Available, err = d.Bool()
		case "skillIds":
			input.SkillIDs, err = decodeSkillIDs(d)
		default:
			return d.Skip()
		}

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return input, err
}
