package v1handler

import (
	"fmt"
	"net/http"

	"github.com/go-faster/jx"
)

// ListSkills returns the skills reference list.
func (h *Handler) ListSkills(e *jx.Encoder, r *http.Request) (int, error) {
	skills, err := h.deps.Marketplace.Skills(r.Context())
	if err != nil {
		return 0, fmt.Errorf("could not list skills: %w", err)
	}

	encodeList(e, len(skills), func(e *jx.Encoder, i int) { encodeSkill(e, &skills[i]) }, false, "")

	return http.StatusOK, nil
}
