package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/stylemate/internal/domain/model"
	"github.com/okian/stylemate/pkg/logger"
)

const maxJSONBodyBytes = 64 << 10

// RecommendHandler handles recommendation requests.
type RecommendHandler struct {
	deps   RecommendDependencies
	logger logger.Logger
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps RecommendDependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps, logger: logger.Get().Named("api")}
}

// HandlePostRecommendation handles POST /recommendations requests.
func (h *RecommendHandler) HandlePostRecommendation(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_recommendation"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req model.ProfileInput
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, h.logger, WrapKind(op, ErrBadRequest, err))
		return
	}

	rec, err := h.deps.Recommend(r.Context(), req)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
