package api

import (
	"net/http"

	"github.com/okian/stylemate/internal/domain/links"
	"github.com/okian/stylemate/pkg/logger"
)

// LinksHandler handles shopping link requests.
type LinksHandler struct {
	deps   LinksDependencies
	logger logger.Logger
}

// NewLinksHandler creates a new links handler.
func NewLinksHandler(deps LinksDependencies) *LinksHandler {
	return &LinksHandler{deps: deps, logger: logger.Get().Named("api")}
}

type linksResponse struct {
	Keyword string        `json:"keyword"`
	Gender  string        `json:"gender,omitempty"`
	Links   links.LinkSet `json:"links"`
}

// HandleGetLinks handles GET /links?keyword=...&gender=... requests.
func (h *LinksHandler) HandleGetLinks(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_links"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	set, err := h.deps.Links(r.Context(), q.Get("keyword"), q.Get("gender"))
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, linksResponse{Keyword: q.Get("keyword"), Gender: q.Get("gender"), Links: set})
}
