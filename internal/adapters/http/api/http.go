// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/stylemate/internal/adapters/vision"
	"github.com/okian/stylemate/internal/app"
	"github.com/okian/stylemate/internal/domain/bodytype"
	"github.com/okian/stylemate/internal/domain/links"
	"github.com/okian/stylemate/internal/domain/model"
	"github.com/okian/stylemate/internal/domain/recommend"
	"github.com/okian/stylemate/pkg/logger"
)

const defaultMaxUploadBytes = 10 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	RecommendDependencies
	ClassifyDependencies
	LinksDependencies
	OptionsDependencies
}

// RecommendDependencies serves POST /recommendations.
type RecommendDependencies interface {
	Recommend(ctx context.Context, in model.ProfileInput) (recommend.Recommendation, error)
}

// ClassifyDependencies serves the /classify routes.
type ClassifyDependencies interface {
	ClassifySkinTone(ctx context.Context, data []byte) (app.SkinToneResult, error)
	ClassifyBodyTypeFromMeasurements(ctx context.Context, chest, waist, hips float64) (app.BodyTypeResult, error)
	ClassifyBodyTypeFromPhoto(ctx context.Context, data []byte) (app.BodyTypeResult, error)
}

// LinksDependencies serves GET /links.
type LinksDependencies interface {
	Links(ctx context.Context, keyword, gender string) (links.LinkSet, error)
}

// OptionsDependencies serves GET /options.
type OptionsDependencies interface {
	Options() app.Catalog
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	recommendHandler *RecommendHandler
	classifyHandler  *ClassifyHandler
	linksHandler     *LinksHandler
	optionsHandler   *OptionsHandler

	maxUploadBytes int64
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithMaxUploadBytes caps the body size accepted by the photo routes.
func WithMaxUploadBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxUploadBytes = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{maxUploadBytes: defaultMaxUploadBytes}
	for _, opt := range opts {
		opt(s)
	}

	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.recommendHandler = NewRecommendHandler(deps)
	s.classifyHandler = NewClassifyHandler(deps, s.maxUploadBytes)
	s.linksHandler = NewLinksHandler(deps)
	s.optionsHandler = NewOptionsHandler(deps)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(path, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(path, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}

	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/options", "options", s.optionsHandler.HandleGetOptions)
	route("/links", "links", s.linksHandler.HandleGetLinks)
	route("/recommendations", "recommendations", s.recommendHandler.HandlePostRecommendation)
	route("/classify/skin-tone", "classify_skin_tone", s.classifyHandler.HandleSkinTone)
	route("/classify/body-type", "classify_body_type", s.classifyHandler.HandleBodyType)
	route("/classify/body-type/photo", "classify_body_type_photo", s.classifyHandler.HandleBodyTypePhoto)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// statusFor maps an error chain to a status code and error code.
func statusFor(err error) (int, string) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, ErrPayloadTooLarge),
		errors.Is(err, vision.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, app.ErrBackpressure):
		return http.StatusTooManyRequests, "backpressure"
	case errors.Is(err, app.ErrNotStarted), errors.Is(err, ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, model.ErrInvalidProfile),
		errors.Is(err, bodytype.ErrInvalidMeasurement),
		errors.Is(err, vision.ErrDecode),
		errors.Is(err, vision.ErrImageTooSmall),
		errors.Is(err, app.ErrEmptyKeyword):
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fail writes err with the status its kind maps to. Server errors are logged.
func fail(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError && log != nil {
		log.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Error(err),
		)
	}
	writeError(w, status, code, err)
}
