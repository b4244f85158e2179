package api

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/okian/stylemate/pkg/logger"
)

const photoFormField = "photo"

// ClassifyHandler handles skin tone and body type classification requests.
type ClassifyHandler struct {
	deps           ClassifyDependencies
	maxUploadBytes int64
	logger         logger.Logger
}

// NewClassifyHandler creates a new classification handler.
func NewClassifyHandler(deps ClassifyDependencies, maxUploadBytes int64) *ClassifyHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &ClassifyHandler{deps: deps, maxUploadBytes: maxUploadBytes, logger: logger.Get().Named("api")}
}

type measurementsRequest struct {
	Chest *float64 `json:"chest"`
	Waist *float64 `json:"waist"`
	Hips  *float64 `json:"hips"`
}

// HandleSkinTone handles POST /classify/skin-tone requests.
func (h *ClassifyHandler) HandleSkinTone(w http.ResponseWriter, r *http.Request) {
	const op = "api.classify_skin_tone"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	data, err := h.readPhoto(w, r)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	res, err := h.deps.ClassifySkinTone(r.Context(), data)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleBodyType handles POST /classify/body-type requests with chest, waist
// and hip measurements in centimetres.
func (h *ClassifyHandler) HandleBodyType(w http.ResponseWriter, r *http.Request) {
	const op = "api.classify_body_type"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req measurementsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, h.logger, WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.Chest == nil || req.Waist == nil || req.Hips == nil {
		fail(w, r, h.logger, WrapKind(op, ErrBadRequest, errors.New("chest, waist and hips are required")))
		return
	}
	res, err := h.deps.ClassifyBodyTypeFromMeasurements(r.Context(), *req.Chest, *req.Waist, *req.Hips)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleBodyTypePhoto handles POST /classify/body-type/photo requests. An
// undetermined silhouette is a 200 with detected=false.
func (h *ClassifyHandler) HandleBodyTypePhoto(w http.ResponseWriter, r *http.Request) {
	const op = "api.classify_body_type_photo"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	data, err := h.readPhoto(w, r)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	res, err := h.deps.ClassifyBodyTypeFromPhoto(r.Context(), data)
	if err != nil {
		fail(w, r, h.logger, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// readPhoto returns the uploaded image bytes, taken from the "photo" field of
// a multipart form or from the raw body otherwise.
func (h *ClassifyHandler) readPhoto(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var src io.Reader = r.Body
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			return nil, classifyReadError(err)
		}
		f, _, err := r.FormFile(photoFormField)
		if err != nil {
			return nil, WrapKind("api.read_photo", ErrBadRequest, err)
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, classifyReadError(err)
	}
	if len(data) == 0 {
		return nil, WrapKind("api.read_photo", ErrBadRequest, errors.New("empty image body"))
	}
	return data, nil
}

func classifyReadError(err error) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return WrapKind("api.read_photo", ErrPayloadTooLarge, err)
	}
	return WrapKind("api.read_photo", ErrBadRequest, err)
}
