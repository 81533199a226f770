package api

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/palette"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/storage"
	"github.com/dmitrymomot/qrkit/pkg/style"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Renderer turns QR data, style overrides and caption lines into a PNG.
// *composer.Composer implements it.
type Renderer interface {
	Compose(ctx context.Context, data string, o *style.Overrides, lines []string) ([]byte, error)
}

// Handler serves the QR generation API.
type Handler struct {
	renderer Renderer
	storage  storage.Storage
	logger   *slog.Logger
	cfg      Config

	randMu sync.Mutex
	rand   *rand.Rand
}

// Option configures a Handler.
type Option func(*Handler)

// WithStorage enables the save endpoint.
func WithStorage(s storage.Storage) Option {
	return func(h *Handler) { h.storage = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithConfig sets request limits. Zero fields keep the defaults.
func WithConfig(cfg Config) Option {
	return func(h *Handler) { h.cfg = cfg.withDefaults() }
}

// WithRand sets the source for random palettes.
func WithRand(r *rand.Rand) Option {
	return func(h *Handler) { h.rand = r }
}

// New creates a Handler that renders with r.
func New(r Renderer, opts ...Option) *Handler {
	h := &Handler{
		renderer: r,
		logger:   slog.New(slog.DiscardHandler),
		cfg:      Config{}.withDefaults(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GenerateResponse is returned by the generate endpoint with ?format=json.
type GenerateResponse struct {
	payload.Result
	Image string `json:"image"`
}

// SaveResponse is returned by the save endpoint.
type SaveResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// PaletteResponse is a random scheme as style overrides.
type PaletteResponse struct {
	style.Overrides
	Strategy palette.Strategy `json:"strategy"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	res, png, ok := h.render(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, GenerateResponse{Result: res, Image: qrcode.DataURI(png)})
		return
	}
	writePNG(w, res.Filename, png)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		writeError(w, http.StatusNotImplemented, ErrStorageDisabled.Error(), nil)
		return
	}

	res, png, ok := h.render(w, r)
	if !ok {
		return
	}

	name := res.Filename + ".png"
	url, err := h.storage.Put(r.Context(), name, png, "image/png")
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to store image",
			logger.Filename(name),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to store image", nil)
		return
	}

	h.logger.InfoContext(r.Context(), "image stored", logger.Filename(name))
	writeJSON(w, http.StatusCreated, SaveResponse{Filename: name, URL: url})
}

// render binds, validates and renders the request. It writes the error
// response itself and reports false when the handler should stop.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) (payload.Result, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)

	var req GenerateRequest
	if err := bindJSON(r, &req); err != nil {
		h.writeBindError(w, r, err)
		return payload.Result{}, nil, false
	}

	p := payload.Normalize(req.Payload())
	if err := payload.Validate(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, "validation failed", verrs.Map())
		} else {
			writeError(w, http.StatusBadRequest, err.Error(), nil)
		}
		return payload.Result{}, nil, false
	}

	res := payload.Build(p)
	start := time.Now()
	png, err := h.renderer.Compose(r.Context(), res.Data, req.Style.Parsed(), res.CaptionLines)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			level = slog.LevelWarn
		}
		h.logger.Log(r.Context(), level, "failed to render image",
			logger.ContentType(string(p.Type())),
			logger.DataLength(len(res.Data)),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to generate QR code", nil)
		return payload.Result{}, nil, false
	}

	h.logger.DebugContext(r.Context(), "image rendered",
		logger.ContentType(string(p.Type())),
		logger.Filename(res.Filename),
		logger.Duration(time.Since(start)),
	)
	return res, png, true
}

func (h *Handler) writeBindError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		status = http.StatusRequestEntityTooLarge
	}
	h.logger.WarnContext(r.Context(), "invalid request body", logger.Error(err))
	writeError(w, status, err.Error(), nil)
}

func (h *Handler) types(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, payload.Choices())
}

func (h *Handler) randomPalette(w http.ResponseWriter, _ *http.Request) {
	var scheme palette.Scheme
	if h.rand != nil {
		h.randMu.Lock()
		scheme = palette.Random(h.rand)
		h.randMu.Unlock()
	} else {
		scheme = palette.Random(nil)
	}
	writeJSON(w, http.StatusOK, PaletteResponse{
		Overrides: style.FromScheme(scheme),
		Strategy:  scheme.Strategy,
	})
}
