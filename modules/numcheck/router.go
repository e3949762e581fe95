package numcheck

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/numcheck/pkg/logger"
	"github.com/dmitrymomot/numcheck/pkg/numformat"
)

const (
	defaultMaxValues    = 1000
	defaultMaxBodyBytes = 1 << 20
)

// RouterOptions configures the numcheck router.
type RouterOptions struct {
	// Catalog provides named formats. Nil means an empty catalog.
	Catalog *numformat.Catalog
	// Logger receives request diagnostics. Nil discards them.
	Logger *slog.Logger
	// MaxValues caps the batch size of POST /validate. Defaults to 1000.
	MaxValues int
}

// Router creates the numcheck router.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/api", numcheck.Router(numcheck.RouterOptions{Catalog: catalog, Logger: log}))
func Router(opts RouterOptions) chi.Router {
	h := newHandlers(opts)

	r := chi.NewRouter()
	r.Get("/formats", h.listFormats)
	r.Route("/validate", func(r chi.Router) {
		r.Post("/", h.validateBatch)
		r.Get("/{name}", h.validateOne)
	})
	return r
}

type handlers struct {
	catalog   *numformat.Catalog
	log       *slog.Logger
	maxValues int
}

func newHandlers(opts RouterOptions) *handlers {
	h := &handlers{
		catalog:   opts.Catalog,
		log:       opts.Logger,
		maxValues: opts.MaxValues,
	}
	if h.catalog == nil {
		h.catalog = numformat.NewCatalog()
	}
	if h.log == nil {
		h.log = logger.Discard()
	}
	if h.maxValues <= 0 {
		h.maxValues = defaultMaxValues
	}
	h.log = h.log.With(logger.Component("numcheck"))
	return h
}

func (h *handlers) listFormats(w http.ResponseWriter, r *http.Request) {
	names := h.catalog.Names()
	formats := make([]FormatInfo, 0, len(names))
	for _, name := range names {
		if v, ok := h.catalog.Lookup(name); ok {
			formats = append(formats, formatInfo(name, v.Format()))
		}
	}
	writeData(w, map[string]any{"formats": formats})
}

func formatInfo(name string, f numformat.Format) FormatInfo {
	return FormatInfo{
		Name:        name,
		Format:      f.String(),
		Precision:   f.Precision,
		Scale:       f.Scale,
		NonNegative: f.NonNegative,
	}
}
