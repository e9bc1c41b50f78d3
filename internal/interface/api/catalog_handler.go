package api

import (
	"context"
	"net/http"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Catalog lists reference data
type Catalog interface {
	ListLocations(ctx context.Context) ([]entity.Location, error)
	GetLocation(ctx context.Context, code string) (*entity.Location, error)
	ListCarriers(ctx context.Context) ([]entity.Carrier, error)
	ListRoutes(ctx context.Context, origin, destination string) ([]entity.Route, error)
}

// CatalogHandler serves the read-only listing endpoints
type CatalogHandler struct {
	catalog Catalog
	logger  logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog Catalog, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes mounts the catalog endpoints
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/locations", h.handleListLocations)
	r.Get("/api/locations/{code}", h.handleGetLocation)
	r.Get("/api/carriers", h.handleListCarriers)
	r.Get("/api/routes", h.handleListRoutes)
}

func (h *CatalogHandler) handleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.catalog.ListLocations(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	views := make([]LocationView, 0, len(locations))
	for _, l := range locations {
		views = append(views, formatLocation(l))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *CatalogHandler) handleGetLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.catalog.GetLocation(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, formatLocation(*location))
}

func (h *CatalogHandler) handleListCarriers(w http.ResponseWriter, r *http.Request) {
	carriers, err := h.catalog.ListCarriers(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	views := make([]CarrierView, 0, len(carriers))
	for _, c := range carriers {
		views = append(views, formatCarrier(c))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *CatalogHandler) handleListRoutes(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	routes, err := h.catalog.ListRoutes(r.Context(), params.Get("origin"), params.Get("destination"))
	if err != nil {
		h.fail(w, err)
		return
	}

	views := make([]RouteView, 0, len(routes))
	for _, route := range routes {
		views = append(views, formatRoute(route))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *CatalogHandler) fail(w http.ResponseWriter, err error) {
	status, code, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Catalog request failed", "code", code, "error", err)
	}
	writeError(w, status, code, message)
}
