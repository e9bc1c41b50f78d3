package api

import (
	"context"
	"net/http"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/usecase"
	"itinerary-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Searcher answers itinerary queries
type Searcher interface {
	Search(ctx context.Context, query entity.SearchQuery) (*entity.SearchResult, error)
}

// SearchHandler serves GET /api/search
type SearchHandler struct {
	searcher Searcher
	logger   logger.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searcher Searcher, logger logger.Logger) *SearchHandler {
	return &SearchHandler{searcher: searcher, logger: logger}
}

// RegisterRoutes mounts the search endpoint
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/search", h.handleSearch)
}

func (h *SearchHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query, err := usecase.ParseSearchRequest(params.Get("origin"), params.Get("destination"), params.Get("date"))
	if err != nil {
		h.fail(w, err)
		return
	}

	result, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FormatSearchResult(*result))
}

func (h *SearchHandler) fail(w http.ResponseWriter, err error) {
	status, code, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Search request failed", "code", code, "error", err)
	}
	writeError(w, status, code, message)
}
