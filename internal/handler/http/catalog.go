package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/voddeck/voddeck/internal/adapter"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/utils"
	"github.com/voddeck/voddeck/models"
)

// searchableTypes is the set of namespaces the search endpoint accepts.
var searchableTypes = map[models.MediaType]struct{}{
	models.MediaTypeMovie:  {},
	models.MediaTypeTV:     {},
	models.MediaTypePerson: {},
}

// trending handles GET /{mediaType}/trending: one random title from the
// upstream trending page.
func (h *Handler) trending(mediaType models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, err := h.services.CatalogService.TrendingTitle(r.Context(), mediaType)
		if err != nil {
			h.writeCatalogError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.APIResponse{Success: true, Content: title}, http.StatusOK)
	}
}

// trailers handles GET /{mediaType}/{id}/trailers.
func (h *Handler) trailers(mediaType models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := h.services.CatalogService.Trailers(r.Context(), mediaType, chi.URLParam(r, "id"))
		if err != nil {
			h.writeCatalogError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.APIResponse{Success: true, Results: results}, http.StatusOK)
	}
}

// details handles GET /{mediaType}/{id}/details.
func (h *Handler) details(mediaType models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := h.services.CatalogService.Details(r.Context(), mediaType, chi.URLParam(r, "id"))
		if err != nil {
			h.writeCatalogError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.APIResponse{Success: true, Content: content}, http.StatusOK)
	}
}

// similar handles GET /{mediaType}/{id}/similar.
func (h *Handler) similar(mediaType models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := h.services.CatalogService.Similar(r.Context(), mediaType, chi.URLParam(r, "id"))
		if err != nil {
			h.writeCatalogError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.APIResponse{Success: true, Results: results}, http.StatusOK)
	}
}

// category handles GET /{mediaType}/{category}: named upstream lists such as
// "popular" or "top_rated". Unknown categories surface as upstream 404s.
func (h *Handler) category(mediaType models.MediaType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := h.services.CatalogService.Category(r.Context(), mediaType, chi.URLParam(r, "category"))
		if err != nil {
			h.writeCatalogError(w, r, err)
			return
		}

		utils.WriteJSON(w, models.APIResponse{Success: true, Results: results}, http.StatusOK)
	}
}

// search handles GET /search/{searchType}/{query}.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	searchType := models.MediaType(chi.URLParam(r, "searchType"))
	if _, ok := searchableTypes[searchType]; !ok {
		utils.WriteJSON(w, models.ErrorResponse(msgInvalidSearchType), http.StatusBadRequest)
		return
	}

	results, err := h.services.CatalogService.Search(r.Context(), searchType, chi.URLParam(r, "query"))
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.APIResponse{Success: true, Results: results}, http.StatusOK)
}

// writeCatalogError maps upstream failures onto API responses: upstream 404
// stays a 404, everything else is a generic 500 with the detail logged
// server-side only.
func (h *Handler) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if errors.Is(err, adapter.ErrContentNotFound) {
		utils.WriteJSON(w, models.ErrorResponse(msgContentNotFound), http.StatusNotFound)
		return
	}

	log.Err(err).Msg("catalog request failed")
	utils.WriteJSON(w, models.ErrorResponse(msgInternalServerError), http.StatusInternalServerError)
}
