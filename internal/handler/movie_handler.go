package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
	"github.com/karenpiper/movievibe/internal/service"
)

type MovieHandler struct {
	svc   *service.MovieService
	store *catalog.Store
}

func NewMovieHandler(svc *service.MovieService, store *catalog.Store) *MovieHandler {
	return &MovieHandler{svc: svc, store: store}
}

// @Summary Listado del catálogo
// @Tags movies
// @Produce json
// @Param unseen query bool false "solo no vistas"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var movies []models.Movie
	if r.URL.Query().Get("unseen") == "true" {
		movies = h.store.EnumerateUnseen()
	} else {
		movies = h.store.All()
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	_ = json.NewEncoder(w).Encode(movies)
}

// @Summary Detalle de una película
// @Tags movies
// @Produce json
// @Param id path string true "movieId"
// @Success 200 {object} models.Movie
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	movie, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(movie)
}

// @Summary Alta manual de película
// @Tags movies
// @Accept json
// @Produce json
// @Param body body models.MovieCreateRequest true "metadata de la película"
// @Success 201 {object} models.Movie
// @Security BearerAuth
// @Router /movies [post]
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.MovieCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	movie, err := h.svc.AddManual(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(movie)
}

// @Summary Buscar títulos en TMDB
// @Tags movies
// @Produce json
// @Param q query string true "título a buscar"
// @Success 200 {array} tmdb.SearchResult
// @Router /movies/tmdb/search [get]
func (h *MovieHandler) SearchTMDB(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	results, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(results)
}

// @Summary Alta de película desde TMDB
// @Tags movies
// @Produce json
// @Param tmdbId path int true "id TMDB"
// @Success 201 {object} models.Movie
// @Security BearerAuth
// @Router /movies/tmdb/{tmdbId} [post]
func (h *MovieHandler) AddFromTMDB(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tmdbID, err := strconv.Atoi(chi.URLParam(r, "tmdbId"))
	if err != nil {
		http.Error(w, "tmdbId inválido", http.StatusBadRequest)
		return
	}

	movie, err := h.svc.AddFromTMDB(r.Context(), tmdbID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(movie)
}

type seenRequest struct {
	Seen bool `json:"seen"`
}

// @Summary Marcar película como vista / no vista
// @Tags movies
// @Accept json
// @Param id path string true "movieId"
// @Param body body seenRequest true "nuevo estado"
// @Success 204
// @Security BearerAuth
// @Router /movies/{id}/seen [patch]
func (h *MovieHandler) PatchSeen(w http.ResponseWriter, r *http.Request) {
	var req seenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkSeen(r.Context(), chi.URLParam(r, "id"), req.Seen); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
