package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karenpiper/movievibe/internal/models"
	"github.com/karenpiper/movievibe/internal/service"
)

type RatingHandler struct {
	profiles *service.ProfileService
}

func NewRatingHandler(profiles *service.ProfileService) *RatingHandler {
	return &RatingHandler{profiles: profiles}
}

type ratingRequest struct {
	Dimensions models.Vector `json:"dimensions"`
	Overall    int           `json:"overall"`
	Notes      string        `json:"notes,omitempty"`
}

// @Summary Valorar una película vista
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "movieId"
// @Param body body ratingRequest true "valoración 1-5 por dimensión + estrellas"
// @Success 200 {object} models.UserProfile
// @Security BearerAuth
// @Router /movies/{id}/rate [post]
func (h *RatingHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.profiles.RegisterRating(r.Context(), UserIDFromContext(r.Context()), models.Rating{
		MovieID:    chi.URLParam(r, "id"),
		Dimensions: req.Dimensions,
		Overall:    req.Overall,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(profile)
}

// @Summary Perfil de gustos del usuario
// @Tags ratings
// @Produce json
// @Success 200 {object} models.UserProfile
// @Security BearerAuth
// @Router /profile [get]
func (h *RatingHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	profile, err := h.profiles.Get(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(profile)
}

// @Summary Usuarios con gustos parecidos
// @Tags ratings
// @Produce json
// @Success 200 {array} models.UserSimilarity
// @Security BearerAuth
// @Router /profile/neighbors [get]
func (h *RatingHandler) GetNeighbors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sims, err := h.profiles.Neighbors(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(sims)
}
