package handler

import (
	"encoding/json"
	"net/http"

	"github.com/karenpiper/movievibe/internal/models"
	"github.com/karenpiper/movievibe/internal/service"
)

type RecommendHandler struct {
	svc      *service.RecommendService
	profiles *service.ProfileService
}

func NewRecommendHandler(svc *service.RecommendService, profiles *service.ProfileService) *RecommendHandler {
	return &RecommendHandler{svc: svc, profiles: profiles}
}

type vibeRequest struct {
	Vibe    models.Vector `json:"vibe"`
	K       int           `json:"k,omitempty"`
	Refresh bool          `json:"refresh,omitempty"`
}

// @Summary Recomendaciones para el vibe pedido
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body vibeRequest true "vector de vibe 1-5 + opciones"
// @Success 200 {array} models.Movie
// @Security BearerAuth
// @Router /vibe/recommendations [post]
func (h *RecommendHandler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req vibeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	userID := UserIDFromContext(r.Context())
	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	// Mezcla colaborativa si el toggle está prendido (nil si no hay vecinos).
	blend, err := h.profiles.CollaborativeBlender(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		Vibe:    req.Vibe,
		K:       req.K,
		Refresh: req.Refresh,
		Profile: profile,
		Blend:   blend,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(items)
}
