package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/service"
)

type InsightsHandler struct {
	store      *catalog.Store
	population *service.PopulationService
}

func NewInsightsHandler(store *catalog.Store, population *service.PopulationService) *InsightsHandler {
	return &InsightsHandler{store: store, population: population}
}

// @Summary Estadísticas del catálogo poblado
// @Tags insights
// @Produce json
// @Success 200 {object} map[string]any
// @Router /insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(map[string]any{
		"state":        h.store.State().String(),
		"count":        h.store.Count(),
		"summary":      h.store.Summary(),
		"populated_at": h.store.PopulatedAt(),
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Repoblar el catálogo con progreso en vivo (WebSocket)
// @Tags insights
// @Produce json
// @Success 200 {object} map[string]any
// @Router /catalog/ws/progress [get]
func (h *InsightsHandler) PopulateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, poblando catálogo…",
	})

	h.population.OnProgress(func(p service.PopulationProgress) {
		conn.WriteJSON(map[string]any{
			"type":     "progress",
			"progress": p,
		})
	})
	defer h.population.OnProgress(nil)

	if err := h.population.Populate(r.Context()); err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":        "complete",
		"summary":     h.store.Summary(),
		"generatedAt": time.Now(),
	})
}
