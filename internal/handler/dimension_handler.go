package handler

import (
	"encoding/json"
	"net/http"

	"github.com/karenpiper/movievibe/internal/dimension"
)

// @Summary Definición de las diez dimensiones y sus niveles
// @Tags dimensions
// @Produce json
// @Success 200 {array} dimension.Scale
// @Router /dimensions [get]
func Dimensions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// en orden canónico, no en orden de mapa
	out := make([]*dimension.Scale, 0, len(dimension.Names()))
	for _, name := range dimension.Names() {
		out = append(out, dimension.GetScale(name))
	}
	_ = json.NewEncoder(w).Encode(out)
}
