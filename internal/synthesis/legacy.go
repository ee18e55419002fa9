package synthesis

import (
	"math"

	"github.com/karenpiper/movievibe/internal/dimension"
	"github.com/karenpiper/movievibe/internal/models"
)

// PredictMetadataOnly es la ruta de predicción sin reviews, heredada del
// pipeline viejo que trabajaba en escala 0-10. Parte de promedios globales,
// mezcla las tablas 0-10 y recién al final canoniza cada dimensión a 1-5 con
// las bandas de conversión. Útil para películas agregadas a mano sin
// metadata enriquecida.
func (s *Synthesizer) PredictMetadataOnly(in Input) Result {
	if len(in.Genres) == 0 && in.Director == "" && in.ExternalRating == 0 && in.Year == 0 {
		return neutralResult()
	}

	dims := make(map[string]float64, models.NumDimensions)
	for name, avg := range legacyGlobalAverages {
		dims[name] = avg
	}

	// Géneros: promedio de sesgos primero, mezcla 50/50 después.
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, g := range in.Genres {
		bias, ok := legacyGenreBias[g]
		if !ok {
			continue
		}
		for name, v := range bias {
			sums[name] += v
			counts[name]++
		}
	}
	for name, n := range counts {
		dims[name] = (dims[name] + sums[name]/float64(n)) / 2
	}

	// Duración: cortos livianos, épicas exigentes.
	switch {
	case in.Runtime > 0 && in.Runtime < 90:
		dims["runtime_fit"] = (dims["runtime_fit"] + 7.5) / 2
		dims["pace"] = (dims["pace"] + 7.0) / 2
	case in.Runtime > 180:
		dims["runtime_fit"] = (dims["runtime_fit"] + 4.0) / 2
		dims["brainy_bonkers"] = (dims["brainy_bonkers"] + 4.0) / 2
	case in.Runtime > 150:
		dims["runtime_fit"] = (dims["runtime_fit"] + 5.0) / 2
		dims["brainy_bonkers"] = (dims["brainy_bonkers"] + 6.0) / 2
	case in.Runtime > 0:
		dims["runtime_fit"] = (dims["runtime_fit"] + 6.5) / 2
	}

	// Rating externo: los aclamados tienden a ser más originales y vistosos.
	switch {
	case in.ExternalRating >= 8:
		dims["novelty"] = (dims["novelty"] + 6.5) / 2
		dims["brainy_bonkers"] = (dims["brainy_bonkers"] + 6.0) / 2
		dims["color"] = (dims["color"] + 6.5) / 2
	case in.ExternalRating > 0 && in.ExternalRating <= 5:
		dims["camp"] = (dims["camp"] + 4.0) / 2
		dims["runtime_fit"] = (dims["runtime_fit"] + 4.5) / 2
	}

	if in.Year > 2010 {
		dims["color"] += 0.5
	}

	var vec models.Vector
	for _, name := range models.DimensionNames {
		v := math.Max(0, math.Min(10, dims[name]))
		vec.Set(name, float64(dimension.FromTenPoint(v)))
	}

	return Result{
		Dimensions: vec,
		Confidence: s.confidence(in),
		Summary:    s.summary(in, vec),
	}
}
