package synthesis

import (
	"fmt"
	"math"
	"strings"

	"github.com/karenpiper/movievibe/internal/dimension"
	"github.com/karenpiper/movievibe/internal/models"
)

// ====== Sintetizador de atributos ======
//
// Convierte metadata de una película (géneros, director, reviews de la
// comunidad) en un vector perceptual 1-5 con nivel de confianza. Es 100%
// heurístico y determinista: mismo input, mismo output.

// Input es la metadata disponible para sintetizar un vector.
type Input struct {
	Title          string
	Genres         []string
	Director       string
	Runtime        int     // minutos, 0 = desconocido
	Year           int     // 0 = desconocido
	ExternalRating float64 // escala 0-10, 0 = ausente
	ReviewTexts    []string
	ReviewCount    *int    // total de reviews de la comunidad, nil = desconocido
	CommunityRating float64 // escala 0.5-5.0, 0 = ausente
}

// Result es el vector sintetizado junto con su confianza y resumen.
type Result struct {
	Dimensions models.Vector `json:"dimensions"`
	Confidence float64       `json:"confidence"`
	Summary    string        `json:"summary,omitempty"`
}

// Synthesizer aplica las tablas heurísticas. Las tablas son inyectables para
// tests; NewSynthesizer usa las declaradas en tables.go.
type Synthesizer struct {
	genres    map[string]map[string]float64
	directors map[string]map[string]float64
	cues      []cueFamily
}

func NewSynthesizer() *Synthesizer {
	return &Synthesizer{genres: genreBias, directors: directorStyles, cues: cueFamilies}
}

// Synthesize corre el pipeline completo en orden fijo: base neutral →
// mezcla de géneros → firma de director → señales de reviews → clamp y
// redondeo a 0.5 → confianza → resumen.
func (s *Synthesizer) Synthesize(in Input) Result {
	if len(in.Genres) == 0 && in.Director == "" && in.ExternalRating == 0 &&
		in.Year == 0 && len(in.ReviewTexts) == 0 {
		// Sin ninguna señal no hay nada que inferir.
		return neutralResult()
	}

	dims := make(map[string]float64, models.NumDimensions)
	for _, name := range models.DimensionNames {
		dims[name] = 3.0
	}

	s.blendGenres(dims, in.Genres)
	s.applyDirector(dims, in.Director)
	s.applyReviewCues(dims, in.ReviewTexts)

	var vec models.Vector
	for _, name := range models.DimensionNames {
		vec.Set(name, dimension.RoundHalf(dimension.Clamp(dims[name])))
	}

	conf := s.confidence(in)
	return Result{
		Dimensions: vec,
		Confidence: conf,
		Summary:    s.summary(in, vec),
	}
}

// blendGenres promedia primero los sesgos de todos los géneros que tocan una
// dimensión y recién después mezcla 50/50 con el valor actual, para que una
// película con cinco géneros no arrastre el vector más que una con dos.
func (s *Synthesizer) blendGenres(dims map[string]float64, genres []string) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, g := range genres {
		bias, ok := s.genres[g]
		if !ok {
			continue
		}
		for name, v := range bias {
			sums[name] += v
			counts[name]++
		}
	}
	for name, n := range counts {
		avg := sums[name] / float64(n)
		dims[name] = (dims[name] + avg) / 2
	}
}

// applyDirector mezcla la firma del director con peso fuerte (70%).
func (s *Synthesizer) applyDirector(dims map[string]float64, director string) {
	style, ok := s.directors[strings.ToLower(strings.TrimSpace(director))]
	if !ok {
		return
	}
	for name, v := range style {
		dims[name] = 0.3*dims[name] + 0.7*v
	}
}

// applyReviewCues escanea cada texto en minúsculas buscando familias de
// palabras clave. El ajuste neto de un mismo texto se recorta a ±1.0 por
// dimensión antes de aplicarse.
func (s *Synthesizer) applyReviewCues(dims map[string]float64, texts []string) {
	for _, text := range texts {
		lower := strings.ToLower(text)
		perText := make(map[string]float64)
		for _, fam := range s.cues {
			for _, cue := range fam.cues {
				if n := strings.Count(lower, cue); n > 0 {
					perText[fam.dimension] += float64(n) * fam.delta
				}
			}
		}
		for name, delta := range perText {
			dims[name] += math.Max(-perTextCueCap, math.Min(perTextCueCap, delta))
		}
	}
}

// confidence estima qué tan confiable es el vector sintetizado. Con reviews
// reales escala con el volumen; sin reviews se arma desde las señales de
// metadata disponibles.
func (s *Synthesizer) confidence(in Input) float64 {
	if in.ReviewCount != nil && *in.ReviewCount > 0 {
		return math.Min(1.0, float64(*in.ReviewCount)/50.0)
	}
	conf := 0.3
	if len(in.Genres) >= 3 {
		conf += 0.1
	}
	if _, known := s.directors[strings.ToLower(strings.TrimSpace(in.Director))]; known {
		conf += 0.1
	}
	if in.ExternalRating > 0 {
		conf += 0.1
	}
	if in.Year > 0 {
		conf += 0.1
	}
	return math.Min(1.0, conf)
}

// summary genera una oración legible con las dimensiones destacadas.
func (s *Synthesizer) summary(in Input, vec models.Vector) string {
	var highs, lows []string
	for _, name := range models.DimensionNames {
		v := vec.Get(name)
		readable := strings.ReplaceAll(name, "_", " ")
		if v >= 4 && len(highs) < 2 {
			highs = append(highs, readable)
		}
		if v <= 2 && len(lows) < 2 {
			lows = append(lows, readable)
		}
	}
	if len(highs) == 0 && len(lows) == 0 {
		return fmt.Sprintf("%q sits close to the middle of every dimension.", in.Title)
	}

	var b strings.Builder
	if in.ReviewCount != nil && *in.ReviewCount > 0 {
		fmt.Fprintf(&b, "Based on %d community reviews, %q", *in.ReviewCount, in.Title)
	} else {
		fmt.Fprintf(&b, "%q", in.Title)
	}
	if len(highs) > 0 {
		fmt.Fprintf(&b, " scores highly in %s", strings.Join(highs, " and "))
		if len(lows) > 0 {
			fmt.Fprintf(&b, " while sitting lower in %s", strings.Join(lows, " and "))
		}
	} else {
		fmt.Fprintf(&b, " sits lower in %s", strings.Join(lows, " and "))
	}
	b.WriteString(".")
	if in.CommunityRating > 0 {
		fmt.Fprintf(&b, " Average community rating: %.1f/5.0.", in.CommunityRating)
	}
	return b.String()
}
