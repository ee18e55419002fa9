package synthesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeSinSenal(t *testing.T) {
	s := NewSynthesizer()
	res := s.Synthesize(Input{Title: "Misterio"})

	assert.Equal(t, 0.0, res.Confidence)
	for _, name := range dimensionNamesForTest() {
		assert.Equal(t, 3.0, res.Dimensions.Get(name), name)
	}
}

func TestSynthesizeReviewCuesSubenColor(t *testing.T) {
	s := NewSynthesizer()
	base := Input{
		Title:   "Paleta",
		Genres:  []string{"Drama"},
		Runtime: 120,
	}

	sin := s.Synthesize(base)
	require.LessOrEqual(t, sin.Dimensions.Color, 3.5)

	con := base
	con.ReviewTexts = []string{
		"visually stunning from the first frame",
		"visually stunning and beautiful throughout",
	}
	res := s.Synthesize(con)
	assert.GreaterOrEqual(t, res.Dimensions.Color, 4.0)
}

// Agregar un texto con señales solo positivas nunca puede bajar la dimensión.
func TestSynthesizeCuesMonotonicos(t *testing.T) {
	s := NewSynthesizer()
	in := Input{Title: "Prueba", Genres: []string{"Drama"}}

	prev := s.Synthesize(in).Dimensions.Color
	for i := 0; i < 5; i++ {
		in.ReviewTexts = append(in.ReviewTexts, "gorgeous and colorful")
		cur := s.Synthesize(in).Dimensions.Color
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestSynthesizeCapPorTexto(t *testing.T) {
	s := NewSynthesizer()
	// Un solo texto repetitivo no puede mover una dimensión más de 1.0.
	res := s.Synthesize(Input{
		Title:       "Spam",
		Genres:      []string{"Drama"},
		ReviewTexts: []string{"gorgeous gorgeous gorgeous gorgeous gorgeous gorgeous"},
	})
	assert.LessOrEqual(t, res.Dimensions.Color, 4.0)
}

func TestSynthesizeDirectorConocido(t *testing.T) {
	s := NewSynthesizer()
	res := s.Synthesize(Input{
		Title:    "Simetría",
		Genres:   []string{"Comedy"},
		Director: "Wes Anderson",
	})
	// color: 0.3*3 + 0.7*5 = 4.4 → 4.5
	assert.Equal(t, 4.5, res.Dimensions.Color)
	assert.GreaterOrEqual(t, res.Dimensions.Camp, 4.0)
}

func TestSynthesizeValoresEnRango(t *testing.T) {
	s := NewSynthesizer()
	res := s.Synthesize(Input{
		Title:    "Extremo",
		Genres:   []string{"Horror", "Thriller", "Drama"},
		Director: "Bong Joon-ho",
		ReviewTexts: []string{
			"dark disturbing intense heavy",
			"dark disturbing intense heavy",
			"depressing bleak sad slow boring",
		},
	})
	for _, name := range dimensionNamesForTest() {
		v := res.Dimensions.Get(name)
		assert.GreaterOrEqual(t, v, 1.0, name)
		assert.LessOrEqual(t, v, 5.0, name)
		// Redondeo a medios puntos.
		assert.Equal(t, v, float64(int(v*2))/2, name)
	}
}

func TestConfidenceConReviews(t *testing.T) {
	s := NewSynthesizer()
	n25, n80 := 25, 80

	conMitad := s.Synthesize(Input{Title: "x", Genres: []string{"Drama"}, ReviewCount: &n25})
	assert.InDelta(t, 0.5, conMitad.Confidence, 1e-9)

	tope := s.Synthesize(Input{Title: "x", Genres: []string{"Drama"}, ReviewCount: &n80})
	assert.Equal(t, 1.0, tope.Confidence)
}

func TestConfidenceSoloMetadata(t *testing.T) {
	s := NewSynthesizer()
	res := s.Synthesize(Input{
		Title:          "x",
		Genres:         []string{"Drama", "Thriller", "Crime"},
		Director:       "Christopher Nolan",
		ExternalRating: 8.8,
		Year:           2010,
	})
	// 0.3 base + 0.1 por cada señal de metadata.
	assert.InDelta(t, 0.7, res.Confidence, 1e-9)
}

func TestSynthesizeDeterminista(t *testing.T) {
	s := NewSynthesizer()
	in := Input{
		Title:       "Repetible",
		Genres:      []string{"Sci-Fi", "Action"},
		Director:    "George Miller",
		ReviewTexts: []string{"non-stop adrenaline, visually stunning"},
	}
	a := s.Synthesize(in)
	b := s.Synthesize(in)
	assert.Equal(t, a, b)
}

func TestPredictMetadataOnly(t *testing.T) {
	s := NewSynthesizer()
	res := s.PredictMetadataOnly(Input{
		Title:          "Épica",
		Genres:         []string{"Sci-Fi"},
		Runtime:        165,
		ExternalRating: 8.6,
		Year:           2014,
	})
	// Sci-Fi + rating alto empujan la originalidad por encima del neutro.
	assert.GreaterOrEqual(t, res.Dimensions.Novelty, 4.0)
	for _, name := range dimensionNamesForTest() {
		v := res.Dimensions.Get(name)
		assert.GreaterOrEqual(t, v, 1.0, name)
		assert.LessOrEqual(t, v, 5.0, name)
	}
}

func TestSummaryNombraDimensiones(t *testing.T) {
	s := NewSynthesizer()
	n := 34
	res := s.Synthesize(Input{
		Title:           "Colores",
		Genres:          []string{"Animation"},
		ReviewCount:     &n,
		CommunityRating: 4.2,
	})
	assert.Contains(t, res.Summary, "34 community reviews")
	assert.Contains(t, res.Summary, "Colores")
	assert.Contains(t, res.Summary, "4.2/5.0")
}

func dimensionNamesForTest() []string {
	return []string{
		"serotonin", "brainy_bonkers", "camp", "color", "pace",
		"darkness", "novelty", "social_safe", "runtime_fit", "subs_energy",
	}
}
