package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
	"github.com/karenpiper/movievibe/internal/synthesis"
)

const (
	// Tamaño de lote del poblado; la cancelación corta en el borde de lote.
	populationBatchSize = 5

	// Política de repoblado: el catálogo persistido se reutiliza hasta 7 días.
	repopulateAfter = 7 * 24 * time.Hour
)

// CatalogStore es la persistencia del blob de catálogo.
type CatalogStore interface {
	Load(ctx context.Context) (*models.CatalogDoc, error)
	Save(ctx context.Context, doc models.CatalogDoc) error
}

// PopulationProgress es el avance reportado durante el poblado.
type PopulationProgress struct {
	Total        int    `json:"total"`
	Completed    int    `json:"completed"`
	CurrentMovie string `json:"current_movie"`
	Status       string `json:"status"` // "analyzing" | "complete" | "error"
}

// ProgressFunc recibe el avance; puede ser nil.
type ProgressFunc func(PopulationProgress)

// ====== Poblado del catálogo ======
//
// Sintetiza el corpus curado en lotes y lo instala en el catálogo de una
// sola vez. Mientras corre, el catálogo sigue en estado loading: nadie ve
// un poblado a medias.

type PopulationService struct {
	store      *catalog.Store
	catalogs   CatalogStore
	synth      *synthesis.Synthesizer
	onProgress ProgressFunc
}

func NewPopulationService(store *catalog.Store, catalogs CatalogStore, synth *synthesis.Synthesizer) *PopulationService {
	return &PopulationService{store: store, catalogs: catalogs, synth: synth}
}

// OnProgress registra el callback de avance (por ejemplo, el socket).
func (s *PopulationService) OnProgress(fn ProgressFunc) {
	s.onProgress = fn
}

// EnsurePopulated deja el catálogo listo: restaura el blob persistido si es
// reciente, o repuebla desde el corpus si no existe o venció.
func (s *PopulationService) EnsurePopulated(ctx context.Context) error {
	doc, err := s.catalogs.Load(ctx)
	if err != nil {
		log.Printf("[population] error leyendo catálogo persistido: %v", err)
	}
	if doc != nil && time.Since(doc.PopulatedAt) <= repopulateAfter {
		s.store.Restore(*doc)
		log.Printf("[population] catálogo restaurado: %d películas (pobladas %s)",
			len(doc.Movies), doc.PopulatedAt.Format(time.RFC3339))
		return nil
	}
	return s.Populate(ctx)
}

// Populate sintetiza el corpus completo en lotes y lo instala. Si el
// contexto se cancela entre lotes, el catálogo queda como estaba y se
// instala el corpus mínimo de respaldo para no dejar el sistema vacío.
func (s *PopulationService) Populate(ctx context.Context) error {
	s.store.SetLoading()
	total := len(seedCorpus)

	var movies []models.Movie
	ratings := make(map[string]models.Rating)

	for i := 0; i < total; i += populationBatchSize {
		if err := ctx.Err(); err != nil {
			log.Printf("[population] cancelado en película %d/%d, instalando respaldo", i, total)
			s.installFallback()
			return err
		}

		end := i + populationBatchSize
		if end > total {
			end = total
		}
		for _, seed := range seedCorpus[i:end] {
			s.reportProgress(len(movies), total, seed.Title, "analyzing")
			movie, rating := s.synthesizeSeed(seed)
			movies = append(movies, movie)
			ratings[movie.ID] = rating
		}
	}

	summary := buildSummary(movies, ratings)
	now := time.Now().UTC()
	s.store.ReplaceAll(movies, ratings, summary, now)
	s.reportProgress(total, total, "", "complete")

	if err := s.catalogs.Save(ctx, s.store.Snapshot()); err != nil {
		// El catálogo en memoria ya quedó listo; la persistencia se
		// reintentará en el próximo poblado.
		log.Printf("[population] error persistiendo catálogo: %v", err)
	}

	log.Printf("[population] catálogo listo: %d películas, confianza media %.2f",
		summary.Count, summary.AvgConfidence)
	return nil
}

// synthesizeSeed convierte una entrada del corpus en película + rating.
func (s *PopulationService) synthesizeSeed(seed seedMovie) (models.Movie, models.Rating) {
	reviewCount := seed.ReviewCount
	res := s.synth.Synthesize(synthesis.Input{
		Title:           seed.Title,
		Genres:          seed.Genres,
		Director:        seed.Director,
		Runtime:         seed.Runtime,
		Year:            seed.Year,
		ReviewTexts:     seed.Reviews,
		ReviewCount:     &reviewCount,
		CommunityRating: seed.CommunityRating,
	})

	movie := models.Movie{
		ID:       newMovieID(),
		Title:    seed.Title,
		Year:     seed.Year,
		Genres:   seed.Genres,
		Director: seed.Director,
		Runtime:  seed.Runtime,
		Logline: fmt.Sprintf("Popular on Letterboxd with %d reviews. Community rating: %.1f/5.0",
			seed.ReviewCount, seed.CommunityRating),
		PosterURL:  seed.PosterURL,
		IMDBRating: letterboxdToIMDB(seed.CommunityRating),
		Provenance: &models.Provenance{
			ExternalID:      seed.ExternalID,
			ExternalURL:     seed.ExternalURL,
			CommunityRating: seed.CommunityRating,
			ReviewCount:     seed.ReviewCount,
			Confidence:      res.Confidence,
			Summary:         res.Summary,
		},
	}

	rating := models.Rating{
		ID:         "rating_" + movie.ID,
		MovieID:    movie.ID,
		Dimensions: res.Dimensions,
		Overall:    int(math.Round(seed.CommunityRating)),
		Notes: fmt.Sprintf("AI analysis based on %d community reviews. Confidence: %d%%",
			len(seed.Reviews), int(math.Round(res.Confidence*100))),
		Source: models.RatingSourceSynthesized,
	}
	return movie, rating
}

// installFallback instala el corpus mínimo para que el catálogo nunca quede
// inutilizable tras un poblado fallido.
func (s *PopulationService) installFallback() {
	var movies []models.Movie
	ratings := make(map[string]models.Rating)
	for _, seed := range fallbackCorpus {
		movie, rating := s.synthesizeSeed(seed)
		movies = append(movies, movie)
		ratings[movie.ID] = rating
	}
	s.store.ReplaceAll(movies, ratings, buildSummary(movies, ratings), time.Time{})
}

// buildSummary arma las estadísticas del poblado: cantidad, confianza media
// y las dimensiones que más veces puntuaron alto.
func buildSummary(movies []models.Movie, ratings map[string]models.Rating) models.CatalogSummary {
	if len(movies) == 0 {
		return models.CatalogSummary{TopDimensions: []string{}}
	}

	var confSum float64
	counts := make(map[string]int)
	for _, m := range movies {
		if m.Provenance != nil {
			confSum += m.Provenance.Confidence
		}
		r, ok := ratings[m.ID]
		if !ok {
			continue
		}
		for _, name := range models.DimensionNames {
			if r.Dimensions.Get(name) >= 4 {
				counts[name]++
			}
		}
	}

	type dimCount struct {
		name  string
		count int
	}
	var ranked []dimCount
	for name, c := range counts {
		ranked = append(ranked, dimCount{name, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})

	top := []string{}
	for i := 0; i < len(ranked) && i < 5; i++ {
		top = append(top, strings.ReplaceAll(ranked[i].name, "_", " "))
	}

	return models.CatalogSummary{
		Count:         len(movies),
		AvgConfidence: math.Round(confSum/float64(len(movies))*100) / 100,
		TopDimensions: top,
	}
}

func (s *PopulationService) reportProgress(completed, total int, current, status string) {
	if s.onProgress != nil {
		s.onProgress(PopulationProgress{
			Total:        total,
			Completed:    completed,
			CurrentMovie: current,
			Status:       status,
		})
	}
}

// letterboxdToIMDB aproxima el rating 0.5-5.0 de la comunidad a escala IMDB.
func letterboxdToIMDB(rating float64) float64 {
	return math.Round((rating*1.8+0.5)*10) / 10
}

func newMovieID() string {
	return fmt.Sprintf("movie_%d_%05d", time.Now().Unix(), rand.Intn(100000))
}
