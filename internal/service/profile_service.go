package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/cache"
	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
)

const (
	// Decaimiento exponencial del peso de ratings viejos.
	prefDecay = 0.1

	// Los vecinos necesitan al menos 2 películas en común y similitud >= 0.3.
	minCommonRatings = 2
	minNeighborSim   = 0.3
	maxNeighbors     = 10
	commonSaturation = 5.0

	// Mezcla colaborativa: 60% metadata, 40% vecinos.
	metadataWeight = 0.6
	collabWeight   = 0.4
)

// ProfileStore es la persistencia de perfiles que necesita el servicio.
type ProfileStore interface {
	Load(ctx context.Context, userID string) (*models.UserProfile, error)
	Save(ctx context.Context, profile models.UserProfile) error
	All(ctx context.Context) ([]models.UserProfile, error)
}

// ====== Motor de perfiles ======
//
// Mantiene el perfil de gustos por usuario: ratings acumulados, vector de
// preferencias con decaimiento exponencial y vecinos por similitud.

type ProfileService struct {
	mu            sync.Mutex
	profiles      ProfileStore
	store         *catalog.Store
	collabEnabled bool
}

func NewProfileService(profiles ProfileStore, store *catalog.Store, collabEnabled bool) *ProfileService {
	return &ProfileService{profiles: profiles, store: store, collabEnabled: collabEnabled}
}

// Get devuelve el perfil del usuario, o uno vacío si todavía no existe.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	p, err := s.profiles.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &models.UserProfile{UserID: userID}, nil
	}
	return p, nil
}

// RegisterRating valida y registra un rating del usuario, recalcula sus
// preferencias y marca la película como vista. Un segundo rating de la misma
// película reemplaza al anterior.
func (s *ProfileService) RegisterRating(ctx context.Context, userID string, rating models.Rating) (*models.UserProfile, error) {
	if err := validateUserRating(rating); err != nil {
		return nil, err
	}
	if _, ok := s.store.Get(rating.MovieID); !ok {
		return nil, fmt.Errorf("película %s: %w", rating.MovieID, apperrors.ErrNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	rating.Source = models.RatingSourceUser
	if rating.ID == "" {
		rating.ID = fmt.Sprintf("rating_%d_%d", time.Now().Unix(), rand.Intn(100000))
	}

	replaced := false
	for i := range profile.Ratings {
		if profile.Ratings[i].MovieID == rating.MovieID {
			profile.Ratings[i] = rating
			replaced = true
			break
		}
	}
	if !replaced {
		profile.Ratings = append(profile.Ratings, rating)
	}

	profile.Preferences = computePreferences(profile.Ratings)
	profile.RatingsCount = len(profile.Ratings)
	profile.Confidence = math.Min(1.0, float64(profile.RatingsCount)/10.0)

	// Cada rating nuevo recalcula la vecindad antes de persistir.
	sims, err := s.neighborsFor(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.Neighbors = profile.Neighbors[:0]
	for _, sim := range sims {
		profile.Neighbors = append(profile.Neighbors, sim.UserID)
	}

	if err := s.store.UpdateSeen(rating.MovieID, true); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, *profile); err != nil {
		return nil, err
	}

	// El perfil cambió: las recomendaciones cacheadas quedaron viejas.
	_ = cache.InvalidateUser(ctx, userID)

	return profile, nil
}

func validateUserRating(r models.Rating) error {
	if r.MovieID == "" {
		return fmt.Errorf("movieId vacío: %w", apperrors.ErrInvalidInput)
	}
	if r.Overall < 1 || r.Overall > 5 {
		return fmt.Errorf("overall %d fuera de 1-5: %w", r.Overall, apperrors.ErrInvalidInput)
	}
	for _, name := range models.DimensionNames {
		v := r.Dimensions.Get(name)
		if v < 1 || v > 5 || v != math.Trunc(v) {
			return fmt.Errorf("dimensión %s=%v fuera de 1-5: %w", name, v, apperrors.ErrInvalidInput)
		}
	}
	return nil
}

// computePreferences promedia los vectores de ratings con peso exponencial:
// los más recientes pesan más, y los de películas mejor puntuadas también.
func computePreferences(ratings []models.Rating) models.Vector {
	if len(ratings) == 0 {
		return models.Vector{}
	}

	n := len(ratings)
	sums := make([]float64, models.NumDimensions)
	var totalWeight float64
	for i, r := range ratings {
		recency := math.Exp(-prefDecay * float64(n-i-1))
		weight := recency * (float64(r.Overall) / 5.0)
		for d, v := range r.Dimensions.ToSlice() {
			sums[d] += v * weight
		}
		totalWeight += weight
	}
	if totalWeight == 0 {
		return models.Vector{}
	}
	for d := range sums {
		sums[d] /= totalWeight
	}
	return models.VectorFromSlice(sums)
}

// Neighbors calcula los usuarios más parecidos comparando ratings sobre
// películas en común. Mezcla Pearson (correlación de forma) y coseno
// (cercanía absoluta), atenuada si hay pocas películas compartidas.
func (s *ProfileService) Neighbors(ctx context.Context, userID string) ([]models.UserSimilarity, error) {
	me, err := s.profiles.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.neighborsFor(ctx, me)
}

// neighborsFor corre el cálculo sobre un perfil ya en memoria, que puede
// tener ratings todavía no persistidos.
func (s *ProfileService) neighborsFor(ctx context.Context, me *models.UserProfile) ([]models.UserSimilarity, error) {
	if me == nil || len(me.Ratings) == 0 {
		return []models.UserSimilarity{}, nil
	}

	others, err := s.profiles.All(ctx)
	if err != nil {
		return nil, err
	}

	mine := ratingsByMovie(me.Ratings)
	var sims []models.UserSimilarity
	for _, other := range others {
		if other.UserID == me.UserID {
			continue
		}
		theirs := ratingsByMovie(other.Ratings)

		var a, b []float64
		for movieID, overall := range mine {
			if ov, ok := theirs[movieID]; ok {
				a = append(a, overall)
				b = append(b, ov)
			}
		}
		if len(a) < minCommonRatings {
			continue
		}

		sim := (0.7*pearsonSim(a, b) + 0.3*cosineSim(a, b)) *
			math.Min(1.0, float64(len(a))/commonSaturation)
		if sim < minNeighborSim {
			continue
		}
		sims = append(sims, models.UserSimilarity{
			UserID:        other.UserID,
			Similarity:    math.Round(sim*1000) / 1000,
			CommonRatings: len(a),
		})
	}

	sort.Slice(sims, func(i, j int) bool {
		if sims[i].Similarity != sims[j].Similarity {
			return sims[i].Similarity > sims[j].Similarity
		}
		return sims[i].UserID < sims[j].UserID
	})
	if len(sims) > maxNeighbors {
		sims = sims[:maxNeighbors]
	}
	if sims == nil {
		sims = []models.UserSimilarity{}
	}
	return sims, nil
}

// neighborContribution es el vector de rating de un vecino junto con su peso
// de similitud y los géneros de la película valorada.
type neighborContribution struct {
	sim    float64
	dims   []float64
	genres []string
}

// CollaborativeBlender arma la función de mezcla colaborativa para el scorer.
// La predicción colaborativa de una película promedia, ponderado por
// similitud, los vectores de rating de los vecinos sobre películas que
// comparten al menos un género con ella; el resultado se combina 60/40 con
// el vector por metadata, componente a componente. Devuelve nil si el toggle
// está apagado o no hay material de vecinos: el scorer sigue con el vector
// sintetizado tal cual.
func (s *ProfileService) CollaborativeBlender(ctx context.Context, userID string) (VectorBlender, error) {
	if !s.collabEnabled {
		return nil, nil
	}

	sims, err := s.Neighbors(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(sims) == 0 {
		return nil, nil
	}

	var contribs []neighborContribution
	for _, sim := range sims {
		other, err := s.profiles.Load(ctx, sim.UserID)
		if err != nil {
			return nil, err
		}
		if other == nil {
			continue
		}
		for _, r := range other.Ratings {
			rated, ok := s.store.Get(r.MovieID)
			if !ok {
				continue
			}
			contribs = append(contribs, neighborContribution{
				sim:    sim.Similarity,
				dims:   r.Dimensions.ToSlice(),
				genres: rated.Genres,
			})
		}
	}
	if len(contribs) == 0 {
		return nil, nil
	}

	return func(movie models.Movie, meta models.Vector) models.Vector {
		sums := make([]float64, models.NumDimensions)
		var total float64
		for _, c := range contribs {
			if !sharesGenre(movie.Genres, c.genres) {
				continue
			}
			for d, v := range c.dims {
				sums[d] += c.sim * v
			}
			total += c.sim
		}
		// Sin ratings que califiquen, la predicción por metadata queda sola.
		if total == 0 {
			return meta
		}
		m := meta.ToSlice()
		out := make([]float64, models.NumDimensions)
		for d := range out {
			out[d] = metadataWeight*m[d] + collabWeight*(sums[d]/total)
		}
		return models.VectorFromSlice(out)
	}, nil
}

func sharesGenre(a, b []string) bool {
	for _, ga := range a {
		for _, gb := range b {
			if ga == gb {
				return true
			}
		}
	}
	return false
}

func ratingsByMovie(ratings []models.Rating) map[string]float64 {
	out := make(map[string]float64, len(ratings))
	for _, r := range ratings {
		out[r.MovieID] = float64(r.Overall)
	}
	return out
}
