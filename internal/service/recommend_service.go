package service

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/cache"
	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
)

const (
	DefaultK = 20
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems

	// Ventana total del ruido exploratorio: uniforme en [-w/2, +w/2].
	defaultJitterWidth = 0.1

	recCacheTTLSeconds = 3600
)

// maxDistance es la distancia Manhattan máxima posible entre dos vectores
// 1-5 de diez dimensiones: 10 * |5-1|.
const maxDistance = 40.0

// JitterFunc produce el ruido exploratorio para una ventana dada. Inyectable
// para que los tests puedan fijarlo en cero.
type JitterFunc func(width float64) float64

func uniformJitter(width float64) float64 {
	return (rand.Float64() - 0.5) * width
}

// ====== Scorer de recomendaciones ======

type RecommendService struct {
	store       *catalog.Store
	jitter      JitterFunc
	jitterWidth float64
}

func NewRecommendService(store *catalog.Store) *RecommendService {
	return &RecommendService{
		store:       store,
		jitter:      uniformJitter,
		jitterWidth: defaultJitterWidth,
	}
}

// WithJitter reemplaza la fuente de ruido. width <= 0 lo apaga.
func (s *RecommendService) WithJitter(fn JitterFunc, width float64) *RecommendService {
	s.jitter = fn
	s.jitterWidth = width
	return s
}

// VectorBlender ajusta el vector sintetizado de una película antes de
// puntuarla (mezcla colaborativa). nil deja el vector como está.
type VectorBlender func(movie models.Movie, meta models.Vector) models.Vector

// RecRequest son los parámetros de una pedida de recomendaciones.
type RecRequest struct {
	UserID  string
	Vibe    models.Vector
	K       int
	Refresh bool

	// Perfil opcional para personalizar: si Profile no es nil y tiene
	// preferencias, se suma un ajuste por afinidad con el gusto histórico.
	Profile *models.UserProfile

	// Mezcla colaborativa opcional sobre el vector de cada película.
	Blend VectorBlender
}

// Recommend puntúa el catálogo contra el vibe pedido y devuelve el top K.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.Movie, error) {
	if s.store.State() != catalog.StateReady {
		return nil, apperrors.ErrNotReady
	}

	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	// 1) Cache Redis (solo si refresh = false)
	key := cache.RecKey(req.UserID, req.Vibe, req.K)
	if !req.Refresh {
		var cached []models.Movie
		if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Puntuar candidatos: no vistas con rating sintetizado.
	var scored []models.Movie
	vibe := req.Vibe.ToSlice()
	for _, movie := range s.store.EnumerateUnseen() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rating, ok := s.store.GetRating(movie.ID)
		if !ok {
			continue
		}

		dims := rating.Dimensions
		if req.Blend != nil {
			dims = req.Blend(movie, dims)
		}

		score := s.scoreOne(vibe, movie, dims.ToSlice(), req.Profile)
		movie.Score = &score
		scored = append(scored, movie)
	}

	// 3) Orden estable: score descendente, empates por id ascendente.
	sort.Slice(scored, func(i, j int) bool {
		si, sj := *scored[i].Score, *scored[j].Score
		if si != sj {
			return si > sj
		}
		return scored[i].ID < scored[j].ID
	})
	if len(scored) > req.K {
		scored = scored[:req.K]
	}
	if scored == nil {
		scored = []models.Movie{}
	}

	// 4) Guardar en cache; si Redis no está, es un no-op.
	_ = cache.SetJSON(ctx, key, scored, recCacheTTLSeconds)

	return scored, nil
}

// scoreOne calcula el puntaje 0-5 de una película contra el vibe pedido.
func (s *RecommendService) scoreOne(vibe []float64, movie models.Movie, dims []float64, profile *models.UserProfile) float64 {
	// Distancia Manhattan → similitud lineal 0-5.
	var dist float64
	for i := range vibe {
		dist += math.Abs(vibe[i] - dims[i])
	}
	score := math.Max(0, 5-(dist/maxDistance)*5)

	// Ruido exploratorio para que dos pedidas iguales no sean clones.
	if s.jitter != nil && s.jitterWidth > 0 {
		score += s.jitter(s.jitterWidth)
	}

	// Penalidad por duración: si el usuario pide algo corto, las épicas bajan.
	if vibe[idxRuntimeFit] < 2.5 && movie.Runtime > 150 {
		score -= 0.5
	}

	// Puntaje de catálogo cerrado a un decimal; la personalización se suma
	// sobre el puntaje ya redondeado.
	score = roundScore(score)

	// Personalización: afinidad del gusto histórico con este título.
	if profile != nil && profile.Confidence > 0 && !profile.Preferences.IsZero() {
		affinity := cosineSim(profile.Preferences.ToSlice(), dims)
		score = roundScore(score + 0.3*affinity*profile.Confidence)
	}

	return score
}

func roundScore(score float64) float64 {
	score = math.Max(0, math.Min(5, score))
	return math.Round(score*10) / 10
}

// idxRuntimeFit es la posición de runtime_fit en el orden canónico.
var idxRuntimeFit = func() int {
	for i, name := range models.DimensionNames {
		if name == "runtime_fit" {
			return i
		}
	}
	return 8
}()
