package catalog

import (
	"sync"
	"time"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/models"
)

// ====== Catálogo en memoria ======
//
// Fuente de verdad del catálogo durante la vida del proceso. Todas las
// operaciones toman el lock; las lecturas masivas devuelven copias para que
// los llamadores puedan iterar sin sostenerlo.

// State es el estado de carga del catálogo.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Store guarda películas con sus ratings sintetizados, indexadas por id.
// El orden de inserción se preserva para que la enumeración sea estable.
type Store struct {
	mu          sync.RWMutex
	state       State
	order       []string
	movies      map[string]models.Movie
	ratings     map[string]models.Rating
	populatedAt time.Time
	summary     models.CatalogSummary
}

func NewStore() *Store {
	return &Store{
		movies:  make(map[string]models.Movie),
		ratings: make(map[string]models.Rating),
	}
}

// State devuelve el estado actual de carga.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// SetLoading marca el catálogo como en proceso de poblado.
func (st *Store) SetLoading() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = StateLoading
}

// SetReady marca el catálogo como listo y registra el resumen del poblado.
func (st *Store) SetReady(summary models.CatalogSummary, populatedAt time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = StateReady
	st.summary = summary
	st.populatedAt = populatedAt
}

// Insert agrega o reemplaza una película, con su rating sintetizado si lo hay.
func (st *Store) Insert(movie models.Movie, rating *models.Rating) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, exists := st.movies[movie.ID]; !exists {
		st.order = append(st.order, movie.ID)
	}
	st.movies[movie.ID] = movie
	if rating != nil {
		st.ratings[movie.ID] = *rating
	}
}

// Get devuelve una película por id.
func (st *Store) Get(id string) (models.Movie, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	m, ok := st.movies[id]
	return m, ok
}

// GetRating devuelve el rating sintetizado de una película, si existe.
func (st *Store) GetRating(movieID string) (models.Rating, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	r, ok := st.ratings[movieID]
	return r, ok
}

// UpdateSeen marca una película como vista o no vista.
func (st *Store) UpdateSeen(id string, seen bool) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	m, ok := st.movies[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.Seen = seen
	st.movies[id] = m
	return nil
}

// All devuelve todas las películas en orden de inserción.
func (st *Store) All() []models.Movie {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]models.Movie, 0, len(st.order))
	for _, id := range st.order {
		out = append(out, st.movies[id])
	}
	return out
}

// EnumerateUnseen devuelve las películas no vistas, en orden de inserción.
func (st *Store) EnumerateUnseen() []models.Movie {
	st.mu.RLock()
	defer st.mu.RUnlock()
	var out []models.Movie
	for _, id := range st.order {
		if m := st.movies[id]; !m.Seen {
			out = append(out, m)
		}
	}
	return out
}

// Count devuelve la cantidad de películas.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.order)
}

// Summary devuelve el resumen del último poblado.
func (st *Store) Summary() models.CatalogSummary {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.summary
}

// PopulatedAt devuelve cuándo se pobló el catálogo por última vez.
func (st *Store) PopulatedAt() time.Time {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.populatedAt
}

// Snapshot serializa el contenido completo para persistir. Las películas y
// ratings se copian; el documento resultante no comparte memoria con el store.
func (st *Store) Snapshot() models.CatalogDoc {
	st.mu.RLock()
	defer st.mu.RUnlock()
	doc := models.CatalogDoc{
		Movies:             make([]models.Movie, 0, len(st.order)),
		SynthesizedRatings: make([]models.Rating, 0, len(st.ratings)),
		PopulatedAt:        st.populatedAt,
		Summary:            st.summary,
	}
	for _, id := range st.order {
		doc.Movies = append(doc.Movies, st.movies[id])
		if r, ok := st.ratings[id]; ok {
			doc.SynthesizedRatings = append(doc.SynthesizedRatings, r)
		}
	}
	return doc
}

// Restore reemplaza el contenido completo desde un documento persistido y
// deja el catálogo listo. Es todo-o-nada: el estado previo se descarta.
func (st *Store) Restore(doc models.CatalogDoc) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.order = st.order[:0]
	st.movies = make(map[string]models.Movie, len(doc.Movies))
	st.ratings = make(map[string]models.Rating, len(doc.SynthesizedRatings))
	for _, m := range doc.Movies {
		st.order = append(st.order, m.ID)
		st.movies[m.ID] = m
	}
	for _, r := range doc.SynthesizedRatings {
		st.ratings[r.MovieID] = r
	}
	st.populatedAt = doc.PopulatedAt
	st.summary = doc.Summary
	st.state = StateReady
}

// ReplaceAll instala un catálogo armado por fuera (poblado en staging) de
// una sola vez. movies y ratings deben venir apareados por índice cuando
// corresponde; ratings nil se omiten.
func (st *Store) ReplaceAll(movies []models.Movie, ratings map[string]models.Rating, summary models.CatalogSummary, populatedAt time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.order = st.order[:0]
	st.movies = make(map[string]models.Movie, len(movies))
	st.ratings = make(map[string]models.Rating, len(ratings))
	for _, m := range movies {
		st.order = append(st.order, m.ID)
		st.movies[m.ID] = m
	}
	for id, r := range ratings {
		st.ratings[id] = r
	}
	st.populatedAt = populatedAt
	st.summary = summary
	st.state = StateReady
}
