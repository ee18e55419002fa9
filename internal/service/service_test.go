package service

import (
	"context"
	"time"

	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
)

var timeNowFixed = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

// Fakes en memoria para los stores de persistencia.

type memProfiles struct {
	m map[string]models.UserProfile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{m: make(map[string]models.UserProfile)}
}

func (f *memProfiles) Load(_ context.Context, userID string) (*models.UserProfile, error) {
	p, ok := f.m[userID]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (f *memProfiles) Save(_ context.Context, profile models.UserProfile) error {
	f.m[profile.UserID] = profile
	return nil
}

func (f *memProfiles) All(_ context.Context) ([]models.UserProfile, error) {
	out := make([]models.UserProfile, 0, len(f.m))
	for _, p := range f.m {
		out = append(out, p)
	}
	return out, nil
}

type memCatalogs struct {
	doc   *models.CatalogDoc
	saves int
}

func (f *memCatalogs) Load(_ context.Context) (*models.CatalogDoc, error) {
	if f.doc == nil {
		return nil, nil
	}
	cp := *f.doc
	return &cp, nil
}

func (f *memCatalogs) Save(_ context.Context, doc models.CatalogDoc) error {
	f.doc = &doc
	f.saves++
	return nil
}

type memOnboardings struct {
	m map[string]models.OnboardingDoc
}

func newMemOnboardings() *memOnboardings {
	return &memOnboardings{m: make(map[string]models.OnboardingDoc)}
}

func (f *memOnboardings) Load(_ context.Context, userID string) (*models.OnboardingDoc, error) {
	doc, ok := f.m[userID]
	if !ok {
		return nil, nil
	}
	cp := doc
	return &cp, nil
}

func (f *memOnboardings) Save(_ context.Context, userID string, doc models.OnboardingDoc) error {
	f.m[userID] = doc
	return nil
}

func (f *memOnboardings) Delete(_ context.Context, userID string) error {
	delete(f.m, userID)
	return nil
}

// vec arma un vector desde los diez valores en orden canónico.
func vec(vals ...float64) models.Vector {
	return models.VectorFromSlice(vals)
}

// readyStore arma un catálogo listo con películas y ratings sintetizados.
func readyStore(entries ...catalogEntry) *catalog.Store {
	st := catalog.NewStore()
	for _, e := range entries {
		movie := e.movie
		rating := models.Rating{
			ID:         "rating_" + movie.ID,
			MovieID:    movie.ID,
			Dimensions: e.dims,
			Overall:    4,
			Source:     models.RatingSourceSynthesized,
		}
		if e.sinRating {
			st.Insert(movie, nil)
		} else {
			st.Insert(movie, &rating)
		}
	}
	st.SetReady(models.CatalogSummary{Count: len(entries)}, timeNowFixed)
	return st
}

type catalogEntry struct {
	movie     models.Movie
	dims      models.Vector
	sinRating bool
}

func entry(id string, dims models.Vector) catalogEntry {
	return catalogEntry{
		movie: models.Movie{ID: id, Title: "Película " + id, Runtime: 100},
		dims:  dims,
	}
}

// zeroJitter apaga el ruido para tests deterministas.
func zeroJitter(s *RecommendService) *RecommendService {
	return s.WithJitter(func(float64) float64 { return 0 }, 0)
}
