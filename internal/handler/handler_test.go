package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
	"github.com/karenpiper/movievibe/internal/service"
)

const testSecret = "secreto-de-test"

// ====== fakes en memoria ======

type memProfiles struct{ byUser map[string]models.UserProfile }

func newMemProfiles() *memProfiles {
	return &memProfiles{byUser: map[string]models.UserProfile{}}
}

func (m *memProfiles) Load(_ context.Context, userID string) (*models.UserProfile, error) {
	p, ok := m.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memProfiles) Save(_ context.Context, profile models.UserProfile) error {
	m.byUser[profile.UserID] = profile
	return nil
}

func (m *memProfiles) All(_ context.Context) ([]models.UserProfile, error) {
	out := make([]models.UserProfile, 0, len(m.byUser))
	for _, p := range m.byUser {
		out = append(out, p)
	}
	return out, nil
}

type memOnboardings struct{ byUser map[string]models.OnboardingDoc }

func newMemOnboardings() *memOnboardings {
	return &memOnboardings{byUser: map[string]models.OnboardingDoc{}}
}

func (m *memOnboardings) Load(_ context.Context, userID string) (*models.OnboardingDoc, error) {
	d, ok := m.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *memOnboardings) Save(_ context.Context, userID string, doc models.OnboardingDoc) error {
	m.byUser[userID] = doc
	return nil
}

func (m *memOnboardings) Delete(_ context.Context, userID string) error {
	delete(m.byUser, userID)
	return nil
}

// ====== helpers ======

func vec(vals ...float64) models.Vector {
	return models.VectorFromSlice(vals)
}

func readyStore() *catalog.Store {
	st := catalog.NewStore()
	st.SetLoading()

	exacta := models.Movie{ID: "m1", Title: "Exacta", Runtime: 100}
	st.Insert(exacta, &models.Rating{
		MovieID:    "m1",
		Dimensions: vec(3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
		Source:     models.RatingSourceSynthesized,
	})

	lejana := models.Movie{ID: "m2", Title: "Lejana", Runtime: 100}
	st.Insert(lejana, &models.Rating{
		MovieID:    "m2",
		Dimensions: vec(4, 4, 4, 4, 4, 4, 4, 4, 4, 4),
		Source:     models.RatingSourceSynthesized,
	})

	st.SetReady(models.CatalogSummary{}, time.Now())
	return st
}

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u1"))
	return req
}

func newRouter(store *catalog.Store) (chi.Router, *memProfiles) {
	profiles := newMemProfiles()
	profileSvc := service.NewProfileService(profiles, store, false)
	recSvc := service.NewRecommendService(store).
		WithJitter(func(float64) float64 { return 0 }, 0)
	onboardSvc := service.NewOnboardingService(store, newMemOnboardings(), recSvc)

	recH := NewRecommendHandler(recSvc, profileSvc)
	ratingH := NewRatingHandler(profileSvc)
	onboardH := NewOnboardingHandler(onboardSvc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(SessionAuth(testSecret))
		r.Post("/vibe/recommendations", recH.PostRecommendations)
		r.Post("/movies/{id}/rate", ratingH.PostRating)
		r.Get("/profile", ratingH.GetProfile)
		r.Post("/onboarding/answer", onboardH.Answer)
	})
	return r, profiles
}

// ====== tests ======

func TestSessionCreateEmiteTokenValido(t *testing.T) {
	h := NewSessionHandler(testSecret)

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/session", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])
	require.NotEmpty(t, body["userId"])

	// el token emitido pasa el middleware y el sub llega al contexto
	var gotUser string
	probe := SessionAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	inner := httptest.NewRecorder()
	probe.ServeHTTP(inner, req)

	assert.Equal(t, http.StatusOK, inner.Code)
	assert.Equal(t, body["userId"], gotUser)
}

func TestSessionAuthRechazaTokenInvalido(t *testing.T) {
	probe := SessionAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("el handler no debería ejecutarse")
	}))

	// sin header
	rec := httptest.NewRecorder()
	probe.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// firmado con otro secreto
	otro := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"})
	signed, err := otro.SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	probe.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPostRecommendationsOrdenaPorCercania(t *testing.T) {
	r, _ := newRouter(readyStore())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/vibe/recommendations", map[string]any{
		"vibe": vec(3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)

	// m1 calza exacto (5.0), m2 está a distancia 10 (3.8)
	assert.Equal(t, "m1", items[0].ID)
	require.NotNil(t, items[0].Score)
	assert.InDelta(t, 5.0, *items[0].Score, 1e-9)
	assert.Equal(t, "m2", items[1].ID)
	require.NotNil(t, items[1].Score)
	assert.InDelta(t, 3.8, *items[1].Score, 1e-9)
}

func TestPostRecommendationsCatalogoNoListo(t *testing.T) {
	r, _ := newRouter(catalog.NewStore())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/vibe/recommendations", map[string]any{
		"vibe": vec(3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
	}))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPostRatingActualizaPerfil(t *testing.T) {
	r, profiles := newRouter(readyStore())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/movies/m1/rate", map[string]any{
		"dimensions": vec(4, 3, 3, 5, 3, 2, 3, 4, 3, 3),
		"overall":    5,
	}))
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, 1, profile.RatingsCount)
	assert.InDelta(t, 0.1, profile.Confidence, 1e-9)

	// quedó persistido en el store de perfiles
	saved, ok := profiles.byUser["u1"]
	require.True(t, ok)
	assert.Len(t, saved.Ratings, 1)
}

func TestPostRatingMapeaErrores(t *testing.T) {
	r, _ := newRouter(readyStore())

	// overall fuera de rango -> 400
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/movies/m1/rate", map[string]any{
		"dimensions": vec(3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
		"overall":    9,
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// película inexistente -> 404
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/movies/nope/rate", map[string]any{
		"dimensions": vec(3, 3, 3, 3, 3, 3, 3, 3, 3, 3),
		"overall":    4,
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOnboardingAnswerSinSesion(t *testing.T) {
	r, _ := newRouter(readyStore())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/onboarding/answer", map[string]any{
		"value": 4,
	}))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
