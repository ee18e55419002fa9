package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
)

const onboardingSize = 10

// OnboardingStore persiste el resultado de la calibración por usuario.
type OnboardingStore interface {
	Load(ctx context.Context, userID string) (*models.OnboardingDoc, error)
	Save(ctx context.Context, userID string, doc models.OnboardingDoc) error
	Delete(ctx context.Context, userID string) error
}

// diversityCriterion describe un punto del espacio de dimensiones que la
// selección de onboarding intenta cubrir.
type diversityCriterion struct {
	criteria   string
	whyDiverse string
	expected   map[string]float64
}

var onboardingPool = []diversityCriterion{
	{
		criteria:   "High serotonin, family-friendly",
		whyDiverse: "Tests preference for pure joy and feel-good content",
		expected:   map[string]float64{"serotonin": 5, "social_safe": 5, "camp": 2, "darkness": 1},
	},
	{
		criteria:   "Extremely brainy, complex narrative",
		whyDiverse: "Tests tolerance for intellectual complexity",
		expected:   map[string]float64{"brainy_bonkers": 5, "novelty": 4, "pace": 2, "subs_energy": 3},
	},
	{
		criteria:   "High camp, deliberately absurd",
		whyDiverse: "Tests appreciation for over-the-top theatrical elements",
		expected:   map[string]float64{"camp": 5, "novelty": 4, "social_safe": 3, "brainy_bonkers": 2},
	},
	{
		criteria:   "Visually stunning, color-rich",
		whyDiverse: "Tests importance of visual aesthetics",
		expected:   map[string]float64{"color": 5, "serotonin": 4, "novelty": 3, "social_safe": 4},
	},
	{
		criteria:   "Fast-paced action",
		whyDiverse: "Tests preference for high-energy, kinetic films",
		expected:   map[string]float64{"pace": 5, "runtime_fit": 4, "serotonin": 4, "brainy_bonkers": 2},
	},
	{
		criteria:   "Dark, emotionally heavy",
		whyDiverse: "Tests tolerance for serious, depressing content",
		expected:   map[string]float64{"darkness": 5, "serotonin": 1, "social_safe": 2, "brainy_bonkers": 4},
	},
	{
		criteria:   "Highly innovative/unique",
		whyDiverse: "Tests desire for originality vs familiarity",
		expected:   map[string]float64{"novelty": 5, "brainy_bonkers": 4, "camp": 3, "color": 4},
	},
	{
		criteria:   "Subtitled foreign film",
		whyDiverse: "Tests willingness to read subtitles",
		expected:   map[string]float64{"subs_energy": 4, "brainy_bonkers": 4, "novelty": 3, "social_safe": 2},
	},
	{
		criteria:   "Long runtime, slow burn",
		whyDiverse: "Tests patience for deliberate pacing",
		expected:   map[string]float64{"runtime_fit": 2, "pace": 1, "brainy_bonkers": 4, "darkness": 3},
	},
	{
		criteria:   "Mainstream crowd-pleaser",
		whyDiverse: "Tests baseline for popular entertainment",
		expected:   map[string]float64{"social_safe": 5, "serotonin": 4, "runtime_fit": 4, "novelty": 2},
	},
}

// ====== Sesiones de onboarding ======

// SessionState es la fase de la sesión de calibración.
type SessionState string

const (
	SessionWelcome SessionState = "welcome"
	SessionRating  SessionState = "rating"
	SessionResults SessionState = "results"
)

// Session es una calibración en curso. El usuario valora dimensión por
// dimensión, en el orden canónico, y cierra cada película con un overall.
type Session struct {
	UserID    string                    `json:"user_id"`
	State     SessionState              `json:"state"`
	Movies    []models.OnboardingMovie  `json:"movies"`
	MovieIdx  int                       `json:"movie_index"`
	DimIdx    int                       `json:"dimension_index"` // 0..9 dentro de la película actual
	Ratings   []models.OnboardingRating `json:"ratings"`
	partial   models.Vector
	movieOpen time.Time
}

// CurrentMovie devuelve la película en curso, o nil si no hay.
func (s *Session) CurrentMovie() *models.OnboardingMovie {
	if s.State != SessionRating || s.MovieIdx >= len(s.Movies) {
		return nil
	}
	return &s.Movies[s.MovieIdx]
}

// CurrentDimension devuelve la dimensión que toca valorar, o "".
func (s *Session) CurrentDimension() string {
	if s.State != SessionRating || s.DimIdx >= models.NumDimensions {
		return ""
	}
	return models.DimensionNames[s.DimIdx]
}

type OnboardingService struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	store       *catalog.Store
	onboardings OnboardingStore
	recommender *RecommendService
	now         func() time.Time
}

func NewOnboardingService(store *catalog.Store, onboardings OnboardingStore, recommender *RecommendService) *OnboardingService {
	return &OnboardingService{
		sessions:    make(map[string]*Session),
		store:       store,
		onboardings: onboardings,
		recommender: recommender,
		now:         time.Now,
	}
}

// SelectMovies elige exactamente 10 películas sin ver que cubren puntos
// distintos del espacio de dimensiones. Primero intenta matchear cada
// criterio de diversidad; lo que falte se completa con películas al azar.
func (s *OnboardingService) SelectMovies(ctx context.Context) ([]models.OnboardingMovie, error) {
	if s.store.State() != catalog.StateReady {
		return nil, apperrors.ErrNotReady
	}
	all := s.store.EnumerateUnseen()
	if len(all) < onboardingSize {
		return nil, fmt.Errorf("catálogo con %d películas sin ver, se necesitan %d: %w",
			len(all), onboardingSize, apperrors.ErrNotReady)
	}

	selected := make([]models.OnboardingMovie, 0, onboardingSize)
	taken := make(map[string]bool)

	for _, criterion := range onboardingPool {
		if len(selected) >= onboardingSize {
			break
		}
		for _, movie := range all {
			if taken[movie.ID] || !movieMatchesCriterion(movie, criterion) {
				continue
			}
			taken[movie.ID] = true
			selected = append(selected, models.OnboardingMovie{
				Movie:         movie,
				WhySelected:   criterion.whyDiverse,
				DiversityTags: diversityTags(criterion.expected),
			})
			break
		}
	}

	// Relleno al azar hasta llegar a 10.
	var remaining []models.Movie
	for _, movie := range all {
		if !taken[movie.ID] {
			remaining = append(remaining, movie)
		}
	}
	rand.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	for _, movie := range remaining {
		if len(selected) >= onboardingSize {
			break
		}
		selected = append(selected, models.OnboardingMovie{
			Movie:         movie,
			WhySelected:   "Provides additional taste calibration data",
			DiversityTags: []string{"balanced", "calibration"},
		})
	}

	return selected[:onboardingSize], nil
}

// movieMatchesCriterion aproxima el criterio con heurísticas de metadata.
func movieMatchesCriterion(movie models.Movie, criterion diversityCriterion) bool {
	director := strings.ToLower(movie.Director)
	has := func(genre string) bool {
		for _, g := range movie.Genres {
			if g == genre {
				return true
			}
		}
		return false
	}

	switch {
	case criterion.expected["serotonin"] == 5:
		return has("Comedy") || has("Animation") || has("Family")
	case criterion.expected["brainy_bonkers"] == 5:
		return strings.Contains(director, "nolan") || has("Sci-Fi") || movie.Runtime > 140
	case criterion.expected["camp"] == 5:
		return strings.Contains(director, "anderson") ||
			strings.Contains(director, "lanthimos") || has("Comedy")
	case criterion.expected["color"] == 5:
		return strings.Contains(director, "anderson") ||
			strings.Contains(director, "villeneuve") || has("Animation")
	case criterion.expected["pace"] == 5:
		return has("Action") || has("Thriller")
	case criterion.expected["darkness"] == 5:
		return has("Drama") && !has("Comedy")
	case criterion.expected["novelty"] == 5:
		return movie.Year > 2015
	case criterion.expected["subs_energy"] >= 4:
		return strings.Contains(director, "bong") || strings.Contains(director, "kurosawa")
	}
	return true
}

func diversityTags(expected map[string]float64) []string {
	var tags []string
	for _, name := range models.DimensionNames {
		v, ok := expected[name]
		if !ok {
			continue
		}
		slug := strings.ReplaceAll(name, "_", "-")
		if v >= 4 {
			tags = append(tags, "high-"+slug)
		} else if v <= 2 {
			tags = append(tags, "low-"+slug)
		}
	}
	return tags
}

// Start crea (o reinicia) la sesión del usuario en la fase de bienvenida.
func (s *OnboardingService) Start(ctx context.Context, userID string) (*Session, error) {
	movies, err := s.SelectMovies(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	session := &Session{
		UserID: userID,
		State:  SessionWelcome,
		Movies: movies,
	}
	s.sessions[userID] = session
	return session, nil
}

// Begin pasa de la bienvenida a la valoración de la primera película.
func (s *OnboardingService) Begin(userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionWelcome {
		return nil, fmt.Errorf("la sesión está en %s: %w", session.State, apperrors.ErrOutOfOrder)
	}
	session.State = SessionRating
	session.movieOpen = s.now()
	return session, nil
}

// AnswerDimension registra el valor 1-5 de la dimensión en curso y avanza el
// puntero. Las diez dimensiones se responden en el orden canónico.
func (s *OnboardingService) AnswerDimension(userID string, value int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionRating || session.DimIdx >= models.NumDimensions {
		return nil, fmt.Errorf("no hay dimensión pendiente: %w", apperrors.ErrOutOfOrder)
	}
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("valor %d fuera de 1-5: %w", value, apperrors.ErrInvalidInput)
	}

	session.partial.Set(models.DimensionNames[session.DimIdx], float64(value))
	session.DimIdx++
	return session, nil
}

// SubmitOverall cierra la película en curso con su puntaje de estrellas.
// Solo es válido después de responder las diez dimensiones.
func (s *OnboardingService) SubmitOverall(userID string, overall int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionRating || session.DimIdx < models.NumDimensions {
		return nil, fmt.Errorf("quedan dimensiones sin responder: %w", apperrors.ErrOutOfOrder)
	}
	if overall < 1 || overall > 5 {
		return nil, fmt.Errorf("overall %d fuera de 1-5: %w", overall, apperrors.ErrInvalidInput)
	}

	movie := session.Movies[session.MovieIdx]
	session.Ratings = append(session.Ratings, models.OnboardingRating{
		MovieID:           movie.Movie.ID,
		MovieTitle:        movie.Movie.Title,
		Dimensions:        session.partial,
		Overall:           overall,
		CompletionSeconds: int(s.now().Sub(session.movieOpen).Seconds()),
	})
	s.advance(session)
	return session, nil
}

// Skip descarta la película en curso (con sus respuestas parciales) y pasa
// a la siguiente.
func (s *OnboardingService) Skip(userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionRating {
		return nil, fmt.Errorf("la sesión está en %s: %w", session.State, apperrors.ErrOutOfOrder)
	}
	s.advance(session)
	return session, nil
}

func (s *OnboardingService) advance(session *Session) {
	session.MovieIdx++
	session.DimIdx = 0
	session.partial = models.Vector{}
	session.movieOpen = s.now()
	if session.MovieIdx >= len(session.Movies) {
		session.State = SessionResults
	}
}

// Finish analiza los ratings acumulados, persiste el perfil de gustos y
// devuelve el resultado con las primeras recomendaciones calibradas.
func (s *OnboardingService) Finish(ctx context.Context, userID string) (*models.OnboardingResult, error) {
	s.mu.Lock()
	session, err := s.session(userID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if session.State != SessionResults {
		s.mu.Unlock()
		return nil, fmt.Errorf("la sesión está en %s: %w", session.State, apperrors.ErrOutOfOrder)
	}
	ratings := append([]models.OnboardingRating(nil), session.Ratings...)
	delete(s.sessions, userID)
	s.mu.Unlock()

	if len(ratings) == 0 {
		return nil, fmt.Errorf("sin ratings para analizar: %w", apperrors.ErrInvalidInput)
	}

	result := AnalyzeOnboarding(ratings)

	// Primeras recomendaciones con el gusto recién calibrado.
	avg := averageDimensions(ratings)
	recs, err := s.recommender.Recommend(ctx, RecRequest{UserID: userID, Vibe: avg, K: 8, Refresh: true})
	if err != nil {
		return nil, err
	}
	result.NextRecommendations = recs

	doc := models.OnboardingDoc{
		CompletedAt:  s.now().UTC(),
		TasteProfile: result.TasteProfile,
		RatingsCount: len(ratings),
	}
	if err := s.onboardings.Save(ctx, userID, doc); err != nil {
		log.Printf("[onboarding] error persistiendo resultado de %s: %v", userID, err)
	}

	return result, nil
}

// Completed devuelve el resultado persistido, si el usuario ya calibró.
func (s *OnboardingService) Completed(ctx context.Context, userID string) (*models.OnboardingDoc, error) {
	return s.onboardings.Load(ctx, userID)
}

// Reset descarta la calibración guardada y cualquier sesión en curso.
func (s *OnboardingService) Reset(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
	return s.onboardings.Delete(ctx, userID)
}

func (s *OnboardingService) session(userID string) (*Session, error) {
	session, ok := s.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("no hay sesión de onboarding: %w", apperrors.ErrOutOfOrder)
	}
	return session, nil
}

// ====== Análisis del resultado ======

// AnalyzeOnboarding convierte los ratings de la sesión en un perfil de
// gustos: promedios, dimensiones destacadas, tipo de personalidad y prosa.
func AnalyzeOnboarding(ratings []models.OnboardingRating) *models.OnboardingResult {
	avg := averageDimensions(ratings)

	var top []models.TopDimension
	for _, name := range models.DimensionNames {
		if v := avg.Get(name); v > 3.5 {
			top = append(top, models.TopDimension{
				Dimension:  strings.ReplaceAll(name, "_", " "),
				Preference: v,
			})
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Preference > top[j].Preference })
	if len(top) > 3 {
		top = top[:3]
	}
	if top == nil {
		top = []models.TopDimension{}
	}

	return &models.OnboardingResult{
		Ratings: ratings,
		TasteProfile: models.TasteProfile{
			PersonalityType:    personalityType(avg),
			TopDimensions:      top,
			MoviePreferences:   moviePreferences(avg),
			AccuracyConfidence: onboardingConfidence(ratings),
		},
	}
}

func averageDimensions(ratings []models.OnboardingRating) models.Vector {
	sums := make([]float64, models.NumDimensions)
	for _, r := range ratings {
		for d, v := range r.Dimensions.ToSlice() {
			sums[d] += v
		}
	}
	n := float64(len(ratings))
	for d := range sums {
		sums[d] = math.Round(sums[d]/n*10) / 10
	}
	return models.VectorFromSlice(sums)
}

// personalityType clasifica la combinación de dimensiones altas y bajas.
// El orden de los casos importa: gana el primero que matchea.
func personalityType(avg models.Vector) string {
	high := func(name string) bool { return avg.Get(name) >= 4 }
	low := func(name string) bool { return avg.Get(name) <= 2 }

	switch {
	case high("serotonin") && high("social_safe") && low("darkness"):
		return "Sunshine Seeker"
	case high("brainy_bonkers") && high("novelty"):
		return "Mind-Bending Explorer"
	case high("camp") && high("novelty"):
		return "Chaos Enthusiast"
	case high("color") && high("serotonin"):
		return "Visual Joy Collector"
	case high("pace") && low("runtime_fit"):
		return "Adrenaline Junkie"
	case high("darkness") && high("brainy_bonkers"):
		return "Thoughtful Pessimist"
	case low("novelty") && high("social_safe"):
		return "Comfort Zone Curator"
	default:
		return "Balanced Cinephile"
	}
}

func moviePreferences(avg models.Vector) []string {
	var prefs []string
	if avg.Get("serotonin") >= 4 {
		prefs = append(prefs, "Feel-good movies that lift your spirits")
	}
	if avg.Get("brainy_bonkers") >= 4 {
		prefs = append(prefs, "Complex, thought-provoking narratives")
	}
	if avg.Get("camp") >= 4 {
		prefs = append(prefs, "Theatrical, over-the-top entertainment")
	}
	if avg.Get("color") >= 4 {
		prefs = append(prefs, "Visually stunning cinematography")
	}
	if avg.Get("pace") >= 4 {
		prefs = append(prefs, "Fast-paced, energetic action")
	}
	if avg.Get("novelty") >= 4 {
		prefs = append(prefs, "Original, innovative storytelling")
	}
	if avg.Get("social_safe") >= 4 {
		prefs = append(prefs, "Movies perfect for group watching")
	}
	if avg.Get("subs_energy") <= 2 {
		prefs = append(prefs, "English-language films preferred")
	}
	if len(prefs) == 0 {
		prefs = append(prefs, "A balanced mix of different movie styles")
	}
	if len(prefs) > 4 {
		prefs = prefs[:4]
	}
	return prefs
}

// onboardingConfidence pondera completitud, variedad de respuestas y tiempo
// dedicado. Responder todo con 3 en diez segundos no calibra nada.
func onboardingConfidence(ratings []models.OnboardingRating) float64 {
	confidence := 0.5
	if len(ratings) >= 8 {
		confidence += 0.2
	}
	if len(ratings) >= 10 {
		confidence += 0.1
	}

	unique := make(map[float64]bool)
	var totalSecs int
	for _, r := range ratings {
		for _, v := range r.Dimensions.ToSlice() {
			unique[v] = true
		}
		totalSecs += r.CompletionSeconds
	}
	confidence += math.Min(1, float64(len(unique))/5.0) * 0.2

	if len(ratings) > 0 && float64(totalSecs)/float64(len(ratings)) > 30 {
		confidence += 0.1
	}

	return math.Max(0, math.Min(1, confidence))
}
