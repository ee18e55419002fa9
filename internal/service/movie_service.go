package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/karenpiper/movievibe/internal/apperrors"
	"github.com/karenpiper/movievibe/internal/catalog"
	"github.com/karenpiper/movievibe/internal/models"
	"github.com/karenpiper/movievibe/internal/synthesis"
	"github.com/karenpiper/movievibe/internal/tmdb"
)

// TMDBClient es lo que el servicio necesita del cliente TMDB.
type TMDBClient interface {
	Search(ctx context.Context, query string) ([]tmdb.SearchResult, error)
	Details(ctx context.Context, id int) (*tmdb.MovieDetails, error)
}

// ====== Altas de películas ======
//
// Alta manual (formulario de la UI) y alta enriquecida vía TMDB. En ambos
// casos la película entra al catálogo con un rating sintetizado y el blob
// persistido se actualiza.

type MovieService struct {
	store    *catalog.Store
	catalogs CatalogStore
	synth    *synthesis.Synthesizer
	tmdb     TMDBClient
}

func NewMovieService(store *catalog.Store, catalogs CatalogStore, synth *synthesis.Synthesizer, tmdbClient TMDBClient) *MovieService {
	return &MovieService{store: store, catalogs: catalogs, synth: synth, tmdb: tmdbClient}
}

// Search delega la búsqueda de títulos en TMDB.
func (s *MovieService) Search(ctx context.Context, query string) ([]tmdb.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query vacía: %w", apperrors.ErrInvalidInput)
	}
	return s.tmdb.Search(ctx, query)
}

// AddFromTMDB trae el detalle completo de TMDB, sintetiza el vector desde la
// metadata y agrega la película al catálogo.
func (s *MovieService) AddFromTMDB(ctx context.Context, tmdbID int) (*models.Movie, error) {
	if s.store.State() != catalog.StateReady {
		return nil, apperrors.ErrNotReady
	}

	details, err := s.tmdb.Details(ctx, tmdbID)
	if err != nil {
		return nil, err
	}

	year := releaseYear(details.ReleaseDate)
	res := s.synth.Synthesize(synthesis.Input{
		Title:          details.Title,
		Genres:         details.GenreNames(),
		Director:       details.Director(),
		Runtime:        details.Runtime,
		Year:           year,
		ExternalRating: details.VoteAverage,
	})

	var cast []string
	for i, c := range details.Credits.Cast {
		if i == 5 {
			break
		}
		cast = append(cast, c.Name)
	}

	movie := models.Movie{
		ID:          newMovieID(),
		Title:       details.Title,
		Year:        year,
		Genres:      details.GenreNames(),
		Director:    details.Director(),
		Writer:      details.Writer(),
		Runtime:     details.Runtime,
		Logline:     details.Overview,
		PosterURL:   posterURL(details.PosterPath),
		BackdropURL: backdropURL(details.BackdropPath),
		IMDBRating:  details.VoteAverage,
		Cast:        cast,
		Provenance: &models.Provenance{
			ExternalID:      "tmdb_" + strconv.Itoa(details.ID),
			ExternalURL:     fmt.Sprintf("https://www.themoviedb.org/movie/%d", details.ID),
			CommunityRating: math.Round(details.VoteAverage/2*10) / 10,
			ReviewCount:     details.VoteCount,
			Confidence:      res.Confidence,
			Summary:         res.Summary,
		},
	}

	return s.insert(ctx, movie, res)
}

// AddManual da de alta una película cargada a mano. Sin reviews ni metadata
// enriquecida, el vector sale de la ruta metadata-only.
func (s *MovieService) AddManual(ctx context.Context, req models.MovieCreateRequest) (*models.Movie, error) {
	if s.store.State() != catalog.StateReady {
		return nil, apperrors.ErrNotReady
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("título obligatorio: %w", apperrors.ErrInvalidInput)
	}
	if req.Runtime < 1 {
		return nil, fmt.Errorf("runtime %d debe ser >= 1 minuto: %w", req.Runtime, apperrors.ErrInvalidInput)
	}

	res := s.synth.PredictMetadataOnly(synthesis.Input{
		Title:          req.Title,
		Genres:         req.Genres,
		Director:       req.Director,
		Runtime:        req.Runtime,
		Year:           req.Year,
		ExternalRating: req.IMDBRating,
	})

	movie := models.Movie{
		ID:          newMovieID(),
		Title:       req.Title,
		Year:        req.Year,
		Genres:      req.Genres,
		Director:    req.Director,
		Writer:      req.Writer,
		Runtime:     req.Runtime,
		Logline:     req.Logline,
		PosterURL:   req.PosterURL,
		BackdropURL: req.BackdropURL,
		IMDBRating:  req.IMDBRating,
		Cast:        req.Cast,
	}

	return s.insert(ctx, movie, res)
}

// Get devuelve una película del catálogo.
func (s *MovieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	m, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("película %s: %w", id, apperrors.ErrNotFound)
	}
	return &m, nil
}

// MarkSeen marca una película como vista o no vista y persiste el catálogo.
func (s *MovieService) MarkSeen(ctx context.Context, id string, seen bool) error {
	if err := s.store.UpdateSeen(id, seen); err != nil {
		return err
	}
	return s.catalogs.Save(ctx, s.store.Snapshot())
}

func (s *MovieService) insert(ctx context.Context, movie models.Movie, res synthesis.Result) (*models.Movie, error) {
	rating := models.Rating{
		ID:         "rating_" + movie.ID,
		MovieID:    movie.ID,
		Dimensions: res.Dimensions,
		Overall:    3,
		Notes:      res.Summary,
		Source:     models.RatingSourceSynthesized,
	}
	s.store.Insert(movie, &rating)

	if err := s.catalogs.Save(ctx, s.store.Snapshot()); err != nil {
		log.Printf("[movies] error persistiendo catálogo tras alta de %s: %v", movie.ID, err)
	}
	return &movie, nil
}

func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/w500" + path
}

func backdropURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/w1280" + path
}
