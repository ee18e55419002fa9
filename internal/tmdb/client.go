package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ====== Cliente TMDB ======
//
// Cliente mínimo para búsqueda y detalle de películas. Usa el bearer token
// de lectura (v4); los errores del upstream se reportan con su status para
// que el handler los propague tal cual.

const defaultBaseURL = "https://api.themoviedb.org/3"

// ErrUpstream indica una respuesta no exitosa de TMDB.
var ErrUpstream = errors.New("tmdb upstream error")

// UpstreamError envuelve ErrUpstream con el status devuelto.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb respondió %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// genreNames mapea id de género TMDB → nombre.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// GenreName devuelve el nombre de un género TMDB, o "" si no se conoce.
func GenreName(id int) string { return genreNames[id] }

// SearchResult es una entrada del listado de búsqueda.
type SearchResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

// MovieDetails es el detalle completo, incluidos créditos.
type MovieDetails struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Runtime      int     `json:"runtime"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Genres       []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	Credits struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
		Crew []struct {
			Name string `json:"name"`
			Job  string `json:"job"`
		} `json:"crew"`
	} `json:"credits"`
}

// Director devuelve el nombre del director según los créditos, o "".
func (d *MovieDetails) Director() string { return d.crewByJob("Director") }

// Writer devuelve el guionista según los créditos, o "".
func (d *MovieDetails) Writer() string {
	if w := d.crewByJob("Writer"); w != "" {
		return w
	}
	return d.crewByJob("Screenplay")
}

func (d *MovieDetails) crewByJob(job string) string {
	for _, c := range d.Credits.Crew {
		if c.Job == job {
			return c.Name
		}
	}
	return ""
}

// GenreNames devuelve los nombres de género del detalle.
func (d *MovieDetails) GenreNames() []string {
	out := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		out = append(out, g.Name)
	}
	return out
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL permite apuntar el cliente a otro host (tests).
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// Search busca películas por título.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	u := fmt.Sprintf("%s/search/movie?query=%s&include_adult=false&language=en-US&page=1",
		c.baseURL, url.QueryEscape(query))

	var payload struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Details trae el detalle de una película con sus créditos.
func (c *Client) Details(ctx context.Context, id int) (*MovieDetails, error) {
	u := fmt.Sprintf("%s/movie/%d?append_to_response=credits&language=en-US", c.baseURL, id)

	var details MovieDetails
	if err := c.getJSON(ctx, u, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body [256]byte
		n, _ := resp.Body.Read(body[:])
		return &UpstreamError{Status: resp.StatusCode, Body: string(body[:n])}
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
