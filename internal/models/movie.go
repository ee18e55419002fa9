package models

// Provenance guarda el bloque de procedencia externa de una película
// (id y URL de Letterboxd + resultado del análisis de reviews).
type Provenance struct {
	ExternalID      string  `json:"externalId,omitempty" bson:"externalId,omitempty"`
	ExternalURL     string  `json:"externalUrl,omitempty" bson:"externalUrl,omitempty"`
	CommunityRating float64 `json:"communityRating,omitempty" bson:"communityRating,omitempty"`
	ReviewCount     int     `json:"reviewCount,omitempty" bson:"reviewCount,omitempty"`
	Confidence      float64 `json:"aiConfidence,omitempty" bson:"aiConfidence,omitempty"`
	Summary         string  `json:"analysisSummary,omitempty" bson:"analysisSummary,omitempty"`
}

// Movie es una película del catálogo.
type Movie struct {
	ID          string      `json:"id" bson:"id"`
	Title       string      `json:"title" bson:"title"`
	Year        int         `json:"year" bson:"year"`
	Genres      []string    `json:"genres" bson:"genres"`
	Director    string      `json:"director" bson:"director"`
	Writer      string      `json:"writer,omitempty" bson:"writer,omitempty"`
	Runtime     int         `json:"runtime" bson:"runtime"` // minutos, >= 1
	Logline     string      `json:"logline" bson:"logline"`
	PosterURL   string      `json:"posterUrl" bson:"posterUrl"`
	BackdropURL string      `json:"backdropUrl,omitempty" bson:"backdropUrl,omitempty"`
	IMDBRating  float64     `json:"imdbRating,omitempty" bson:"imdbRating,omitempty"` // escala 0-10
	Cast        []string    `json:"cast,omitempty" bson:"cast,omitempty"`
	Seen        bool        `json:"seen" bson:"seen"`
	Score       *float64    `json:"score,omitempty" bson:"-"` // salida efímera del scorer
	Provenance  *Provenance `json:"provenance,omitempty" bson:"provenance,omitempty"`
}

// MovieCreateRequest es el payload para dar de alta una película desde la UI.
type MovieCreateRequest struct {
	Title       string   `json:"title"` // obligatorio
	Year        int      `json:"year,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Director    string   `json:"director,omitempty"`
	Writer      string   `json:"writer,omitempty"`
	Runtime     int      `json:"runtime,omitempty"`
	Logline     string   `json:"logline,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
	BackdropURL string   `json:"backdropUrl,omitempty"`
	IMDBRating  float64  `json:"imdbRating,omitempty"`
	Cast        []string `json:"cast,omitempty"`
}
