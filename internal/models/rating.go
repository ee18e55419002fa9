package models

// Rating es una valoración de película sobre las diez dimensiones.
// Los ratings de usuario y los sintetizados por IA comparten esta forma;
// se distinguen únicamente por Source.
type Rating struct {
	ID         string `json:"id" bson:"id"`
	MovieID    string `json:"movieId" bson:"movieId"`
	Dimensions Vector `json:"dimensions" bson:"dimensions"` // ordinal 1-5 (usuario) o 1.0-5.0 (síntesis)
	Overall    int    `json:"overall" bson:"overall"`       // estrellas 1-5
	Notes      string `json:"notes" bson:"notes"`
	Source     string `json:"source,omitempty" bson:"source,omitempty"` // "user" | "synthesized"
}

const (
	RatingSourceUser        = "user"
	RatingSourceSynthesized = "synthesized"
)
