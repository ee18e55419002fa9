package models

// UserProfile es el perfil de gustos derivado de los ratings de un usuario.
type UserProfile struct {
	UserID       string   `json:"id" bson:"id"`
	Ratings      []Rating `json:"ratings" bson:"ratings"` // append-only, en orden de llegada
	Preferences  Vector   `json:"preferences" bson:"preferences"`
	Neighbors    []string `json:"neighbors" bson:"neighbors"` // ids de usuarios similares, máx 10
	Confidence   float64  `json:"confidence" bson:"confidence"`
	RatingsCount int      `json:"ratings_count" bson:"ratings_count"`
}

// UserSimilarity es la similitud calculada contra otro perfil.
type UserSimilarity struct {
	UserID        string  `json:"userId"`
	Similarity    float64 `json:"similarity"`
	CommonRatings int     `json:"commonRatings"`
}
