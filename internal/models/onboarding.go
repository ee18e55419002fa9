package models

// OnboardingMovie es una película seleccionada para la sesión de calibración,
// con la razón de su selección y sus tags de diversidad.
type OnboardingMovie struct {
	Movie         Movie    `json:"movie"`
	WhySelected   string   `json:"why_selected"`
	DiversityTags []string `json:"diversity_tags"`
}

// OnboardingRating es la valoración de una película dentro de la sesión.
type OnboardingRating struct {
	MovieID           string `json:"movie_id" bson:"movie_id"`
	MovieTitle        string `json:"movie_title" bson:"movie_title"`
	Dimensions        Vector `json:"dimensions" bson:"dimensions"` // ordinal 1-5
	Overall           int    `json:"overall_rating" bson:"overall_rating"`
	CompletionSeconds int    `json:"completion_time_seconds" bson:"completion_time_seconds"`
}

// TopDimension es una dimensión destacada del perfil con su preferencia media.
type TopDimension struct {
	Dimension  string  `json:"dimension" bson:"dimension"`
	Preference float64 `json:"preference" bson:"preference"`
}

// TasteProfile es el perfil de gustos ajustado a partir del onboarding.
type TasteProfile struct {
	PersonalityType    string         `json:"personality_type" bson:"personality_type"`
	TopDimensions      []TopDimension `json:"top_dimensions" bson:"top_dimensions"`
	MoviePreferences   []string       `json:"movie_preferences" bson:"movie_preferences"`
	AccuracyConfidence float64        `json:"accuracy_confidence" bson:"accuracy_confidence"`
}

// OnboardingResult es el resultado completo de una sesión de onboarding.
type OnboardingResult struct {
	Ratings             []OnboardingRating `json:"ratings"`
	TasteProfile        TasteProfile       `json:"taste_profile"`
	NextRecommendations []Movie            `json:"next_recommendations"`
}
