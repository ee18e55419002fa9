package models

import "time"

// Documentos persistidos. Tres blobs lógicos con claves estables:
// "catalog", "user:{id}" y "onboarding:{id}". El reemplazo es atómico
// por clave; no hay garantía transaccional entre claves.

// CatalogSummary es el resumen estadístico de la población del catálogo.
type CatalogSummary struct {
	Count         int      `json:"count" bson:"count"`
	AvgConfidence float64  `json:"avg_confidence" bson:"avg_confidence"`
	TopDimensions []string `json:"top_dimensions" bson:"top_dimensions"`
}

// CatalogDoc es el blob "catalog".
type CatalogDoc struct {
	Movies             []Movie        `json:"films" bson:"films"`
	SynthesizedRatings []Rating       `json:"synthesized_ratings" bson:"synthesized_ratings"`
	PopulatedAt        time.Time      `json:"populated_at" bson:"populated_at"`
	Summary            CatalogSummary `json:"summary" bson:"summary"`
}

// OnboardingDoc es el blob "onboarding:{id}".
type OnboardingDoc struct {
	CompletedAt  time.Time    `json:"completed_at" bson:"completed_at"`
	TasteProfile TasteProfile `json:"taste_profile" bson:"taste_profile"`
	RatingsCount int          `json:"ratings_count" bson:"ratings_count"`
}
