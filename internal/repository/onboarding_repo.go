// internal/repository/onboarding_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/karenpiper/movievibe/internal/models"
)

type OnboardingRepository struct {
	blobs *BlobRepository
}

func NewOnboardingRepository() *OnboardingRepository {
	return &OnboardingRepository{blobs: NewBlobRepository()}
}

func onboardingKey(userID string) string {
	return fmt.Sprintf("onboarding:%s", userID)
}

func (r *OnboardingRepository) Load(ctx context.Context, userID string) (*models.OnboardingDoc, error) {
	var doc models.OnboardingDoc
	ok, err := r.blobs.Load(ctx, onboardingKey(userID), &doc)
	if err != nil || !ok {
		return nil, err
	}
	return &doc, nil
}

func (r *OnboardingRepository) Save(ctx context.Context, userID string, doc models.OnboardingDoc) error {
	return r.blobs.Save(ctx, onboardingKey(userID), doc)
}

// Delete descarta el onboarding guardado, por ejemplo para rehacerlo.
func (r *OnboardingRepository) Delete(ctx context.Context, userID string) error {
	return r.blobs.Delete(ctx, onboardingKey(userID))
}
