// internal/repository/profile_repo.go
package repository

import (
	"context"
	"fmt"

	"github.com/karenpiper/movievibe/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type ProfileRepository struct {
	blobs *BlobRepository
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{blobs: NewBlobRepository()}
}

func userKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func (r *ProfileRepository) Load(ctx context.Context, userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	ok, err := r.blobs.Load(ctx, userKey(userID), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile models.UserProfile) error {
	return r.blobs.Save(ctx, userKey(profile.UserID), profile)
}

// All devuelve todos los perfiles persistidos. Se usa para buscar vecinos;
// con el volumen esperado (blobs chicos, un doc por usuario) alcanza sin
// paginación.
func (r *ProfileRepository) All(ctx context.Context) ([]models.UserProfile, error) {
	cur, err := r.blobs.col.Find(ctx, bson.M{"_id": bson.M{"$regex": "^user:"}})
	if err != nil {
		return nil, fmt.Errorf("listando perfiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.UserProfile
	for cur.Next(ctx) {
		var env blobEnvelope
		if err := cur.Decode(&env); err != nil {
			return nil, err
		}
		var p models.UserProfile
		if err := bson.Unmarshal(env.Data, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
