// internal/repository/blob_repo.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/karenpiper/movievibe/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Persistencia por blobs: cada clave lógica ("catalog", "user:{id}",
// "onboarding:{id}") es un documento entero que se reemplaza de forma
// atómica. Último escritor gana; no hay transacciones entre claves.

type blobEnvelope struct {
	Key       string    `bson:"_id"`
	Data      bson.Raw  `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type BlobRepository struct {
	col *mongo.Collection
}

func NewBlobRepository() *BlobRepository {
	return &BlobRepository{col: db.DB().Collection("blobs")}
}

// Save reemplaza el blob completo bajo la clave (upsert).
func (r *BlobRepository) Save(ctx context.Context, key string, value any) error {
	data, err := bson.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializando blob %q: %w", key, err)
	}

	doc := blobEnvelope{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("guardando blob %q: %w", key, err)
	}
	return nil
}

// Load deserializa el blob en dest. Devuelve false si la clave no existe.
func (r *BlobRepository) Load(ctx context.Context, key string, dest any) (bool, error) {
	var env blobEnvelope
	err := r.col.FindOne(ctx, bson.M{"_id": key}).Decode(&env)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("leyendo blob %q: %w", key, err)
	}
	if err := bson.Unmarshal(env.Data, dest); err != nil {
		return false, fmt.Errorf("deserializando blob %q: %w", key, err)
	}
	return true, nil
}

// Delete borra el blob. Borrar una clave inexistente no es error.
func (r *BlobRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("borrando blob %q: %w", key, err)
	}
	return nil
}
