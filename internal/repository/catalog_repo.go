// internal/repository/catalog_repo.go
package repository

import (
	"context"

	"github.com/karenpiper/movievibe/internal/models"
)

const catalogKey = "catalog"

type CatalogRepository struct {
	blobs *BlobRepository
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{blobs: NewBlobRepository()}
}

func (r *CatalogRepository) Load(ctx context.Context) (*models.CatalogDoc, error) {
	var doc models.CatalogDoc
	ok, err := r.blobs.Load(ctx, catalogKey, &doc)
	if err != nil || !ok {
		return nil, err
	}
	return &doc, nil
}

func (r *CatalogRepository) Save(ctx context.Context, doc models.CatalogDoc) error {
	return r.blobs.Save(ctx, catalogKey, doc)
}
