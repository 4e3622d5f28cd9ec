package repository

import (
	"context"

	"github.com/google/uuid"

	"posterapi/internal/domains/poster/model"
	"posterapi/pkg/database"
)

// Repository is the poster data-access contract. Posters are created once and
// never updated or deleted, so there is no write surface beyond Insert.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Poster, error)
	GetAll(ctx context.Context) ([]model.Poster, error)
	Insert(ctx context.Context, q database.Querier, p *model.Poster) (*model.Poster, error)
}
