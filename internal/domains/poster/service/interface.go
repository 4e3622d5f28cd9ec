package service

import (
	"context"

	"github.com/google/uuid"

	"posterapi/internal/domains/poster/model"
)

type Service interface {
	GetAll(ctx context.Context) ([]model.Poster, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Poster, error)
	Create(ctx context.Context, req *model.CreatePosterRequest) (*model.Poster, error)
	CreateForArtist(ctx context.Context, artistID uuid.UUID, req *model.AddPosterRequest) (*model.Poster, error)
}
