package repository

import (
	"context"

	"github.com/google/uuid"

	"posterapi/internal/domains/artist/model"
	"posterapi/pkg/database"
)

// Repository is the artist data-access contract. Read methods run against the
// pool (with caching where rows are immutable); write methods take a Querier
// so the service can stage several writes in one transaction it owns.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	GetAll(ctx context.Context) ([]model.Artist, error)

	FindByName(ctx context.Context, q database.Querier, firstName, lastName string) (*model.Artist, error)
	Create(ctx context.Context, q database.Querier, a *model.Artist) (*model.Artist, error)

	GetSocialByArtistID(ctx context.Context, artistID uuid.UUID) (*model.Social, error)
	FindSocialByWebsite(ctx context.Context, q database.Querier, website string) (*model.Social, error)
	InsertSocial(ctx context.Context, q database.Querier, s *model.Social) (*model.Social, error)
	DeleteSocialByArtistID(ctx context.Context, q database.Querier, artistID uuid.UUID) error

	GetPosterSummaries(ctx context.Context, artistID uuid.UUID) ([]model.ArtistPoster, error)
}
