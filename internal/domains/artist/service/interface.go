package service

import (
	"context"

	"github.com/google/uuid"

	"posterapi/internal/domains/artist/model"
)

// CreateResult is what POST /artists/ reports: the social row filed under the
// payload's website (freshly inserted, or a pre-existing row when the website
// dedup check hit) together with that row's owning artist.
type CreateResult struct {
	Social *model.Social
	Owner  *model.Artist
}

type Service interface {
	GetAll(ctx context.Context) ([]model.Artist, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error)
	CreateWithSocial(ctx context.Context, req *model.CreateArtistRequest) (*CreateResult, error)
	ReplaceSocial(ctx context.Context, artistID uuid.UUID, req *model.SocialRequest) (*model.Artist, *model.Social, error)
}
