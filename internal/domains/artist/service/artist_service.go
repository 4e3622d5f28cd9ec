package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"posterapi/internal/domains/artist/model"
	"posterapi/internal/domains/artist/repository"
	"posterapi/pkg/database"
)

type artistService struct {
	db       database.Beginner
	repo     repository.Repository
	resolver *Resolver
}

func NewArtistService(db database.Beginner, repo repository.Repository, resolver *Resolver) Service {
	return &artistService{
		db:       db,
		repo:     repo,
		resolver: resolver,
	}
}

func (s *artistService) GetAll(ctx context.Context) ([]model.Artist, error) {
	return s.repo.GetAll(ctx)
}

// GetDetail loads the artist plus its social links (by artist id, not by row
// id) and the reduced poster list. A missing social row is not an error.
func (s *artistService) GetDetail(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error) {
	if id == uuid.Nil {
		return nil, model.ErrArtistNotFound
	}

	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	social, err := s.repo.GetSocialByArtistID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrSocialNotFound) {
			return nil, err
		}
		social = nil
	}

	posters, err := s.repo.GetPosterSummaries(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ArtistDetail{
		Artist:  artist,
		Social:  social,
		Posters: posters,
	}, nil
}

// CreateWithSocial runs the strict create workflow in one transaction: a name
// collision aborts with ErrArtistExists and writes nothing; otherwise the
// artist is inserted, and the social row too unless some social row already
// carries the payload's website. On that dedup hit the existing row, which
// may belong to an unrelated artist, is what the response reports.
func (s *artistService) CreateWithSocial(ctx context.Context, req *model.CreateArtistRequest) (*CreateResult, error) {
	firstName, lastName, err := model.SplitArtistName(req.Artist)
	if err != nil {
		return nil, err
	}

	type txResult struct {
		social  *model.Social
		created *model.Artist
	}

	res, err := database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (txResult, error) {
		artist, err := s.resolver.ResolveStrict(ctx, tx, firstName, lastName)
		if err != nil {
			return txResult{}, err
		}

		if req.Website != nil && *req.Website != "" {
			existing, err := s.repo.FindSocialByWebsite(ctx, tx, *req.Website)
			if err == nil {
				return txResult{social: existing, created: artist}, nil
			}
			if !errors.Is(err, model.ErrSocialNotFound) {
				return txResult{}, err
			}
		}

		social, err := s.repo.InsertSocial(ctx, tx, &model.Social{
			ArtistID:  artist.ID,
			Website:   req.Website,
			Instagram: req.Instagram,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
		})
		if err != nil {
			return txResult{}, err
		}

		return txResult{social: social, created: artist}, nil
	})
	if err != nil {
		return nil, err
	}

	owner := res.created
	if res.social.ArtistID != owner.ID {
		existingOwner, err := s.repo.GetByID(ctx, res.social.ArtistID)
		if err != nil {
			log.Warn().Err(err).Str("artist_id", res.social.ArtistID.String()).
				Msg("owner lookup for deduplicated social failed")
			owner = nil
		} else {
			owner = existingOwner
		}
	}

	return &CreateResult{Social: res.social, Owner: owner}, nil
}

// ReplaceSocial swaps the artist's social row wholesale: delete the old row
// if present, insert the new values, both in one transaction.
func (s *artistService) ReplaceSocial(ctx context.Context, artistID uuid.UUID, req *model.SocialRequest) (*model.Artist, *model.Social, error) {
	if artistID == uuid.Nil {
		return nil, nil, model.ErrArtistNotFound
	}

	artist, err := s.repo.GetByID(ctx, artistID)
	if err != nil {
		return nil, nil, err
	}

	social, err := database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*model.Social, error) {
		if err := s.repo.DeleteSocialByArtistID(ctx, tx, artistID); err != nil {
			return nil, err
		}

		return s.repo.InsertSocial(ctx, tx, &model.Social{
			ArtistID:  artistID,
			Website:   req.Website,
			Instagram: req.Instagram,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
		})
	})
	if err != nil {
		return nil, nil, err
	}

	return artist, social, nil
}
