package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	artistmodel "posterapi/internal/domains/artist/model"
	artistrepo "posterapi/internal/domains/artist/repository"
	artistservice "posterapi/internal/domains/artist/service"
	"posterapi/internal/domains/poster/model"
	"posterapi/internal/domains/poster/repository"
	"posterapi/pkg/database"
)

type posterService struct {
	db         database.Beginner
	repo       repository.Repository
	artistRepo artistrepo.Repository
	resolver   *artistservice.Resolver
	now        func() time.Time
}

func NewPosterService(db database.Beginner, repo repository.Repository, artistRepo artistrepo.Repository, resolver *artistservice.Resolver) Service {
	return &posterService{
		db:         db,
		repo:       repo,
		artistRepo: artistRepo,
		resolver:   resolver,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *posterService) GetAll(ctx context.Context) ([]model.Poster, error) {
	return s.repo.GetAll(ctx)
}

func (s *posterService) GetByID(ctx context.Context, id uuid.UUID) (*model.Poster, error) {
	if id == uuid.Nil {
		return nil, model.ErrPosterNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Create resolves the artist by name, reusing an existing row on a match,
// and inserts the poster, both in one transaction.
func (s *posterService) Create(ctx context.Context, req *model.CreatePosterRequest) (*model.Poster, error) {
	firstName, lastName, err := artistmodel.SplitArtistName(req.Artist)
	if err != nil {
		return nil, err
	}

	return database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*model.Poster, error) {
		artist, err := s.resolver.ResolveOrCreate(ctx, tx, firstName, lastName)
		if err != nil {
			return nil, err
		}

		return s.repo.Insert(ctx, tx, s.buildPoster(artist, req.Title, *req.Year, req.PosterFields))
	})
}

// CreateForArtist adds a poster to an artist that must already exist.
func (s *posterService) CreateForArtist(ctx context.Context, artistID uuid.UUID, req *model.AddPosterRequest) (*model.Poster, error) {
	if artistID == uuid.Nil {
		return nil, artistmodel.ErrArtistNotFound
	}

	artist, err := s.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	return database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*model.Poster, error) {
		return s.repo.Insert(ctx, tx, s.buildPoster(artist, req.Title, *req.Year, req.PosterFields))
	})
}

func (s *posterService) buildPoster(artist *artistmodel.Artist, title string, year int, f model.PosterFields) *model.Poster {
	p := &model.Poster{
		ArtistID:      artist.ID,
		Title:         title,
		Year:          year,
		DateCreated:   s.now(),
		ReleaseDate:   f.ReleaseDate,
		ClassType:     f.ClassType,
		Status:        f.Status,
		Technique:     f.Technique,
		Size:          f.Size,
		Width:         f.Width,
		Height:        f.Height,
		RunCount:      f.RunCount,
		ImageURL:      f.ImageURL,
		OriginalPrice: toDecimal(f.OriginalPrice),
		AveragePrice:  toDecimal(f.AveragePrice),
		Artist:        artist,
	}
	return p
}

func toDecimal(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
