package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	artistmodel "posterapi/internal/domains/artist/model"
	artistservice "posterapi/internal/domains/artist/service"
	"posterapi/internal/domains/poster/model"
	"posterapi/pkg/database"
	"posterapi/pkg/database/dbtest"
)

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type fakePosterRepo struct {
	posters []*model.Poster
}

func (f *fakePosterRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Poster, error) {
	for _, p := range f.posters {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, model.ErrPosterNotFound
}

func (f *fakePosterRepo) GetAll(ctx context.Context) ([]model.Poster, error) {
	out := make([]model.Poster, 0, len(f.posters))
	for _, p := range f.posters {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePosterRepo) Insert(ctx context.Context, q database.Querier, p *model.Poster) (*model.Poster, error) {
	stored := *p
	stored.ID = uuid.New()
	f.posters = append(f.posters, &stored)
	return &stored, nil
}

// fakeArtistRepo covers the slice of the artist contract the poster workflows
// touch; the social methods are never called here.
type fakeArtistRepo struct {
	artists map[uuid.UUID]*artistmodel.Artist
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{artists: make(map[uuid.UUID]*artistmodel.Artist)}
}

func (f *fakeArtistRepo) addArtist(firstName, lastName string) *artistmodel.Artist {
	a := &artistmodel.Artist{ID: uuid.New(), FirstName: firstName, LastName: lastName}
	f.artists[a.ID] = a
	return a
}

func (f *fakeArtistRepo) GetByID(ctx context.Context, id uuid.UUID) (*artistmodel.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, artistmodel.ErrArtistNotFound
	}
	return a, nil
}

func (f *fakeArtistRepo) GetAll(ctx context.Context) ([]artistmodel.Artist, error) {
	return nil, nil
}

func (f *fakeArtistRepo) FindByName(ctx context.Context, q database.Querier, firstName, lastName string) (*artistmodel.Artist, error) {
	for _, a := range f.artists {
		if a.FirstName == firstName && a.LastName == lastName {
			return a, nil
		}
	}
	return nil, artistmodel.ErrArtistNotFound
}

func (f *fakeArtistRepo) Create(ctx context.Context, q database.Querier, a *artistmodel.Artist) (*artistmodel.Artist, error) {
	return f.addArtist(a.FirstName, a.LastName), nil
}

func (f *fakeArtistRepo) GetSocialByArtistID(ctx context.Context, artistID uuid.UUID) (*artistmodel.Social, error) {
	return nil, artistmodel.ErrSocialNotFound
}

func (f *fakeArtistRepo) FindSocialByWebsite(ctx context.Context, q database.Querier, website string) (*artistmodel.Social, error) {
	return nil, artistmodel.ErrSocialNotFound
}

func (f *fakeArtistRepo) InsertSocial(ctx context.Context, q database.Querier, s *artistmodel.Social) (*artistmodel.Social, error) {
	return s, nil
}

func (f *fakeArtistRepo) DeleteSocialByArtistID(ctx context.Context, q database.Querier, artistID uuid.UUID) error {
	return nil
}

func (f *fakeArtistRepo) GetPosterSummaries(ctx context.Context, artistID uuid.UUID) ([]artistmodel.ArtistPoster, error) {
	return nil, nil
}

func newTestService(repo *fakePosterRepo, artistRepo *fakeArtistRepo) (*posterService, *dbtest.DB) {
	db := &dbtest.DB{}
	return &posterService{
		db:         db,
		repo:       repo,
		artistRepo: artistRepo,
		resolver:   artistservice.NewResolver(artistRepo),
		now:        func() time.Time { return testNow },
	}, db
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func TestCreateResolvesNewArtist(t *testing.T) {
	ctx := context.Background()
	repo := &fakePosterRepo{}
	artists := newFakeArtistRepo()
	svc, db := newTestService(repo, artists)

	req := &model.CreatePosterRequest{
		Artist: "Jane Doe",
		Title:  "World Tour",
		Year:   intPtr(1999),
		PosterFields: model.PosterFields{
			Technique:     strPtr("screen print"),
			OriginalPrice: floatPtr(25.5),
		},
	}

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "World Tour", created.Title)
	assert.Equal(t, 1999, created.Year)
	assert.Equal(t, testNow, created.DateCreated)
	require.NotNil(t, created.OriginalPrice)
	assert.True(t, created.OriginalPrice.Equal(decimal.NewFromFloat(25.5)))
	assert.Nil(t, created.AveragePrice)
	require.NotNil(t, created.Artist)
	assert.Equal(t, created.Artist.ID, created.ArtistID)
	assert.Len(t, artists.artists, 1)
	assert.True(t, db.LastTx().Committed)
}

func TestCreateReusesExistingArtist(t *testing.T) {
	ctx := context.Background()
	repo := &fakePosterRepo{}
	artists := newFakeArtistRepo()
	existing := artists.addArtist("Jane", "Doe")
	svc, _ := newTestService(repo, artists)

	req := &model.CreatePosterRequest{Artist: "Jane Doe", Title: "World Tour", Year: intPtr(1999)}

	first, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, first.ArtistID)

	// No poster dedup: an identical payload yields a second row.
	second, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, existing.ID, second.ArtistID)
	assert.Len(t, repo.posters, 2)
	assert.Len(t, artists.artists, 1)
}

func TestCreateUnsplittableArtist(t *testing.T) {
	svc, db := newTestService(&fakePosterRepo{}, newFakeArtistRepo())

	_, err := svc.Create(context.Background(), &model.CreatePosterRequest{
		Artist: "Prince", Title: "Purple", Year: intPtr(1984),
	})
	require.Error(t, err)
	assert.Equal(t, artistmodel.ErrArtistNameFormat, err)
	assert.Nil(t, db.LastTx())
}

func TestCreateForArtist(t *testing.T) {
	ctx := context.Background()
	repo := &fakePosterRepo{}
	artists := newFakeArtistRepo()
	artist := artists.addArtist("Jane", "Doe")
	svc, db := newTestService(repo, artists)

	created, err := svc.CreateForArtist(ctx, artist.ID, &model.AddPosterRequest{
		Title: "Homecoming", Year: intPtr(2001),
	})
	require.NoError(t, err)
	assert.Equal(t, artist.ID, created.ArtistID)
	assert.Equal(t, testNow, created.DateCreated)
	assert.True(t, db.LastTx().Committed)
}

func TestCreateForArtistUnknown(t *testing.T) {
	svc, db := newTestService(&fakePosterRepo{}, newFakeArtistRepo())

	_, err := svc.CreateForArtist(context.Background(), uuid.New(), &model.AddPosterRequest{
		Title: "Homecoming", Year: intPtr(2001),
	})
	require.ErrorIs(t, err, artistmodel.ErrArtistNotFound)
	assert.Nil(t, db.LastTx())
}

func TestGetByIDNilUUID(t *testing.T) {
	svc, _ := newTestService(&fakePosterRepo{}, newFakeArtistRepo())

	_, err := svc.GetByID(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, model.ErrPosterNotFound)
}
