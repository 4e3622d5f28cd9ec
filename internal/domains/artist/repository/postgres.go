package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"posterapi/internal/domains/artist/model"
	"posterapi/pkg/cache"
	"posterapi/pkg/database"
)

// postgresRepository implements Repository on pgxpool with a Redis
// read-through cache for single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	artistCacheKeyPrefix = "artist:"
	socialCacheKeyPrefix = "social:artist:"
	cacheTTL             = 15 * time.Minute
)

// GetByID retrieves an artist by id. Artist rows are never mutated, so the
// cached copy cannot go stale.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	cacheKey := artistCacheKeyPrefix + id.String()

	var a model.Artist
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, first_name, last_name
        FROM artist
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Artist, error) {
	query := `
        SELECT id, first_name, last_name
        FROM artist
        ORDER BY last_name, first_name
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []model.Artist
	for rows.Next() {
		var a model.Artist
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artists: %w", err)
	}

	return artists, nil
}

// FindByName looks up an artist by exact (first_name, last_name) match.
func (r *postgresRepository) FindByName(ctx context.Context, q database.Querier, firstName, lastName string) (*model.Artist, error) {
	query := `
        SELECT id, first_name, last_name
        FROM artist
        WHERE first_name = $1 AND last_name = $2
    `

	var a model.Artist
	err := q.QueryRow(ctx, query, firstName, lastName).Scan(&a.ID, &a.FirstName, &a.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to find artist by name: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, q database.Querier, a *model.Artist) (*model.Artist, error) {
	query := `
        INSERT INTO artist (id, first_name, last_name)
        VALUES ($1, $2, $3)
        RETURNING id, first_name, last_name
    `

	var created model.Artist
	err := q.QueryRow(ctx, query, uuid.New(), a.FirstName, a.LastName).
		Scan(&created.ID, &created.FirstName, &created.LastName)
	if err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetSocialByArtistID(ctx context.Context, artistID uuid.UUID) (*model.Social, error) {
	cacheKey := socialCacheKeyPrefix + artistID.String()

	var s model.Social
	if found, err := r.cache.Get(ctx, cacheKey, &s); err == nil && found {
		return &s, nil
	}

	query := `
        SELECT artist_id, website, instagram, twitter, facebook
        FROM social
        WHERE artist_id = $1
    `

	err := r.pool.QueryRow(ctx, query, artistID).
		Scan(&s.ArtistID, &s.Website, &s.Instagram, &s.Twitter, &s.Facebook)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSocialNotFound
		}
		return nil, fmt.Errorf("failed to get social by artist id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, s, cacheTTL)

	return &s, nil
}

// FindSocialByWebsite resolves the create-path dedup check: any social row
// with this website, regardless of which artist owns it.
func (r *postgresRepository) FindSocialByWebsite(ctx context.Context, q database.Querier, website string) (*model.Social, error) {
	query := `
        SELECT artist_id, website, instagram, twitter, facebook
        FROM social
        WHERE website = $1
        LIMIT 1
    `

	var s model.Social
	err := q.QueryRow(ctx, query, website).
		Scan(&s.ArtistID, &s.Website, &s.Instagram, &s.Twitter, &s.Facebook)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSocialNotFound
		}
		return nil, fmt.Errorf("failed to find social by website: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) InsertSocial(ctx context.Context, q database.Querier, s *model.Social) (*model.Social, error) {
	query := `
        INSERT INTO social (artist_id, website, instagram, twitter, facebook)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING artist_id, website, instagram, twitter, facebook
    `

	var created model.Social
	err := q.QueryRow(ctx, query, s.ArtistID, s.Website, s.Instagram, s.Twitter, s.Facebook).
		Scan(&created.ArtistID, &created.Website, &created.Instagram, &created.Twitter, &created.Facebook)
	if err != nil {
		return nil, fmt.Errorf("failed to insert social: %w", err)
	}

	_ = r.cache.Delete(ctx, socialCacheKeyPrefix+s.ArtistID.String())

	return &created, nil
}

func (r *postgresRepository) DeleteSocialByArtistID(ctx context.Context, q database.Querier, artistID uuid.UUID) error {
	query := `DELETE FROM social WHERE artist_id = $1`

	if _, err := q.Exec(ctx, query, artistID); err != nil {
		return fmt.Errorf("failed to delete social: %w", err)
	}

	_ = r.cache.Delete(ctx, socialCacheKeyPrefix+artistID.String())

	return nil
}

// GetPosterSummaries returns the artist-detail poster shape straight from the
// poster table.
func (r *postgresRepository) GetPosterSummaries(ctx context.Context, artistID uuid.UUID) ([]model.ArtistPoster, error) {
	query := `
        SELECT id, title, year, date_created, release_date, class_type, status,
               technique, size, run_count, image_url, original_price, average_price
        FROM poster
        WHERE artist_id = $1
        ORDER BY date_created
    `

	rows, err := r.pool.Query(ctx, query, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query artist posters: %w", err)
	}
	defer rows.Close()

	var posters []model.ArtistPoster
	for rows.Next() {
		var p model.ArtistPoster
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Year,
			&p.DateCreated,
			&p.ReleaseDate,
			&p.ClassType,
			&p.Status,
			&p.Technique,
			&p.Size,
			&p.RunCount,
			&p.ImageURL,
			&p.OriginalPrice,
			&p.AveragePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist poster: %w", err)
		}
		posters = append(posters, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artist posters: %w", err)
	}

	return posters, nil
}
