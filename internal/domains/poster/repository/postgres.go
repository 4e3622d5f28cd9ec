package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	artistmodel "posterapi/internal/domains/artist/model"
	"posterapi/internal/domains/poster/model"
	"posterapi/pkg/cache"
	"posterapi/pkg/database"
)

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
	posterCacheKeyPrefix = "poster:"
	cacheTTL             = 15 * time.Minute
)

const posterColumns = `
    p.id, p.artist_id, p.title, p.year, p.date_created, p.release_date,
    p.class_type, p.status, p.technique, p.size, p.width, p.height,
    p.run_count, p.image_url, p.original_price, p.average_price,
    a.id, a.first_name, a.last_name
`

func scanPoster(row pgx.Row) (*model.Poster, error) {
	var p model.Poster
	var a artistmodel.Artist

	err := row.Scan(
		&p.ID,
		&p.ArtistID,
		&p.Title,
		&p.Year,
		&p.DateCreated,
		&p.ReleaseDate,
		&p.ClassType,
		&p.Status,
		&p.Technique,
		&p.Size,
		&p.Width,
		&p.Height,
		&p.RunCount,
		&p.ImageURL,
		&p.OriginalPrice,
		&p.AveragePrice,
		&a.ID,
		&a.FirstName,
		&a.LastName,
	)
	if err != nil {
		return nil, err
	}

	p.Artist = &a
	return &p, nil
}

// GetByID retrieves a poster with its artist joined in. Poster rows are
// immutable after creation, so the cached copy cannot go stale.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Poster, error) {
	cacheKey := posterCacheKeyPrefix + id.String()

	var cached model.Poster
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found && cached.Artist != nil {
		return &cached, nil
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM poster p
        JOIN artist a ON a.id = p.artist_id
        WHERE p.id = $1
    `, posterColumns)

	p, err := scanPoster(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPosterNotFound
		}
		return nil, fmt.Errorf("failed to get poster by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return p, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Poster, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM poster p
        JOIN artist a ON a.id = p.artist_id
        ORDER BY p.date_created
    `, posterColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posters: %w", err)
	}
	defer rows.Close()

	var posters []model.Poster
	for rows.Next() {
		p, err := scanPoster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poster: %w", err)
		}
		posters = append(posters, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posters: %w", err)
	}

	return posters, nil
}

// Insert stores exactly one new poster row. There is deliberately no dedup:
// identical titles and years coexist.
func (r *postgresRepository) Insert(ctx context.Context, q database.Querier, p *model.Poster) (*model.Poster, error) {
	query := `
        INSERT INTO poster (
            id, artist_id, title, year, date_created, release_date, class_type,
            status, technique, size, width, height, run_count, image_url,
            original_price, average_price
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id, artist_id, title, year, date_created, release_date, class_type,
                  status, technique, size, width, height, run_count, image_url,
                  original_price, average_price
    `

	var created model.Poster
	err := q.QueryRow(ctx, query,
		uuid.New(),
		p.ArtistID,
		p.Title,
		p.Year,
		p.DateCreated,
		p.ReleaseDate,
		p.ClassType,
		p.Status,
		p.Technique,
		p.Size,
		p.Width,
		p.Height,
		p.RunCount,
		p.ImageURL,
		p.OriginalPrice,
		p.AveragePrice,
	).Scan(
		&created.ID,
		&created.ArtistID,
		&created.Title,
		&created.Year,
		&created.DateCreated,
		&created.ReleaseDate,
		&created.ClassType,
		&created.Status,
		&created.Technique,
		&created.Size,
		&created.Width,
		&created.Height,
		&created.RunCount,
		&created.ImageURL,
		&created.OriginalPrice,
		&created.AveragePrice,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert poster: %w", err)
	}

	created.Artist = p.Artist
	return &created, nil
}
