package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	artistmodel "posterapi/internal/domains/artist/model"
)

// Poster is a printed work attributed to one artist. date_created is stamped
// by the server at creation and never updated; the descriptive fields are
// independently nullable.
type Poster struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	ArtistID      uuid.UUID        `json:"artist_id" db:"artist_id"`
	Title         string           `json:"title" db:"title"`
	Year          int              `json:"year" db:"year"`
	DateCreated   time.Time        `json:"date_created" db:"date_created"`
	ReleaseDate   *string          `json:"release_date" db:"release_date"`
	ClassType     *string          `json:"class_type" db:"class_type"`
	Status        *string          `json:"status" db:"status"`
	Technique     *string          `json:"technique" db:"technique"`
	Size          *string          `json:"size" db:"size"`
	Width         *int             `json:"width" db:"width"`
	Height        *int             `json:"height" db:"height"`
	RunCount      *int             `json:"run_count" db:"run_count"`
	ImageURL      *string          `json:"image_url" db:"image_url"`
	OriginalPrice *decimal.Decimal `json:"original_price" db:"original_price"`
	AveragePrice  *decimal.Decimal `json:"average_price" db:"average_price"`

	// Artist is populated by joined reads and by the create workflows. The
	// json tag exists for the cache layer; API responses go through
	// ToResponse.
	Artist *artistmodel.Artist `json:"artist,omitempty" db:"-"`
}

// PosterResponse is the full single-poster shape with the nested artist.
type PosterResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Artist        *artistmodel.ArtistResponse `json:"artist"`
	Title         string                      `json:"title"`
	Year          int                         `json:"year"`
	DateCreated   time.Time                   `json:"date_created"`
	ReleaseDate   *string                     `json:"release_date"`
	ClassType     *string                     `json:"class_type"`
	Status        *string                     `json:"status"`
	Technique     *string                     `json:"technique"`
	Size          *string                     `json:"size"`
	Width         *int                        `json:"width"`
	Height        *int                        `json:"height"`
	RunCount      *int                        `json:"run_count"`
	ImageURL      *string                     `json:"image_url"`
	OriginalPrice *decimal.Decimal            `json:"original_price"`
	AveragePrice  *decimal.Decimal            `json:"average_price"`
}

func (p *Poster) ToResponse() *PosterResponse {
	resp := &PosterResponse{
		ID:            p.ID,
		Title:         p.Title,
		Year:          p.Year,
		DateCreated:   p.DateCreated,
		ReleaseDate:   p.ReleaseDate,
		ClassType:     p.ClassType,
		Status:        p.Status,
		Technique:     p.Technique,
		Size:          p.Size,
		Width:         p.Width,
		Height:        p.Height,
		RunCount:      p.RunCount,
		ImageURL:      p.ImageURL,
		OriginalPrice: p.OriginalPrice,
		AveragePrice:  p.AveragePrice,
	}
	if p.Artist != nil {
		resp.Artist = p.Artist.ToResponse()
	}
	return resp
}

// PosterListItem is the reduced shape for GET /posters/.
type PosterListItem struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Year  int       `json:"year"`
}

func (p *Poster) ToListItem() PosterListItem {
	return PosterListItem{
		ID:    p.ID,
		Title: p.Title,
		Year:  p.Year,
	}
}
