package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Artist struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
}

// FormattedName derives the "Last, First" display name. It is never stored.
func (a *Artist) FormattedName() string {
	return a.LastName + ", " + a.FirstName
}

// Social holds the social-media links for one artist. It shares the artist's
// primary key: exactly zero or one row per artist, looked up by artist_id.
type Social struct {
	ArtistID  uuid.UUID `json:"artist_id" db:"artist_id"`
	Website   *string   `json:"website" db:"website"`
	Instagram *string   `json:"instagram" db:"instagram"`
	Twitter   *string   `json:"twitter" db:"twitter"`
	Facebook  *string   `json:"facebook" db:"facebook"`
}

type ArtistResponse struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	FormattedName string    `json:"formatted_name"`
}

func (a *Artist) ToResponse() *ArtistResponse {
	return &ArtistResponse{
		ID:            a.ID,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		FormattedName: a.FormattedName(),
	}
}

// SocialResponse nests the owning artist; the row id never goes on the wire.
type SocialResponse struct {
	Artist    *ArtistResponse `json:"artist"`
	Website   *string         `json:"website"`
	Instagram *string         `json:"instagram"`
	Twitter   *string         `json:"twitter"`
	Facebook  *string         `json:"facebook"`
}

func (s *Social) ToResponse(owner *Artist) *SocialResponse {
	resp := &SocialResponse{
		Website:   s.Website,
		Instagram: s.Instagram,
		Twitter:   s.Twitter,
		Facebook:  s.Facebook,
	}
	if owner != nil {
		resp.Artist = owner.ToResponse()
	}
	return resp
}

// ArtistPoster is the reduced poster shape embedded in the artist detail
// view: every poster field except the artist linkage and width/height.
type ArtistPoster struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Year          int              `json:"year"`
	DateCreated   time.Time        `json:"date_created"`
	ReleaseDate   *string          `json:"release_date"`
	ClassType     *string          `json:"class_type"`
	Status        *string          `json:"status"`
	Technique     *string          `json:"technique"`
	Size          *string          `json:"size"`
	RunCount      *int             `json:"run_count"`
	ImageURL      *string          `json:"image_url"`
	OriginalPrice *decimal.Decimal `json:"original_price"`
	AveragePrice  *decimal.Decimal `json:"average_price"`
}

// ArtistDetail aggregates the GET /artists/:id view.
type ArtistDetail struct {
	Artist  *Artist
	Social  *Social
	Posters []ArtistPoster
}
