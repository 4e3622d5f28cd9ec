package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	artistmodel "posterapi/internal/domains/artist/model"
)

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

func artistNameRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, _, err := artistmodel.SplitArtistName(s)
	return err
}

// PosterFields are the descriptive attributes shared by both create payloads;
// each one is independently optional.
type PosterFields struct {
	ReleaseDate   *string  `json:"release_date"`
	ClassType     *string  `json:"class_type"`
	Status        *string  `json:"status"`
	Technique     *string  `json:"technique"`
	Size          *string  `json:"size"`
	Width         *int     `json:"width"`
	Height        *int     `json:"height"`
	RunCount      *int     `json:"run_count"`
	ImageURL      *string  `json:"image_url"`
	OriginalPrice *float64 `json:"original_price"`
	AveragePrice  *float64 `json:"average_price"`
}

// CreatePosterRequest is the POST /posters/ payload. The artist arrives as a
// single "First Last" string and is resolved (or created) server-side.
type CreatePosterRequest struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Year   *int   `json:"year"`
	PosterFields
}

func (r CreatePosterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Artist,
			validation.Required.Error("Data not provided."),
			validation.By(artistNameRule),
		),
		validation.Field(&r.Title,
			validation.Required.Error("Data not provided."),
			validation.By(notBlank),
			validation.Length(1, 120),
		),
		validation.Field(&r.Year, validation.NotNil.Error("Data not provided.")),
		validation.Field(&r.ImageURL, is.URL),
		validation.Field(&r.RunCount, validation.Min(0)),
		validation.Field(&r.Width, validation.Min(0)),
		validation.Field(&r.Height, validation.Min(0)),
	)
}

// AddPosterRequest is the POST /artists/:id/poster payload; the artist comes
// from the path.
type AddPosterRequest struct {
	Title string `json:"title"`
	Year  *int   `json:"year"`
	PosterFields
}

func (r AddPosterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Data not provided."),
			validation.By(notBlank),
			validation.Length(1, 120),
		),
		validation.Field(&r.Year, validation.NotNil.Error("Data not provided.")),
		validation.Field(&r.ImageURL, is.URL),
		validation.Field(&r.RunCount, validation.Min(0)),
		validation.Field(&r.Width, validation.Min(0)),
		validation.Field(&r.Height, validation.Min(0)),
	)
}
