package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrArtistNameFormat rejects artist strings that cannot be split into a
// first and last name.
var ErrArtistNameFormat = validation.NewError(
	"validation_artist_name",
	`artist must be a "First Last" name`,
)

// SplitArtistName cuts a "First Last" string on the first space. Anything
// after that space belongs to the last name. Strings without a space, or with
// an empty half, fail validation rather than crash downstream.
func SplitArtistName(name string) (firstName, lastName string, err error) {
	first, last, found := strings.Cut(strings.TrimSpace(name), " ")
	last = strings.TrimSpace(last)
	if !found || first == "" || last == "" {
		return "", "", ErrArtistNameFormat
	}
	return first, last, nil
}

// artistNameRule adapts SplitArtistName for use as a field rule; Required
// owns the empty case.
func artistNameRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, _, err := SplitArtistName(s)
	return err
}

// CreateArtistRequest is the POST /artists/ payload: a "First Last" artist
// string plus the social links to attach.
type CreateArtistRequest struct {
	Artist    string  `json:"artist"`
	Website   *string `json:"website"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
}

func (r CreateArtistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Artist,
			validation.Required.Error("Data not provided."),
			validation.By(artistNameRule),
		),
		validation.Field(&r.Website, validation.Length(0, 180)),
		validation.Field(&r.Instagram, validation.Length(0, 80)),
		validation.Field(&r.Twitter, validation.Length(0, 80)),
		validation.Field(&r.Facebook, validation.Length(0, 80)),
	)
}

// SocialRequest is the POST /artists/:id payload replacing an artist's links.
type SocialRequest struct {
	Website   *string `json:"website"`
	Instagram *string `json:"instagram"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
}

func (r SocialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Website, validation.Length(0, 180)),
		validation.Field(&r.Instagram, validation.Length(0, 80)),
		validation.Field(&r.Twitter, validation.Length(0, 80)),
		validation.Field(&r.Facebook, validation.Length(0, 80)),
	)
}
