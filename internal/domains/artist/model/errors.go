package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ArtistError is the base error for the artist domain. Message is the exact
// text the API returns to clients.
type ArtistError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArtistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ArtistError) Unwrap() error {
	return e.Err
}

var ErrArtistNotFound = &ArtistError{
	Code:    "ARTIST_NOT_FOUND",
	Message: "Artist could not be found.",
}

// ErrArtistExists is the strict-create duplicate: the (first, last) pair
// already names an artist row.
var ErrArtistExists = &ArtistError{
	Code:    "ARTIST_EXISTS",
	Message: "Artist data already exist.",
}

var ErrSocialNotFound = &ArtistError{
	Code:    "SOCIAL_NOT_FOUND",
	Message: "Social links could not be found.",
}

// ToHTTPStatus maps domain errors onto the API's status convention: lookup
// and duplicate failures are reported as 400, never 404 or 409.
func ToHTTPStatus(err error) int {
	var ae *ArtistError
	if errors.As(err, &ae) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
