package model

import (
	"errors"
	"fmt"
	"net/http"
)

type PosterError struct {
	Code    string
	Message string
	Err     error
}

func (e *PosterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PosterError) Unwrap() error {
	return e.Err
}

var ErrPosterNotFound = &PosterError{
	Code:    "POSTER_NOT_FOUND",
	Message: "Poster could not be found.",
}

// ToHTTPStatus keeps the API's convention of reporting lookup failures as 400.
func ToHTTPStatus(err error) int {
	var pe *PosterError
	if errors.As(err, &pe) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
