package apperr

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a usecase error to the response status handlers should use.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreProfileMissing), errors.Is(err, ErrStoreNameEmpty):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicateBillNumber), errors.Is(err, ErrSequenceExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
