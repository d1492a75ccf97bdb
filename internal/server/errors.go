package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/types"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		completionErr *llm.CompletionError
		notFoundErr   *corpus.NotFoundError
		fieldErrs     validator.ValidationErrors
		invalidErr    *types.ValidationError
		missingErr    *types.MissingCareerError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &completionErr):
		return http.StatusBadGateway
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &fieldErrs), errors.As(err, &invalidErr), errors.As(err, &missingErr):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
