package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	fieldErr := (&types.RecommendCareersRequest{Limit: 500}).Validate()
	var fieldErrs validator.ValidationErrors
	if !errors.As(fieldErr, &fieldErrs) {
		t.Fatalf("expected validator errors, got %T", fieldErr)
	}

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: http.StatusOK},
		{name: "completion", err: &llm.CompletionError{Message: "quota"}, expected: http.StatusBadGateway},
		{name: "wrapped completion", err: fmt.Errorf("roadmap: %w", &llm.CompletionError{}), expected: http.StatusBadGateway},
		{name: "completion wrapping a timeout", err: &llm.CompletionError{Cause: context.DeadlineExceeded}, expected: http.StatusBadGateway},
		{name: "not found", err: &corpus.NotFoundError{Kind: "career", ID: "x"}, expected: http.StatusNotFound},
		{name: "validator", err: fieldErrs, expected: http.StatusBadRequest},
		{name: "field validation", err: &types.ValidationError{Field: "skills", Message: "required"}, expected: http.StatusBadRequest},
		{name: "missing career", err: &types.MissingCareerError{}, expected: http.StatusBadRequest},
		{name: "deadline", err: fmt.Errorf("load: %w", context.DeadlineExceeded), expected: http.StatusGatewayTimeout},
		{name: "unknown", err: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
