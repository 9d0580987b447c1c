package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "Title is required", ValidationError{Message: "Title is required"}.Error())
	assert.Equal(t, "links[0].title: Title is required",
		ValidationError{Field: "links[0].title", Message: "Title is required"}.Error())
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "items[0].label", Message: "Label is required"},
		{Field: "items[1].link", Message: "Link is required"},
	}

	assert.Equal(t, "items[0].label: Label is required; items[1].link: Link is required", errs.Error())

	wrapped := fmt.Errorf("render buttonlist: %w", errs)
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))

	var got ValidationErrors
	assert.True(t, errors.As(wrapped, &got))
	assert.Len(t, got, 2)
}

func TestValidationErrors_EmptyIsNotInvalid(t *testing.T) {
	assert.False(t, errors.Is(ValidationErrors{}, ErrInvalidInput))
}
