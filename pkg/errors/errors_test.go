package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     &ValidationError{Field: "word", Message: "must not be empty"},
			wantMsg: "invalid word: must not be empty",
		},
		{
			name:    "without field",
			err:     &ValidationError{Message: "nothing to analyze"},
			wantMsg: "invalid input: nothing to analyze",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrInvalidInput))
		})
	}
}

func TestInvalid(t *testing.T) {
	err := Invalid("words", "required")

	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
	assert.Equal(t, "words", validation.Field)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTypeMismatchError(t *testing.T) {
	err := &TypeMismatchError{Expected: "*analyzer.Analyzer", Got: "nil"}
	assert.Equal(t, "type mismatch: expected *analyzer.Analyzer, got nil", err.Error())
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}
