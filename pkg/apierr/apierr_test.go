package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tubeplan/pkg/scoring"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", Validation("count must be positive"), http.StatusBadRequest, CodeValidation},
		{"rating", fmt.Errorf("score idea: %w", scoring.ErrRatingOutOfRange), http.StatusBadRequest, CodeValidation},
		{"not configured", fmt.Errorf("refresh: %w", ErrNotConfigured), http.StatusPreconditionFailed, CodeNotConfigured},
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound, CodeNotFound},
		{"other", errors.New("disk full"), http.StatusInternalServerError, CodeInternal},
		{"explicit", New(http.StatusForbidden, "forbidden", errors.New("nope")), http.StatusForbidden, "forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.code, got.Code)
			assert.True(t, errors.Is(got, tt.err) || got == tt.err)
		})
	}
	assert.Nil(t, From(nil))
}
