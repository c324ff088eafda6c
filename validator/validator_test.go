package validator

import (
	"testing"
	"time"

	"khidma/dto"
	"khidma/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam(t *testing.T) {
	t.Run("empty is an absent bound", func(t *testing.T) {
		got, err := ParseDateParam("")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("dd/mm/yyyy parses", func(t *testing.T) {
		got, err := ParseDateParam("15/07/2025")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("other formats are rejected", func(t *testing.T) {
		_, err := ParseDateParam("2025-07-15")
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidDate, appErr.Code)
	})
}

func TestValidateDateRange(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateDateRange(&from, &to))
	assert.NoError(t, ValidateDateRange(nil, &to))
	assert.NoError(t, ValidateDateRange(&from, nil))
	assert.NoError(t, ValidateDateRange(nil, nil))

	err := ValidateDateRange(&to, &from)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidDate, errors.GetAppError(err).Code)
}

func TestValidateFilters(t *testing.T) {
	tests := []struct {
		name     string
		filters  dto.LineFilters
		wantCode errors.ErrorCode
	}{
		{name: "empty filters pass", filters: dto.LineFilters{}},
		{name: "all sentinels pass", filters: dto.LineFilters{Source: "all", Status: "all"}},
		{name: "valid source and status", filters: dto.LineFilters{Source: "order", Status: "in_progress"}},
		{name: "status checked against union when source absent", filters: dto.LineFilters{Status: "refunded"}},
		{name: "unknown source rejected", filters: dto.LineFilters{Source: "payout"}, wantCode: errors.ErrCodeInvalidSource},
		{name: "status from another vocabulary rejected", filters: dto.LineFilters{Source: "offer", Status: "paid"}, wantCode: errors.ErrCodeInvalidStatus},
		{name: "unknown status rejected", filters: dto.LineFilters{Status: "archived"}, wantCode: errors.ErrCodeInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilters(&tt.filters)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetAppError(err).Code)
		})
	}
}
