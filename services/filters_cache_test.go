package services

import (
	"testing"
	"time"

	"khidma/dto"

	"github.com/stretchr/testify/assert"
)

func TestMergeFilters(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	t.Run("new values win", func(t *testing.T) {
		old := &dto.LineFilters{SearchTerm: "ahmed", Status: "paid"}
		next := &dto.LineFilters{SearchTerm: "fatima"}

		merged := MergeFilters(old, next)

		assert.Equal(t, "fatima", merged.SearchTerm)
		assert.Equal(t, "paid", merged.Status)
	})

	t.Run("old bounds fill the gaps", func(t *testing.T) {
		old := &dto.LineFilters{FromDate: &from, ToDate: &to}
		next := &dto.LineFilters{Status: "pending"}

		merged := MergeFilters(old, next)

		assert.Equal(t, &from, merged.FromDate)
		assert.Equal(t, &to, merged.ToDate)
	})

	t.Run("inverted range drops the stale end", func(t *testing.T) {
		laterStart := to.AddDate(0, 1, 0)
		old := &dto.LineFilters{ToDate: &to}
		next := &dto.LineFilters{FromDate: &laterStart}

		merged := MergeFilters(old, next)

		assert.Equal(t, &laterStart, merged.FromDate)
		assert.Nil(t, merged.ToDate)
	})
}
