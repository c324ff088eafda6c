package services

import (
	"testing"
	"time"

	"khidma/dto"
	"khidma/models"

	"github.com/stretchr/testify/assert"
)

func searchLine(id uint, status, text string, day int) models.FinancialLine {
	return models.FinancialLine{
		SourceType:     models.SourceInvoice,
		ID:             id,
		Status:         status,
		SearchableText: text,
		OccurredAt:     time.Date(2025, 7, day, 14, 30, 0, 0, time.UTC),
	}
}

func TestApplyTextFilter(t *testing.T) {
	lines := []models.FinancialLine{
		searchLine(1, "paid", "Ahmed CleanCo Deep cleaning", 1),
		searchLine(2, "paid", "José Plumbing Pros Pipe repair", 2),
		searchLine(3, "pending", "Fatima GreenGarden Lawn care", 3),
	}

	t.Run("blank term is a no-op", func(t *testing.T) {
		assert.Equal(t, lines, ApplyTextFilter(lines, ""))
		assert.Equal(t, lines, ApplyTextFilter(lines, "   "))
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := ApplyTextFilter(lines, "cleanco")
		if assert.Len(t, got, 1) {
			assert.Equal(t, uint(1), got[0].ID)
		}
	})

	t.Run("diacritics-insensitive", func(t *testing.T) {
		got := ApplyTextFilter(lines, "jose")
		if assert.Len(t, got, 1) {
			assert.Equal(t, uint(2), got[0].ID)
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, ApplyTextFilter(lines, "nonexistent"))
	})
}

func TestApplyStatusFilter(t *testing.T) {
	lines := []models.FinancialLine{
		searchLine(1, "paid", "", 1),
		searchLine(2, "pending", "", 2),
	}

	assert.Equal(t, lines, ApplyStatusFilter(lines, "all"))
	assert.Equal(t, lines, ApplyStatusFilter(lines, ""))

	got := ApplyStatusFilter(lines, "paid")
	if assert.Len(t, got, 1) {
		assert.Equal(t, uint(1), got[0].ID)
	}
}

func TestApplyDateRange(t *testing.T) {
	lines := []models.FinancialLine{
		searchLine(1, "paid", "", 1),
		searchLine(2, "paid", "", 15),
		searchLine(3, "paid", "", 31),
	}

	t.Run("absent bounds keep everything", func(t *testing.T) {
		assert.Equal(t, lines, ApplyDateRange(lines, nil, nil))
	})

	t.Run("inclusive day-granularity bounds", func(t *testing.T) {
		// bound at midnight must still include the line at 14:30 that day
		from := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
		got := ApplyDateRange(lines, &from, &to)
		assert.Len(t, got, 2)
	})

	t.Run("open start", func(t *testing.T) {
		to := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
		got := ApplyDateRange(lines, nil, &to)
		assert.Len(t, got, 2)
	})

	t.Run("open end", func(t *testing.T) {
		from := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
		got := ApplyDateRange(lines, &from, nil)
		assert.Len(t, got, 1)
	})
}

func TestFilterOrderIndependence(t *testing.T) {
	lines := []models.FinancialLine{
		searchLine(1, "paid", "Ahmed CleanCo Deep cleaning", 1),
		searchLine(2, "pending", "Ahmed CleanCo Deep cleaning", 2),
		searchLine(3, "paid", "Fatima GreenGarden Lawn care", 3),
		searchLine(4, "pending", "Fatima GreenGarden Lawn care", 4),
	}

	term := "ahmed"
	status := "paid"

	statusFirst := ApplyTextFilter(ApplyStatusFilter(lines, status), term)
	textFirst := ApplyStatusFilter(ApplyTextFilter(lines, term), status)

	assert.Equal(t, statusFirst, textFirst)
	if assert.Len(t, statusFirst, 1) {
		assert.Equal(t, uint(1), statusFirst[0].ID)
	}
}

func TestFilterLines(t *testing.T) {
	offerLine := searchLine(9, "active", "GreenGarden Lawn care", 10)
	offerLine.SourceType = models.SourceOffer

	lines := []models.FinancialLine{
		searchLine(1, "paid", "Ahmed CleanCo Deep cleaning", 1),
		offerLine,
	}

	got := FilterLines(lines, dto.LineFilters{Source: "offer"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, models.SourceOffer, got[0].SourceType)
	}

	assert.Equal(t, lines, FilterLines(lines, dto.LineFilters{Source: "all", Status: "all"}))
}
