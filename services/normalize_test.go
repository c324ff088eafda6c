package services

import (
	"testing"
	"time"

	"khidma/constants"
	"khidma/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestNormalizeInvoice(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawInvoice
		want models.FinancialLine
	}{
		{
			name: "breakdown commission wins over flat field",
			raw: models.RawInvoice{
				InvoiceID:     1,
				TotalAmount:   floatPtr(100),
				Discount:      floatPtr(10),
				Commission:    floatPtr(99),
				PaymentStatus: strPtr("paid"),
				PaymentDate:   strPtr("2025-03-10"),
				ServicesBreakdown: []models.ServiceBreakdown{
					{CommissionAmount: floatPtr(15)},
				},
				CustomerName: "Ahmed",
				ProviderName: "CleanCo",
				ServiceTitle: "Deep cleaning",
			},
			want: models.FinancialLine{
				SourceType:     models.SourceInvoice,
				ID:             1,
				GrossAmount:    100,
				Discount:       10,
				Commission:     15,
				NetAmount:      85,
				Status:         "paid",
				OccurredAt:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				SearchableText: "Ahmed CleanCo Deep cleaning",
			},
		},
		{
			name: "flat commission when breakdown absent",
			raw: models.RawInvoice{
				InvoiceID:   2,
				TotalAmount: floatPtr(200),
				Commission:  floatPtr(40),
				PaymentDate: strPtr("2025-03-11"),
			},
			want: models.FinancialLine{
				SourceType:  models.SourceInvoice,
				ID:          2,
				GrossAmount: 200,
				Commission:  40,
				NetAmount:   160,
				Status:      constants.InvoiceStatusPending,
				OccurredAt:  time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "missing numerics default to zero",
			raw:  models.RawInvoice{InvoiceID: 3, PaymentDate: strPtr("2025-01-01")},
			want: models.FinancialLine{
				SourceType: models.SourceInvoice,
				ID:         3,
				Status:     constants.InvoiceStatusPending,
				OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "commission above gross clamps net to zero",
			raw: models.RawInvoice{
				InvoiceID:   4,
				TotalAmount: floatPtr(50),
				Commission:  floatPtr(80),
				PaymentDate: strPtr("2025-02-01"),
			},
			want: models.FinancialLine{
				SourceType:  models.SourceInvoice,
				ID:          4,
				GrossAmount: 50,
				Commission:  80,
				NetAmount:   0,
				NetClamped:  true,
				Status:      constants.InvoiceStatusPending,
				OccurredAt:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeInvoice(tt.raw))
		})
	}
}

func TestNormalizeOrder(t *testing.T) {
	t.Run("prefers orderDate over createdAt", func(t *testing.T) {
		line := NormalizeOrder(models.RawOrder{
			OrderID:          10,
			TotalAmount:      floatPtr(300),
			CommissionAmount: floatPtr(45),
			Status:           strPtr("completed"),
			OrderDate:        strPtr("2025-04-01"),
			CreatedAt:        strPtr("2025-03-28"),
		})
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), line.OccurredAt)
		assert.Equal(t, 255.0, line.NetAmount)
		assert.Equal(t, "completed", line.Status)
	})

	t.Run("falls back to createdAt", func(t *testing.T) {
		line := NormalizeOrder(models.RawOrder{
			OrderID:   11,
			CreatedAt: strPtr("2025-03-28"),
		})
		assert.Equal(t, time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), line.OccurredAt)
	})

	t.Run("missing both dates still produces a line", func(t *testing.T) {
		before := time.Now()
		line := NormalizeOrder(models.RawOrder{OrderID: 12})
		assert.Equal(t, models.SourceOrder, line.SourceType)
		assert.Equal(t, constants.OrderStatusPending, line.Status)
		assert.False(t, line.OccurredAt.Before(before))
	})

	t.Run("commission above gross clamps net to zero", func(t *testing.T) {
		line := NormalizeOrder(models.RawOrder{
			OrderID:          13,
			TotalAmount:      floatPtr(20),
			CommissionAmount: floatPtr(35),
			OrderDate:        strPtr("2025-05-05"),
		})
		assert.Equal(t, 0.0, line.NetAmount)
		assert.True(t, line.NetClamped)
	})
}

func TestNormalizeOffer(t *testing.T) {
	t.Run("active offer with discount", func(t *testing.T) {
		line := NormalizeOffer(models.RawOffer{
			ID:            20,
			OriginalPrice: floatPtr(50),
			OfferPrice:    floatPtr(40),
			IsActive:      true,
			StartDate:     strPtr("2025-06-01"),
		})
		assert.Equal(t, 10.0, line.Discount)
		assert.Equal(t, 40.0, line.NetAmount)
		assert.Equal(t, 0.0, line.Commission)
		assert.Equal(t, constants.OfferStatusActive, line.Status)
		assert.Equal(t, 20.0, OfferDiscountPercent(line))
	})

	t.Run("offer price above original yields zero discount", func(t *testing.T) {
		line := NormalizeOffer(models.RawOffer{
			ID:            21,
			OriginalPrice: floatPtr(50),
			OfferPrice:    floatPtr(60),
			StartDate:     strPtr("2025-06-01"),
		})
		assert.Equal(t, 0.0, line.Discount)
		assert.Equal(t, 60.0, line.NetAmount)
		assert.Equal(t, constants.OfferStatusExpired, line.Status)
	})

	t.Run("missing offer price defaults to original", func(t *testing.T) {
		line := NormalizeOffer(models.RawOffer{
			ID:            22,
			OriginalPrice: floatPtr(80),
			IsActive:      true,
			StartDate:     strPtr("2025-06-02"),
		})
		assert.Equal(t, 0.0, line.Discount)
		assert.Equal(t, 80.0, line.NetAmount)
	})

	t.Run("zero original price guards the percentage division", func(t *testing.T) {
		line := NormalizeOffer(models.RawOffer{ID: 23, StartDate: strPtr("2025-06-03")})
		assert.Equal(t, 0.0, OfferDiscountPercent(line))
	})
}
