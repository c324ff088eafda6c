package services

import (
	"math"
	"time"

	"khidma/builders"
	"khidma/constants"
	"khidma/models"
)

// The normalizers are the single defensive boundary between the backend's
// loosely-typed payloads and the rest of the system. They are total: any
// record shape produces a line, missing numerics become 0, and nothing here
// ever returns an error.

var backendTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// floatOrZero collapses missing and non-finite numeric fields to 0 so nil and
// NaN never cross the normalization boundary.
func floatOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

// parseBackendTime tries the date shapes the backend is known to emit.
func parseBackendTime(v *string) (time.Time, bool) {
	if v == nil || *v == "" {
		return time.Time{}, false
	}
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, *v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeInvoice reduces a raw invoice to a financial line. Commission is
// the sum over the service breakdown when present, else the flat field. The
// discount is already reflected in the gross upstream and is not subtracted
// again.
func NormalizeInvoice(raw models.RawInvoice) models.FinancialLine {
	gross := math.Max(0, floatOrZero(raw.TotalAmount))

	var commission float64
	if len(raw.ServicesBreakdown) > 0 {
		for _, item := range raw.ServicesBreakdown {
			commission += floatOrZero(item.CommissionAmount)
		}
	} else {
		commission = floatOrZero(raw.Commission)
	}
	commission = math.Max(0, commission)

	occurredAt, ok := parseBackendTime(raw.PaymentDate)
	if !ok {
		occurredAt = time.Now()
	}

	return builders.NewLineBuilder(models.SourceInvoice, raw.InvoiceID).
		WithAmounts(gross, floatOrZero(raw.Discount), commission).
		WithNet(gross - commission).
		WithStatus(stringOr(raw.PaymentStatus, constants.InvoiceStatusPending)).
		WithOccurredAt(occurredAt).
		WithSearchableText(raw.CustomerName, raw.ProviderName, raw.ServiceTitle).
		Build()
}

// NormalizeOrder reduces a raw order to a financial line. Orders may report
// orderDate or createdAt depending on backend version; when both are absent
// the normalization time stands in, which is a known data-quality gap of the
// backend.
func NormalizeOrder(raw models.RawOrder) models.FinancialLine {
	gross := math.Max(0, floatOrZero(raw.TotalAmount))
	commission := math.Max(0, floatOrZero(raw.CommissionAmount))

	occurredAt, ok := parseBackendTime(raw.OrderDate)
	if !ok {
		occurredAt, ok = parseBackendTime(raw.CreatedAt)
	}
	if !ok {
		occurredAt = time.Now()
	}

	return builders.NewLineBuilder(models.SourceOrder, raw.OrderID).
		WithAmounts(gross, floatOrZero(raw.Discount), commission).
		WithNet(gross - commission).
		WithStatus(stringOr(raw.Status, constants.OrderStatusPending)).
		WithOccurredAt(occurredAt).
		WithSearchableText(raw.CustomerName, raw.ProviderName, raw.ServiceTitle).
		Build()
}

// NormalizeOffer reduces a raw offer to a financial line. Offers carry no
// commission; net is the offer price itself, and a malformed offer priced
// above the original yields a 0 discount, never a negative one.
func NormalizeOffer(raw models.RawOffer) models.FinancialLine {
	gross := math.Max(0, floatOrZero(raw.OriginalPrice))

	offerPrice := gross
	if raw.OfferPrice != nil {
		offerPrice = math.Max(0, floatOrZero(raw.OfferPrice))
	}

	status := constants.OfferStatusExpired
	if raw.IsActive {
		status = constants.OfferStatusActive
	}

	occurredAt, ok := parseBackendTime(raw.StartDate)
	if !ok {
		occurredAt = time.Now()
	}

	return builders.NewLineBuilder(models.SourceOffer, raw.ID).
		WithAmounts(gross, math.Max(0, gross-offerPrice), 0).
		WithNet(offerPrice).
		WithStatus(status).
		WithOccurredAt(occurredAt).
		WithSearchableText(raw.ProviderName, raw.ServiceTitle).
		Build()
}

// OfferDiscountPercent derives the discount percentage of an offer line,
// guarding the division when the original price is 0.
func OfferDiscountPercent(line models.FinancialLine) float64 {
	if line.GrossAmount <= 0 {
		return 0
	}
	return Round2(line.Discount / line.GrossAmount * 100)
}
