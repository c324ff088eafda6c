package models

import "time"

// SourceType tags which backend collection a FinancialLine came from. The
// status vocabulary of a line is keyed by its source type.
type SourceType string

const (
	SourceInvoice SourceType = "invoice"
	SourceOrder   SourceType = "order"
	SourceOffer   SourceType = "offer"
)

// FinancialLine is the normalized unit every raw record is reduced to.
// Everything downstream of the normalizers is built against this shape; no
// nil or NaN ever crosses into it.
type FinancialLine struct {
	SourceType     SourceType `json:"sourceType"`
	ID             uint       `json:"id"`
	GrossAmount    float64    `json:"grossAmount"`
	Discount       float64    `json:"discount"`
	Commission     float64    `json:"commission"`
	NetAmount      float64    `json:"netAmount"`
	Status         string     `json:"status"`
	OccurredAt     time.Time  `json:"occurredAt"`
	SearchableText string     `json:"searchableText"`
	// NetClamped marks a line whose net would have gone negative and was
	// clamped to 0. The aggregator surfaces it as a warning.
	NetClamped bool `json:"netClamped,omitempty"`
}

// Warning codes
const (
	WarnNegativeNetIncome = "NEGATIVE_NET_INCOME"
	WarnNetClamped        = "NET_CLAMPED"
)

// ReconciliationWarning flags a suspect number on a summary without blocking
// it. The UI shows the number with the warning inline.
type ReconciliationWarning struct {
	Code       string     `json:"code"`
	SourceType SourceType `json:"sourceType,omitempty"`
	LineID     uint       `json:"lineId,omitempty"`
	Message    string     `json:"message"`
}

// FinancialSummary is the reconciled picture for one date range. A summary is
// a value: a new range produces a new summary, never a mutation of the old
// one.
type FinancialSummary struct {
	TotalRevenue      float64                 `json:"totalRevenue"`
	TotalCommission   float64                 `json:"totalCommission"`
	TotalDiscounts    float64                 `json:"totalDiscounts"`
	NetIncome         float64                 `json:"netIncome"`
	TotalTransactions int                     `json:"totalTransactions"`
	TotalInvoices     int                     `json:"totalInvoices"`
	TotalOrders       int                     `json:"totalOrders"`
	TotalOffers       int                     `json:"totalOffers"`
	ActiveOffers      int                     `json:"activeOffers"`
	StatusCounts      map[string]int          `json:"statusCounts"`
	Warnings          []ReconciliationWarning `json:"warnings,omitempty"`
}
