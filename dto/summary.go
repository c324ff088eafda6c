package dto

import "khidma/models"

// SummaryResponse is the financial summary as served to the console UI.
type SummaryResponse struct {
	FromDate    string                  `json:"fromDate,omitempty"`
	ToDate      string                  `json:"toDate,omitempty"`
	RefreshedAt string                  `json:"refreshedAt"`
	Summary     models.FinancialSummary `json:"summary"`
	Formatted   FormattedTotals         `json:"formatted"`
}

// FormattedTotals carries the locale-formatted monetary fields so the UI can
// render them without its own currency logic.
type FormattedTotals struct {
	TotalRevenue    string `json:"totalRevenue"`
	TotalCommission string `json:"totalCommission"`
	TotalDiscounts  string `json:"totalDiscounts"`
	NetIncome       string `json:"netIncome"`
}
