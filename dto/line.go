package dto

import "khidma/models"

// LineResponse is one financial line in a table, with display-ready extras.
type LineResponse struct {
	SourceType      models.SourceType `json:"sourceType"`
	ID              uint              `json:"id"`
	GrossAmount     float64           `json:"grossAmount"`
	Discount        float64           `json:"discount"`
	Commission      float64           `json:"commission"`
	NetAmount       float64           `json:"netAmount"`
	Status          string            `json:"status"`
	OccurredAt      string            `json:"occurredAt"`
	SearchableText  string            `json:"searchableText"`
	NetClamped      bool              `json:"netClamped,omitempty"`
	FormattedNet    string            `json:"formattedNet"`
	DiscountPercent float64           `json:"discountPercent,omitempty"`
}
