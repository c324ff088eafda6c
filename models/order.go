package models

// RawOrder is an order as the marketplace backend returns it, independent of
// payment state. Older backend versions report createdAt instead of
// orderDate.
type RawOrder struct {
	OrderID          uint     `json:"orderId"`
	TotalAmount      *float64 `json:"totalAmount"`
	Discount         *float64 `json:"discount"`
	CommissionAmount *float64 `json:"commissionAmount"`
	Status           *string  `json:"status"`
	OrderDate        *string  `json:"orderDate"`
	CreatedAt        *string  `json:"createdAt"`
	CustomerName     string   `json:"customerName"`
	ProviderName     string   `json:"providerName"`
	ServiceTitle     string   `json:"serviceTitle"`
}
