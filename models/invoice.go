package models

// RawInvoice is an invoice exactly as the marketplace backend returns it.
// Numeric fields may be absent or null depending on the backend version, so
// they are pointers here; the normalizer is the only code allowed to touch
// them.
type RawInvoice struct {
	InvoiceID         uint               `json:"invoiceId"`
	TotalAmount       *float64           `json:"totalAmount"`
	Discount          *float64           `json:"discount"`
	Commission        *float64           `json:"commission"`
	PaymentStatus     *string            `json:"paymentStatus"`
	PaymentDate       *string            `json:"paymentDate"`
	ServicesBreakdown []ServiceBreakdown `json:"servicesBreakdown"`
	CustomerName      string             `json:"customerName"`
	ProviderName      string             `json:"providerName"`
	ServiceTitle      string             `json:"serviceTitle"`
}

// ServiceBreakdown is one service entry inside an invoice, carrying the
// platform's commission share for that service.
type ServiceBreakdown struct {
	ServiceID        uint     `json:"serviceId"`
	ServiceTitle     string   `json:"serviceTitle"`
	Amount           *float64 `json:"amount"`
	CommissionAmount *float64 `json:"commissionAmount"`
}
