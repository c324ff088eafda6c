package models

// RawOffer is a time-bounded promotional price a provider sets for a service.
// Offers carry no commission line; offerPrice is already net of the offer's
// own discount.
type RawOffer struct {
	ID            uint     `json:"id"`
	OriginalPrice *float64 `json:"originalPrice"`
	OfferPrice    *float64 `json:"offerPrice"`
	IsActive      bool     `json:"isActive"`
	StartDate     *string  `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	ProviderName  string   `json:"providerName"`
	ServiceTitle  string   `json:"serviceTitle"`
}
