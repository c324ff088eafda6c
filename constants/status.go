package constants

// Source types
const (
	SourceInvoice = "invoice"
	SourceOrder   = "order"
	SourceOffer   = "offer"
)

// Invoice payment status
const (
	InvoiceStatusPaid     = "paid"
	InvoiceStatusPending  = "pending"
	InvoiceStatusFailed   = "failed"
	InvoiceStatusRefunded = "refunded"
)

// Order status
const (
	OrderStatusPending    = "pending"
	OrderStatusAccepted   = "accepted"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Offer status
const (
	OfferStatusActive  = "active"
	OfferStatusExpired = "expired"
)

// StatusAll disables status filtering
const StatusAll = "all"

var invoiceStatuses = []string{InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusFailed, InvoiceStatusRefunded}
var orderStatuses = []string{OrderStatusPending, OrderStatusAccepted, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled}
var offerStatuses = []string{OfferStatusActive, OfferStatusExpired}

// StatusVocabulary returns the valid status tokens for a source type. An empty
// source (or "all") returns the union across the three sources.
func StatusVocabulary(source string) []string {
	switch source {
	case SourceInvoice:
		return invoiceStatuses
	case SourceOrder:
		return orderStatuses
	case SourceOffer:
		return offerStatuses
	}
	all := make([]string, 0, len(invoiceStatuses)+len(orderStatuses)+len(offerStatuses))
	all = append(all, invoiceStatuses...)
	all = append(all, orderStatuses...)
	all = append(all, offerStatuses...)
	return all
}

// IsKnownStatus reports whether status belongs to the vocabulary of source.
func IsKnownStatus(source, status string) bool {
	for _, s := range StatusVocabulary(source) {
		if s == status {
			return true
		}
	}
	return false
}
