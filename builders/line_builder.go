package builders

import (
	"strings"
	"time"

	"khidma/models"
)

// LineBuilder assembles a FinancialLine step by step. The builder is where
// the line invariants live: amounts never go negative, and a clamped net is
// flagged on the line.
type LineBuilder struct {
	line *models.FinancialLine
}

// NewLineBuilder creates a builder for the given source type and id.
func NewLineBuilder(source models.SourceType, id uint) *LineBuilder {
	return &LineBuilder{
		line: &models.FinancialLine{SourceType: source, ID: id},
	}
}

// WithAmounts sets gross, discount and commission. Negative inputs collapse
// to 0.
func (b *LineBuilder) WithAmounts(gross, discount, commission float64) *LineBuilder {
	if gross < 0 {
		gross = 0
	}
	if discount < 0 {
		discount = 0
	}
	if commission < 0 {
		commission = 0
	}
	b.line.GrossAmount = gross
	b.line.Discount = discount
	b.line.Commission = commission
	return b
}

// WithNet sets the net amount, clamping a negative value to 0 and flagging
// the line.
func (b *LineBuilder) WithNet(net float64) *LineBuilder {
	if net < 0 {
		net = 0
		b.line.NetClamped = true
	}
	b.line.NetAmount = net
	return b
}

// WithStatus sets the status token.
func (b *LineBuilder) WithStatus(status string) *LineBuilder {
	b.line.Status = status
	return b
}

// WithOccurredAt sets the representative timestamp used for date filtering.
func (b *LineBuilder) WithOccurredAt(t time.Time) *LineBuilder {
	b.line.OccurredAt = t
	return b
}

// WithSearchableText joins the non-empty parts into the search haystack.
func (b *LineBuilder) WithSearchableText(parts ...string) *LineBuilder {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	b.line.SearchableText = strings.Join(kept, " ")
	return b
}

// Build returns the finished line by value.
func (b *LineBuilder) Build() models.FinancialLine {
	return *b.line
}
