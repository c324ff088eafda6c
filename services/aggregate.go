package services

import (
	"fmt"

	"khidma/constants"
	"khidma/models"
)

// Aggregate combines normalized lines from the three sources into one
// summary. It is a single pass per slice, deterministic and side-effect-free:
// the same inputs always produce the same summary.
//
// Revenue is realized by paid invoices only; orders and offers are
// informational. Commission accrues on invoices and orders, discounts on
// invoices and offers. Inconsistent data (discounts or commission without
// revenue) yields a negative net income carried as a warning, never an
// error.
func Aggregate(invoiceLines, orderLines, offerLines []models.FinancialLine) models.FinancialSummary {
	var revenue, commission, discounts float64
	statusCounts := make(map[string]int)
	var warnings []models.ReconciliationWarning

	flagClamped := func(line models.FinancialLine) {
		if line.NetClamped {
			warnings = append(warnings, models.ReconciliationWarning{
				Code:       models.WarnNetClamped,
				SourceType: line.SourceType,
				LineID:     line.ID,
				Message:    fmt.Sprintf("%s %d: commission exceeds gross amount, net clamped to 0", line.SourceType, line.ID),
			})
		}
	}

	for _, line := range invoiceLines {
		if line.Status == constants.InvoiceStatusPaid {
			revenue += line.GrossAmount
		}
		commission += line.Commission
		discounts += line.Discount
		statusCounts[string(line.SourceType)+":"+line.Status]++
		flagClamped(line)
	}

	for _, line := range orderLines {
		commission += line.Commission
		statusCounts[string(line.SourceType)+":"+line.Status]++
		flagClamped(line)
	}

	activeOffers := 0
	for _, line := range offerLines {
		discounts += line.Discount
		if line.Status == constants.OfferStatusActive {
			activeOffers++
		}
		statusCounts[string(line.SourceType)+":"+line.Status]++
	}

	summary := models.FinancialSummary{
		TotalRevenue:      Round2(revenue),
		TotalCommission:   Round2(commission),
		TotalDiscounts:    Round2(discounts),
		TotalTransactions: len(invoiceLines) + len(orderLines) + len(offerLines),
		TotalInvoices:     len(invoiceLines),
		TotalOrders:       len(orderLines),
		TotalOffers:       len(offerLines),
		ActiveOffers:      activeOffers,
		StatusCounts:      statusCounts,
	}
	summary.NetIncome = Round2(summary.TotalRevenue - summary.TotalCommission - summary.TotalDiscounts)

	if summary.NetIncome < 0 {
		warnings = append(warnings, models.ReconciliationWarning{
			Code:    models.WarnNegativeNetIncome,
			Message: "commission and discounts exceed realized revenue for this range",
		})
	}
	summary.Warnings = warnings

	return summary
}
