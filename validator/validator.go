package validator

import (
	"fmt"
	"time"

	"khidma/constants"
	"khidma/dto"
	"khidma/errors"
)

// DateParamLayout is the dd/mm/yyyy format the console sends in query
// parameters.
const DateParamLayout = "02/01/2006"

// ParseDateParam parses a dd/mm/yyyy query parameter. An empty value is an
// absent bound, not an error.
func ParseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateParamLayout, value)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "date must be dd/mm/yyyy", err)
	}
	return &t, nil
}

// ValidateDateRange rejects a range whose start falls after its end.
func ValidateDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "fromDate is after toDate", errors.ErrInvalidDateRange)
	}
	return nil
}

// ValidateFilters checks a filter set against the source and status
// vocabularies.
func ValidateFilters(filters *dto.LineFilters) error {
	if filters.Source != "" && filters.Source != constants.StatusAll {
		switch filters.Source {
		case constants.SourceInvoice, constants.SourceOrder, constants.SourceOffer:
		default:
			return errors.NewAppError(errors.ErrCodeInvalidSource,
				fmt.Sprintf("unknown source %q", filters.Source), nil)
		}
	}

	if filters.Status != "" && filters.Status != constants.StatusAll {
		if !constants.IsKnownStatus(filters.Source, filters.Status) {
			return errors.NewAppError(errors.ErrCodeInvalidStatus,
				fmt.Sprintf("unknown status %q for source %q", filters.Status, filters.Source), nil)
		}
	}

	return ValidateDateRange(filters.FromDate, filters.ToDate)
}
