package dto

import "time"

// LineFilters is the uniform filter set applied across the three record
// types. Filters compose by intersection; applying them in any order yields
// the same result.
type LineFilters struct {
	SearchTerm string     `json:"searchTerm"`
	Status     string     `json:"status"`
	Source     string     `json:"source"`
	FromDate   *time.Time `json:"fromDate"`
	ToDate     *time.Time `json:"toDate"`
}
