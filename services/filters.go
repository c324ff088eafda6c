package services

import (
	"strings"
	"time"
	"unicode"

	"khidma/constants"
	"khidma/dto"
	"khidma/models"

	"github.com/fiam/gounidecode/unidecode"
	"golang.org/x/text/unicode/norm"
)

const dayKeyLayout = "20060102"

// removeDiacritics folds accented and non-Latin characters so search is
// insensitive to diacritics in customer and provider names.
func removeDiacritics(s string) string {
	t := norm.NFD.String(s)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return unidecode.Unidecode(b.String())
}

func normalizeSearchText(s string) string {
	return removeDiacritics(strings.ToLower(strings.ReplaceAll(s, " ", "")))
}

// ApplyTextFilter keeps lines whose searchable text contains the term,
// case- and diacritics-insensitively. A blank term is a no-op.
func ApplyTextFilter(lines []models.FinancialLine, term string) []models.FinancialLine {
	if strings.TrimSpace(term) == "" {
		return lines
	}
	needle := normalizeSearchText(term)
	var filtered []models.FinancialLine
	for _, line := range lines {
		if strings.Contains(normalizeSearchText(line.SearchableText), needle) {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// ApplyStatusFilter keeps lines with exactly the given status. The "all"
// sentinel (or a blank status) disables the filter.
func ApplyStatusFilter(lines []models.FinancialLine, status string) []models.FinancialLine {
	if status == "" || status == constants.StatusAll {
		return lines
	}
	var filtered []models.FinancialLine
	for _, line := range lines {
		if line.Status == status {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// ApplySourceFilter keeps lines of one source type. The "all" sentinel (or a
// blank source) disables the filter.
func ApplySourceFilter(lines []models.FinancialLine, source string) []models.FinancialLine {
	if source == "" || source == constants.StatusAll {
		return lines
	}
	var filtered []models.FinancialLine
	for _, line := range lines {
		if string(line.SourceType) == source {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// ApplyDateRange keeps lines whose occurredAt falls within [from, to]
// inclusive. Bounds are compared at day granularity so same-day boundary
// records are never excluded; an absent bound is unbounded on that side.
func ApplyDateRange(lines []models.FinancialLine, from, to *time.Time) []models.FinancialLine {
	if from == nil && to == nil {
		return lines
	}
	var filtered []models.FinancialLine
	for _, line := range lines {
		day := line.OccurredAt.Format(dayKeyLayout)
		if from != nil && day < from.Format(dayKeyLayout) {
			continue
		}
		if to != nil && day > to.Format(dayKeyLayout) {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}

// FilterLines applies the full filter set. Filters intersect, so the order
// they run in does not change the result.
func FilterLines(lines []models.FinancialLine, filters dto.LineFilters) []models.FinancialLine {
	lines = ApplySourceFilter(lines, filters.Source)
	lines = ApplyStatusFilter(lines, filters.Status)
	lines = ApplyDateRange(lines, filters.FromDate, filters.ToDate)
	return ApplyTextFilter(lines, filters.SearchTerm)
}
