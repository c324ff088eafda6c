package services

import (
	"math"
	"strings"

	"khidma/config"
	"khidma/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Round2 rounds to 2 decimals, halves away from zero. Banker's rounding would
// understate revenue on .005 boundaries, so it is not used here. NaN and Inf
// collapse to 0.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Round(x*100) / 100
}

// FormatCurrency renders an amount with the platform currency code and
// locale-appropriate separators. Non-finite input formats as 0; the function
// never fails.
func FormatCurrency(amount float64, locale string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	amount = Round2(amount)

	code := config.GetEnvDefault("CURRENCY_CODE", "SAR")

	tag := language.English
	if strings.HasPrefix(strings.ToLower(locale), types.LocaleArabic) {
		tag = language.Arabic
	}

	p := message.NewPrinter(tag)
	formatted := p.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))

	if tag == language.Arabic {
		// Arabic UIs render the code as a de-emphasized trailing token, kept
		// with the number by a non-breaking space.
		return formatted + " " + code
	}
	return formatted + " " + code
}
