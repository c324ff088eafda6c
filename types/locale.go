package types

// Locale tokens accepted by currency formatting.
const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
)
