package source

import (
	"regexp"
	"strconv"
	"strings"
)

var amountNumberRe = regexp.MustCompile(`[\d][\d,]*(?:\.\d+)?`)

// parseAmountText extracts min/max award amounts and a currency code from
// free text like "up to $50,000" or "£10,000 - £25,000". A zero/zero
// result means no usable amount was found.
func parseAmountText(text, defaultCurrency string) (float64, float64, string) {
	textLower := strings.ToLower(text)

	currency := defaultCurrency
	if currency == "" {
		currency = "USD"
	}
	switch {
	case strings.Contains(text, "£") || strings.Contains(textLower, "gbp"):
		currency = "GBP"
	case strings.Contains(text, "€") || strings.Contains(textLower, "eur"):
		currency = "EUR"
	case strings.Contains(text, "$") || strings.Contains(textLower, "usd"):
		currency = "USD"
	}

	var amounts []float64
	for _, m := range amountNumberRe.FindAllString(text, -1) {
		clean := strings.ReplaceAll(m, ",", "")
		if val, err := strconv.ParseFloat(clean, 64); err == nil && val > 0 {
			amounts = append(amounts, val)
		}
	}

	if len(amounts) == 0 {
		return 0, 0, ""
	}

	if len(amounts) == 1 {
		if strings.Contains(textLower, "minimum") || strings.Contains(textLower, "at least") {
			return amounts[0], 0, currency
		}
		// "up to", "maximum", or an unqualified figure all read as a cap.
		return 0, amounts[0], currency
	}

	min, max := amounts[0], amounts[0]
	for _, a := range amounts {
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return min, max, currency
}
