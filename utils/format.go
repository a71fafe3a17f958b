package utils

import (
	"fmt"
	"strings"
)

// FormatUSD renders a dollar amount the way the storefront displays
// prices, e.g. 206 -> "$206.00".
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// TelLink strips a display phone number down to a tel: href,
// e.g. "(571) 206-2249" -> "tel:5712062249".
func TelLink(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "tel:" + digits.String()
}
