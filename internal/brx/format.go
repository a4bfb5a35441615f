// Package brx holds Brazilian-locale formatting and validation helpers used
// across handlers and the PDF renderer.
package brx

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatDate converts an ISO calendar date (YYYY-MM-DD) to DD/MM/YYYY.
// Empty input yields an empty string; anything unparseable is returned
// unchanged so a bad stored value still shows up somewhere visible.
func FormatDate(isoDate string) string {
	if isoDate == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

// FormatCurrency renders a value as Brazilian Real currency text.
func FormatCurrency(value float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatPhone applies the usual phone masks by digit count:
// 8 or fewer digits XXXX-XXXX, up to 10 (XX) XXXX-XXXX (landline),
// otherwise (XX) XXXXX-XXXX (mobile). Digits beyond the mask are dropped.
func FormatPhone(raw string) string {
	digits := onlyDigits(raw)
	switch {
	case digits == "":
		return ""
	case len(digits) <= 8:
		if len(digits) < 4 {
			return digits
		}
		return digits[:4] + "-" + digits[4:]
	case len(digits) <= 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		if len(digits) > 11 {
			digits = digits[:11]
		}
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	}
}

// FormatCNPJ applies the XX.XXX.XXX/XXXX-XX mask. Inputs that do not carry
// exactly 14 digits are returned as bare digits.
func FormatCNPJ(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) != 14 {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s",
		digits[:2], digits[2:5], digits[5:8], digits[8:12], digits[12:])
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
