package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"commission-reporting-api/internal/models"
)

var (
	englishPrinter = message.NewPrinter(language.English)
	hundred        = decimal.NewFromInt(100)
)

// FormatCurrency renders an amount as $1,234.56.
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(models.MoneyPlaces)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(models.MoneyPlaces).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, englishPrinter.Sprintf("%d", whole.IntPart()), cents)
}

// FormatPercentage renders a fraction such as 0.05 as 5.0%.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).StringFixed(1) + "%"
}
