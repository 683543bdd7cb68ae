package notify

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount formats the amount in the currency for the locale.
// Unknown locales fall back to English, unknown currencies to USD.
func FormatAmount(amount decimal.Decimal, locale, code string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	scale, _ := currency.Standard.Rounding(unit)
	value, _ := amount.Round(int32(scale)).Float64()

	return message.NewPrinter(tag).Sprintf("%v %v", currency.Symbol(unit), number.Decimal(value, number.Scale(scale)))
}
