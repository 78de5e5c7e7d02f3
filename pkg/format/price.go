package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Price renders amount in the currency's standard precision with English
// digit grouping, e.g. "USD 1,234.50". Unknown currencies or amounts fall
// back to the raw "<currency> <amount>".
func Price(amount, code string) string {
	fallback := strings.TrimSpace(code + " " + amount)

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fallback
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return fallback
	}

	scale, _ := currency.Standard.Rounding(unit)
	return unit.String() + " " + printer.Sprintf("%."+strconv.Itoa(scale)+"f", v)
}
