package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Money formats an amount as ¥ plus a thousands-grouped two-decimal figure,
// e.g. 1234.5 -> "¥1,234.50".
func Money(amount float64) string {
	return "¥" + moneyPrinter.Sprintf("%.2f", amount)
}
