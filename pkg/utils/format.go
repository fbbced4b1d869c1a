package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultCurrency = "AED"

var printer = message.NewPrinter(language.English)

// FormatNumber formata um valor com separador de milhar e até duas casas decimais
func FormatNumber(v float64) string {
	return printer.Sprint(number.Decimal(RoundWithTwoDecimalPlace(v), number.MaxFractionDigits(2)))
}

// FormatInteger formata contadores (impressões, cliques) com separador de milhar
func FormatInteger(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatCurrency formata valores monetários sempre com duas casas decimais
func FormatCurrency(v float64) string {
	return DefaultCurrency + " " + printer.Sprint(number.Decimal(RoundWithTwoDecimalPlace(v),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPercent formata uma taxa já expressa em porcentagem (ex: 12.5 -> "12.50%")
func FormatPercent(v float64) string {
	return printer.Sprintf("%.2f%%", RoundWithTwoDecimalPlace(v))
}
