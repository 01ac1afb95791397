package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyWords = map[string]string{
	"HNL": "LEMPIRAS",
	"USD": "DÓLARES",
	"EUR": "EUROS",
}

// AmountInWords spells a contract amount the way it is written on payment
// orders, e.g. 1500.50 HNL -> "MIL QUINIENTOS LEMPIRAS CON 50/100".
func AmountInWords(amount decimal.Decimal, currency string) string {
	name, ok := currencyWords[strings.ToUpper(currency)]
	if !ok {
		name = strings.ToUpper(currency)
	}

	amount = amount.Round(2)
	prefix := ""
	if amount.IsNegative() {
		prefix = "MENOS "
		amount = amount.Neg()
	}
	whole := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	return fmt.Sprintf("%s%s %s CON %02d/100", prefix, spell(whole), name, cents)
}

func spell(n int64) string {
	switch {
	case n == 0:
		return "CERO"
	case n < 1000:
		return spellHundreds(n)
	case n < 1_000_000:
		return scaled(n/1000, n%1000, "MIL", "MIL")
	case n < 1_000_000_000_000:
		return scaled(n/1_000_000, n%1_000_000, "UN MILLÓN", "MILLONES")
	}
	return "NÚMERO MUY GRANDE"
}

// scaled spells count×scale + rest. one is used when count is 1.
func scaled(count, rest int64, one, many string) string {
	head := one
	if count > 1 {
		head = spell(count) + " " + many
	}
	if rest == 0 {
		return head
	}
	return head + " " + spell(rest)
}

func spellHundreds(n int64) string {
	h, rest := n/100, n%100
	switch {
	case h == 0:
		return spellTens(rest)
	case rest == 0:
		return hundredWords[h]
	case h == 1:
		return "CIENTO " + spellTens(rest)
	}
	return hundredWords[h] + " " + spellTens(rest)
}

func spellTens(n int64) string {
	if n < 30 {
		return smallWords[n]
	}
	t, u := n/10, n%10
	if u == 0 {
		return tenWords[t]
	}
	return tenWords[t] + " Y " + smallWords[u]
}

var smallWords = [30]string{
	"", "UNO", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE",
	"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE",
	"VEINTE", "VEINTIUNO", "VEINTIDÓS", "VEINTITRÉS", "VEINTICUATRO", "VEINTICINCO", "VEINTISÉIS", "VEINTISIETE", "VEINTIOCHO", "VEINTINUEVE",
}

var tenWords = [10]string{
	"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA",
}

var hundredWords = [10]string{
	"", "CIEN", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS",
}
