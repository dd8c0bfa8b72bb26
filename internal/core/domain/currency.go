package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyBRL Currency = "BRL"
)

// BaseCurrency anchors every rate in exchangeRates.
const BaseCurrency = CurrencyARS

// ARS per unit of each currency.
var exchangeRates = map[Currency]float64{
	CurrencyARS: 1,
	CurrencyUSD: 1000,
	CurrencyEUR: 1100,
	CurrencyBRL: 200,
}

var currencySymbols = map[Currency]string{
	CurrencyARS: "$",
	CurrencyUSD: "US$",
	CurrencyEUR: "€",
	CurrencyBRL: "R$",
}

var priceLocale = language.MustParse("es-AR")

func Currencies() []Currency {
	return []Currency{CurrencyARS, CurrencyUSD, CurrencyEUR, CurrencyBRL}
}

func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}

	return c, nil
}

func (c Currency) Valid() bool {
	_, ok := exchangeRates[c]
	return ok
}

func (c Currency) FractionDigits() int {
	if c == BaseCurrency {
		return 0
	}

	return 2
}

func Convert(amount float64, from, to Currency) (float64, error) {
	fromRate, ok := exchangeRates[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, from)
	}

	toRate, ok := exchangeRates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, to)
	}

	if from == to {
		return amount, nil
	}

	return amount * fromRate / toRate, nil
}

// FormatPrice renders amount the way prices are shown in the catalog,
// e.g. "US$ 12.500,50" or "$ 350.000".
func FormatPrice(amount float64, c Currency) (string, error) {
	symbol, ok := currencySymbols[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, c)
	}

	p := message.NewPrinter(priceLocale)
	digits := number.Scale(c.FractionDigits())

	return symbol + " " + p.Sprintf("%v", number.Decimal(amount, digits)), nil
}
