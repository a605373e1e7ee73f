package locale

import (
	"errors"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are displayed in Brazilian Real, always. The printer takes
// care of the decimal comma and thousands grouping ("1.234,56").
var printer = message.NewPrinter(language.BrazilianPortuguese)

var ErrNonFinite = errors.New("amount is not a finite non-negative number")

// FormatCurrency renders an amount as a pt-BR currency string, e.g.
// 19.9 -> "R$ 19,90". NaN, infinities and negative amounts fail fast
// instead of producing a malformed price.
func FormatCurrency(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return "", ErrNonFinite
	}

	return printer.Sprintf("R$ %.2f", amount), nil
}
