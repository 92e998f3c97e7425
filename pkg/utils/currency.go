package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CentsToDollars converte o menor valor monetário (centavos) para a unidade inteira
func CentsToDollars(cents float64) float64 {
	return decimal.NewFromFloat(cents).Div(hundred).InexactFloat64()
}

// FractionToPercent converte uma fração (0.245) em pontos percentuais (24.5)
func FractionToPercent(fraction float64) float64 {
	return decimal.NewFromFloat(fraction).Mul(hundred).InexactFloat64()
}
