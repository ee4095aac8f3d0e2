// Package money formatea montos en pesos colombianos (COP).
// Los precios de la tienda no manejan centavos: "$25.300" son veinticinco mil
// trescientos pesos, con punto como separador de miles.
package money

import "github.com/shopspring/decimal"

// FormatCOP devuelve el monto con signo de pesos y puntos de miles.
// Ej: 25300 → "$25.300", 1000000 → "$1.000.000".
func FormatCOP(d decimal.Decimal) string {
	s := d.StringFixed(0)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := "$" + groupThousands(s)
	if neg {
		return "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
