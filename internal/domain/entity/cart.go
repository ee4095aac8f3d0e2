package entity

import "github.com/shopspring/decimal"

// CartEntry es una línea del carrito de un usuario: snapshot desnormalizado
// del producto (nombre, precio, imagen al momento de agregarlo) más la
// cantidad elegida. Invariante: 1 <= Quantity <= stock reconciliado.
type CartEntry struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Category  string          `json:"category,omitempty"`
	Quantity  int             `json:"quantity"`
}

// Subtotal devuelve precio x cantidad de la línea.
func (e CartEntry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// CartTotal suma los subtotales de todas las líneas.
func CartTotal(entries []CartEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Subtotal())
	}
	return total
}
