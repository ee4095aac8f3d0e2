package cart

import (
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// StockSnapshot stock y disponibilidad vigentes por producto, tomados del
// catálogo al momento de leer el carrito. Un producto ausente del snapshot
// se trata como no disponible.
type StockSnapshot map[string]StockInfo

// StockInfo datos mínimos para reconciliar una línea.
type StockInfo struct {
	Quantity   int
	Disponible bool
}

// SnapshotFromProducts arma el snapshot a partir de los productos cargados.
func SnapshotFromProducts(products []*entity.Product) StockSnapshot {
	snap := make(StockSnapshot, len(products))
	for _, p := range products {
		snap[p.ID] = StockInfo{Quantity: p.Quantity, Disponible: p.Status == entity.StatusActivo}
	}
	return snap
}

// Adjustment registra lo que la reconciliación le hizo a una línea.
type Adjustment struct {
	ProductID string
	From      int
	To        int // 0 significa que la línea se eliminó
}

// Reconcile ajusta el carrito contra el stock vigente:
//   - líneas de productos inexistentes o inactivos se eliminan,
//   - líneas con stock 0 se eliminan,
//   - cantidades por encima del stock se recortan al stock.
//
// Devuelve el carrito resultante y los ajustes aplicados. No toca el store;
// el llamador decide si persiste el resultado.
func Reconcile(entries []entity.CartEntry, snap StockSnapshot) ([]entity.CartEntry, []Adjustment) {
	out := make([]entity.CartEntry, 0, len(entries))
	var adjustments []Adjustment
	for _, e := range entries {
		info, ok := snap[e.ProductID]
		if !ok || !info.Disponible || info.Quantity == 0 {
			adjustments = append(adjustments, Adjustment{ProductID: e.ProductID, From: e.Quantity, To: 0})
			continue
		}
		if e.Quantity > info.Quantity {
			adjustments = append(adjustments, Adjustment{ProductID: e.ProductID, From: e.Quantity, To: info.Quantity})
			e.Quantity = info.Quantity
		}
		out = append(out, e)
	}
	return out, adjustments
}
