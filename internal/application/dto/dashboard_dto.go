package dto

import "github.com/shopspring/decimal"

// DashboardResponse resumen operativo para el personal de la tienda.
type DashboardResponse struct {
	PedidosPendientes  int             `json:"pedidos_pendientes"`
	PedidosEntregados  int             `json:"pedidos_entregados"`
	PedidosCancelados  int             `json:"pedidos_cancelados"`
	ProductosAgotados  int             `json:"productos_agotados"`
	VentasMes          decimal.Decimal `json:"ventas_mes"`
	VentasMesFormatted string          `json:"ventas_mes_formatted"`
}
