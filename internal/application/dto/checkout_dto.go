package dto

// CheckoutRequest datos de contacto y pago del checkout. Los datos de
// entrega pueden venir digitados o resolverse desde una dirección guardada
// (AddressID o la selección previa en Redis); esa decisión, y la presencia
// de los campos, la valida el caso de uso, no las etiquetas.
type CheckoutRequest struct {
	Name          string `json:"name" validate:"omitempty,min=1,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	AddressID     string `json:"address_id" validate:"omitempty,uuid4"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=efectivo tarjeta transferencia"` // vacío = efectivo
}

// CheckoutResponse resultado del checkout: el pedido creado.
type CheckoutResponse struct {
	Order OrderResponse `json:"order"`
}
