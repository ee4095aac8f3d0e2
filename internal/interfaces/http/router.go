package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lacigarreria/tienda-api/internal/application/auth"
	"github.com/lacigarreria/tienda-api/internal/application/cart"
	"github.com/lacigarreria/tienda-api/internal/application/checkout"
	"github.com/lacigarreria/tienda-api/internal/application/orders"
	"github.com/lacigarreria/tienda-api/internal/application/usecase"
	"github.com/lacigarreria/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CartUC      *cart.UseCase
	CheckoutUC  *checkout.UseCase
	OrderUC     *orders.UseCase
	SaleUC      *usecase.SaleUseCase
	UserUC      *usecase.UserUseCase
	ProviderUC  *usecase.ProviderUseCase
	AddressUC   *usecase.AddressUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API con sus restricciones de rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	soloAdmin := RequireRole(entity.RoleAdministrador)
	mostrador := RequireRole(entity.RoleCajero, entity.RoleAdministrador)
	soloCliente := RequireRole(entity.RoleCliente)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo público: sin token se ve solo lo activo; el personal con
	// token ve el catálogo completo
	catalogo := api.Group("/productos", OptionalAuth(deps.JWTSecret))
	productHandler := NewProductHandler(deps.ProductUC)
	catalogo.Get("/", productHandler.List)
	catalogo.Get("/:id", productHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Mutaciones de productos (personal de mostrador)
	productos := protected.Group("/productos")
	productos.Post("/", mostrador, productHandler.Create)
	productos.Put("/:id", mostrador, productHandler.Update)
	productos.Patch("/:id/stock", mostrador, productHandler.UpdateStock)
	productos.Patch("/:id/estado", mostrador, productHandler.SetStatus)

	// Carrito (solo cliente)
	carrito := protected.Group("/carrito", soloCliente)
	cartHandler := NewCartHandler(deps.CartUC)
	carrito.Get("/", cartHandler.Get)
	carrito.Post("/", cartHandler.Add)
	carrito.Put("/:productId", cartHandler.UpdateQuantity)
	carrito.Delete("/:productId", cartHandler.Remove)
	carrito.Delete("/", cartHandler.Clear)

	// Checkout (solo cliente)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	protected.Post("/checkout", soloCliente, checkoutHandler.Submit)

	// Direcciones (solo cliente)
	direcciones := protected.Group("/direcciones", soloCliente)
	addressHandler := NewAddressHandler(deps.AddressUC)
	direcciones.Post("/", addressHandler.Create)
	direcciones.Get("/", addressHandler.List)
	direcciones.Put("/seleccion", addressHandler.Select)
	direcciones.Delete("/:id", addressHandler.Delete)

	// Pedidos: el usecase restringe la visibilidad según el rol
	pedidos := protected.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	pedidos.Get("/", orderHandler.List)
	pedidos.Get("/:id", orderHandler.GetByID)
	pedidos.Get("/:id/pdf", orderHandler.Receipt)
	pedidos.Patch("/:id/asignar", mostrador, orderHandler.AssignCourier)
	pedidos.Patch("/:id/entregar", RequireRole(entity.RoleDomiciliario, entity.RoleCajero, entity.RoleAdministrador), orderHandler.MarkDelivered)
	pedidos.Patch("/:id/cancelar", RequireRole(entity.RoleCliente, entity.RoleCajero, entity.RoleAdministrador), orderHandler.Cancel)
	pedidos.Patch("/:id/estado-registro", soloAdmin, orderHandler.SetRecordStatus)

	// Ventas de mostrador (cajero y admin)
	ventas := protected.Group("/ventas", mostrador)
	saleHandler := NewSaleHandler(deps.SaleUC)
	ventas.Post("/", saleHandler.Create)
	ventas.Get("/", saleHandler.List)
	ventas.Get("/:id", saleHandler.GetByID)
	ventas.Patch("/:id/estado", saleHandler.SetStatus)

	// Usuarios (admin; el mostrador puede listar domiciliarios)
	usuarios := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/domiciliarios", mostrador, userHandler.ListCouriers)
	usuarios.Post("/", soloAdmin, userHandler.Create)
	usuarios.Get("/", soloAdmin, userHandler.List)
	usuarios.Get("/:id", soloAdmin, userHandler.GetByID)
	usuarios.Put("/:id", soloAdmin, userHandler.Update)
	usuarios.Patch("/:id/estado", soloAdmin, userHandler.SetStatus)

	// Perfil propio (cualquier rol autenticado)
	protected.Get("/perfil", userHandler.Profile)
	protected.Put("/perfil", userHandler.UpdateProfile)

	// Proveedores (solo admin)
	proveedores := protected.Group("/proveedores", soloAdmin)
	providerHandler := NewProviderHandler(deps.ProviderUC)
	proveedores.Post("/", providerHandler.Create)
	proveedores.Get("/", providerHandler.List)
	proveedores.Get("/:id", providerHandler.GetByID)
	proveedores.Put("/:id", providerHandler.Update)
	proveedores.Patch("/:id/estado", providerHandler.SetStatus)

	// Dashboard (personal de la tienda)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", mostrador, dashboardHandler.Summary)
}
