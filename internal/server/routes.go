package server

import (
	"github.com/labstack/echo/v4"

	"tienda/internal/config"
	"tienda/internal/handler"
	"tienda/internal/middleware"
)

// Handlers bundles everything RegisterRoutes mounts.
type Handlers struct {
	Products     *handler.ProductHandler
	Cart         *handler.CartHandler
	Checkout     *handler.CheckoutHandler
	Orders       *handler.OrderHandler
	Auth         *handler.AuthHandler
	Chatbot      *handler.ChatbotHandler
	AdminOrders  *handler.AdminOrderHandler
	AdminCatalog *handler.AdminCatalogHandler
	Dashboard    *handler.DashboardHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	// Public catalog, no auth at all. The chatbot lives outside /api to
	// keep its historical path.
	public := e.Group("/api/public")
	h.Products.RegisterRoutes(public)
	h.Chatbot.RegisterRoutes(e.Group(""))

	// Auth endpoints. Login needs the guest cookie to discard that cart.
	authGroup := e.Group("/api/auth")
	h.Auth.RegisterPublicRoutes(authGroup)

	authPrivate := e.Group("/api/auth", middleware.AuthJWT(cfg))
	h.Auth.RegisterTokenRoutes(authPrivate)

	// Cart and checkout serve guests and customers alike; the identity
	// middleware decides whose cart it is.
	shop := e.Group("/api", middleware.AuthJWTOptional(cfg), middleware.CartIdentity())
	h.Cart.RegisterRoutes(shop)
	h.Checkout.RegisterRoutes(shop)

	// Order history and profile require a customer.
	private := e.Group("/api", middleware.AuthJWT(cfg))
	h.Orders.RegisterRoutes(private)
	h.Auth.RegisterPrivateRoutes(private)

	// Admin surface requires staff.
	admin := e.Group("/api/admin", middleware.AuthJWT(cfg), middleware.StaffGuard())
	h.AdminOrders.RegisterRoutes(admin)
	h.AdminCatalog.RegisterRoutes(admin)
	h.Dashboard.RegisterRoutes(admin)
}
