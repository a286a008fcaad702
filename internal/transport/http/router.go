package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/cafetec/cafetec-api/internal/handlers"
	"github.com/cafetec/cafetec-api/internal/jwtauth"
)

type Deps struct {
	Menu        *handlers.MenuHandler
	Orders      *handlers.OrderHandler
	Comments    *handlers.CommentHandler
	Auth        *handlers.AuthHandler
	AdminOrders *handlers.AdminOrderHandler
	Products    *handlers.ProductHandler
	Search      *handlers.SearchHandler
	JWTSecret   []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.GET("/menu", d.Menu.GetMenu)
	v1.GET("/menu/search", d.Search.Search)
	v1.GET("/payment-methods/:metodo", d.Menu.GetPaymentMethod)

	v1.POST("/orders", d.Orders.Place)
	v1.POST("/comments", d.Comments.Create)

	v1.POST("/admin/login", d.Auth.Login)

	admin := v1.Group("/admin", jwtauth.Middleware(d.JWTSecret))

	admin.GET("/orders", d.AdminOrders.List)
	// :pedido is the pickup code on lookup/finalize and the numeric id on
	// delete, mirroring how the admin views identify orders.
	admin.GET("/orders/:pedido", d.AdminOrders.Search)
	admin.POST("/orders/:pedido/finalize", d.AdminOrders.Finalize)
	admin.DELETE("/orders/:pedido", d.AdminOrders.Delete)
	admin.GET("/sales", d.AdminOrders.Sales)

	admin.POST("/products", d.Products.Create)
	admin.PATCH("/products/:id", d.Products.Patch)
	admin.DELETE("/products/:id", d.Products.Delete)
}
