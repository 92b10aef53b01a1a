// Package routes maps the URL table to controllers.
package routes

import (
	"time"

	"github.com/josbet/floreria/app/controllers"
	"github.com/josbet/floreria/app/guards"
	"github.com/josbet/floreria/pkg/middleware"
	"github.com/josbet/floreria/pkg/router"
)

// Controllers bundles everything the route table needs.
type Controllers struct {
	Auth    *controllers.AuthController
	Catalog *controllers.CatalogController
	Order   *controllers.OrderController
	Admin   *controllers.AdminController
}

// Register mounts every application route on r.
func Register(r *router.Router, c Controllers) {
	r.Get("/", "home", c.Catalog.Home)
	r.Get("/menu", "menu", c.Catalog.Menu)

	// Credential endpoints get a tight per-IP budget to slow down
	// brute-force attempts.
	authLimit := middleware.RateLimit(15, time.Minute)
	r.Get("/register", "register.show", c.Auth.ShowRegister)
	r.Post("/register", "register", c.Auth.Register, authLimit)
	r.Get("/login", "login.show", c.Auth.ShowLogin)
	r.Post("/login", "login", c.Auth.Login, authLimit)
	r.Get("/logout", "logout", c.Auth.Logout)

	orders := r.Group("/custom_order", guards.RequireLogin)
	orders.Get("/", "order.form", c.Order.ShowForm)
	orders.Post("/", "order.place", c.Order.Place)

	admin := r.Group("/admin", guards.RequireAdmin)
	admin.Get("/", "admin.dashboard", c.Admin.Dashboard)
	admin.Get("/product/new", "admin.product.new", c.Admin.ShowNewProduct)
	admin.Post("/product/new", "admin.product.create", c.Admin.CreateProduct)
	admin.Post("/product/{id}/delete", "admin.product.delete", c.Admin.DeleteProduct)
}
