package controllers

import (
	"net/http"

	"github.com/josbet/floreria/app/guards"
	"github.com/josbet/floreria/app/services"
	"github.com/josbet/floreria/pkg/logger"
	"github.com/josbet/floreria/pkg/session"
	"github.com/josbet/floreria/pkg/view"
)

// OrderController handles custom arrangement orders. Every route is
// behind guards.RequireLogin.
type OrderController struct {
	views  *view.Renderer
	orders *services.OrderService
}

func NewOrderController(views *view.Renderer, orders *services.OrderService) *OrderController {
	return &OrderController{views: views, orders: orders}
}

// ShowForm renders the custom order form.
func (c *OrderController) ShowForm(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, r, "custom_order.html", nil)
}

// Place processes the custom order form.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashRedirect(w, r, session.LevelDanger, "Solicitud inválida.", "/custom_order")
		return
	}

	user, _ := guards.FromCtx(r)
	_, err := c.orders.Place(user, services.PlaceOrderInput{
		FlowerType:   r.PostFormValue("tipo_flor"),
		Color:        r.PostFormValue("color"),
		Quantity:     r.PostFormValue("cantidad"),
		Message:      r.PostFormValue("mensaje"),
		Extra:        r.PostFormValue("extra"),
		Phone:        r.PostFormValue("telefono"),
		CustomerName: r.PostFormValue("nombre_cliente"),
	})
	if err != nil {
		logger.WithCtx(r.Context()).Error("place order failed", "error", err)
		flashRedirect(w, r, session.LevelDanger, "No se pudo registrar el pedido. Inténtalo de nuevo.", "/custom_order")
		return
	}

	flashRedirect(w, r, session.LevelSuccess, "¡Pedido personalizado recibido! Nos pondremos en contacto contigo.", "/menu")
}
