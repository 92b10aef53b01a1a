package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/app/repositories"
	"github.com/josbet/floreria/pkg/logger"
	"github.com/josbet/floreria/pkg/response"
	"github.com/josbet/floreria/pkg/session"
	"github.com/josbet/floreria/pkg/storage"
	"github.com/josbet/floreria/pkg/validate"
	"github.com/josbet/floreria/pkg/view"
)

// AdminController serves the dashboard and product management. Every
// route is behind guards.RequireAdmin.
type AdminController struct {
	views    *view.Renderer
	users    *repositories.UserRepository
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
}

func NewAdminController(
	views *view.Renderer,
	users *repositories.UserRepository,
	products *repositories.ProductRepository,
	orders *repositories.OrderRepository,
) *AdminController {
	return &AdminController{views: views, users: users, products: products, orders: orders}
}

// Dashboard lists every product, order and user.
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	products, err := c.products.AllNewestFirst()
	if err != nil {
		log.Error("dashboard: list products failed", "error", err)
	}
	orders, err := c.orders.AllNewestFirst()
	if err != nil {
		log.Error("dashboard: list orders failed", "error", err)
	}
	users, err := c.users.All()
	if err != nil {
		log.Error("dashboard: list users failed", "error", err)
	}

	render(c.views, w, r, "admin_dashboard.html", view.Data{
		"Products": products,
		"Orders":   orders,
		"Users":    users,
	})
}

// ShowNewProduct renders the product form.
func (c *AdminController) ShowNewProduct(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, r, "admin_new_product.html", nil)
}

type productInput struct {
	Name  string `form:"nombre" validate:"required,max=120"`
	Price string `form:"precio" validate:"nullable,numeric,min=0"`
}

// CreateProduct processes the product form. An empty price field stores
// no price at all (distinct from a price of zero), and an uploaded image
// takes precedence over the URL field.
func (c *AdminController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		flashRedirect(w, r, session.LevelDanger, "Solicitud inválida.", "/admin/product/new")
		return
	}

	input := productInput{
		Name:  strings.TrimSpace(r.PostFormValue("nombre")),
		Price: strings.TrimSpace(r.PostFormValue("precio")),
	}
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		flashRedirect(w, r, session.LevelDanger, validate.First(errs), "/admin/product/new")
		return
	}

	var price *float64
	if input.Price != "" {
		v, _ := strconv.ParseFloat(input.Price, 64)
		price = &v
	}

	image := strings.TrimSpace(r.PostFormValue("imagen"))
	if uploaded, ok := c.storeImage(r); ok {
		image = uploaded
	}

	product := models.Product{
		Name:        input.Name,
		Category:    strings.TrimSpace(r.PostFormValue("tipo")),
		Price:       price,
		Description: r.PostFormValue("descripcion"),
		Image:       image,
	}
	if err := c.products.Create(&product); err != nil {
		logger.WithCtx(r.Context()).Error("create product failed", "error", err)
		flashRedirect(w, r, session.LevelDanger, "No se pudo guardar el producto.", "/admin/product/new")
		return
	}

	flashRedirect(w, r, session.LevelSuccess, "Producto agregado.", "/admin")
}

// storeImage saves an uploaded product image on the configured disk and
// returns its public URL.
func (c *AdminController) storeImage(r *http.Request) (string, bool) {
	file, header, err := r.FormFile("imagen_file")
	if err != nil {
		return "", false
	}
	defer file.Close()

	path := "products/" + uuid.NewString() + filepath.Ext(header.Filename)
	if err := storage.PutStream(path, file); err != nil {
		logger.WithCtx(r.Context()).Error("store product image failed", "error", err)
		return "", false
	}

	return storage.URL(path), true
}

// DeleteProduct removes a product. Unknown ids get a 404, matching a
// direct request for a product that never existed.
func (c *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.NotFound(w)
		return
	}

	if err := c.products.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("delete product failed", "error", err, "product_id", id)
		flashRedirect(w, r, session.LevelDanger, "No se pudo eliminar el producto.", "/admin")
		return
	}

	flashRedirect(w, r, session.LevelInfo, "Producto eliminado.", "/admin")
}
