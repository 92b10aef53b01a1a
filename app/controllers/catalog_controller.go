package controllers

import (
	"net/http"

	"github.com/josbet/floreria/app/repositories"
	"github.com/josbet/floreria/pkg/logger"
	"github.com/josbet/floreria/pkg/view"
)

// CatalogController serves the public pages.
type CatalogController struct {
	views    *view.Renderer
	products *repositories.ProductRepository
}

func NewCatalogController(views *view.Renderer, products *repositories.ProductRepository) *CatalogController {
	return &CatalogController{views: views, products: products}
}

// Home renders the landing page.
func (c *CatalogController) Home(w http.ResponseWriter, r *http.Request) {
	render(c.views, w, r, "index.html", nil)
}

// Menu renders the catalog, newest products first.
func (c *CatalogController) Menu(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.AllNewestFirst()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products failed", "error", err)
	}
	render(c.views, w, r, "menu.html", view.Data{"Products": products})
}
