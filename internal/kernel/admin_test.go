package kernel_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbet/floreria/app/models"
)

func newAdminApp(t *testing.T) *testApp {
	t.Helper()
	app := newTestApp(t)
	app.createUser("admin", "admin@example.com", "adminpass", true)
	app.login("admin", "adminpass")
	return app
}

func TestCreateProductWithPrice(t *testing.T) {
	app := newAdminApp(t)

	rec := app.postForm("/admin/product/new", url.Values{
		"nombre":      {"Orquídeas"},
		"tipo":        {"individual"},
		"precio":      {"24.50"},
		"descripcion": {"Orquídea en maceta."},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	var product models.Product
	require.NoError(t, app.db.Where("name = ?", "Orquídeas").First(&product).Error)
	require.NotNil(t, product.Price)
	assert.Equal(t, 24.50, *product.Price)
	assert.Equal(t, "individual", product.Category)
}

func TestCreateProductWithoutPriceStoresNoPrice(t *testing.T) {
	app := newAdminApp(t)

	rec := app.postForm("/admin/product/new", url.Values{
		"nombre": {"Arreglo sorpresa"},
		"precio": {""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var product models.Product
	require.NoError(t, app.db.Where("name = ?", "Arreglo sorpresa").First(&product).Error)
	assert.Nil(t, product.Price, "empty price means not yet priced, not zero")
}

func TestCreateProductZeroPriceIsAPrice(t *testing.T) {
	app := newAdminApp(t)

	app.postForm("/admin/product/new", url.Values{
		"nombre": {"Muestra gratis"},
		"precio": {"0"},
	})

	var product models.Product
	require.NoError(t, app.db.Where("name = ?", "Muestra gratis").First(&product).Error)
	require.NotNil(t, product.Price)
	assert.Zero(t, *product.Price)
}

func TestCreateProductRejectsNonNumericPrice(t *testing.T) {
	app := newAdminApp(t)

	rec := app.postForm("/admin/product/new", url.Values{
		"nombre": {"Ramo raro"},
		"precio": {"gratis"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/product/new", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, app.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count, "nothing should be stored on validation failure")
}

func TestDeleteProduct(t *testing.T) {
	app := newAdminApp(t)

	product := models.Product{Name: "Efímero"}
	require.NoError(t, app.db.Create(&product).Error)

	rec := app.request(http.MethodPost, "/admin/product/"+itoaU(product.ID)+"/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	var count int64
	require.NoError(t, app.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteUnknownProductIs404(t *testing.T) {
	app := newAdminApp(t)

	rec := app.request(http.MethodPost, "/admin/product/9999/delete", url.Values{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardShowsOrdersAndUsers(t *testing.T) {
	app := newAdminApp(t)
	ana := app.createUser("ana", "ana@x.com", "pw123", false)

	anaID := ana.ID
	order := models.Order{
		Reference:    "ref-1",
		UserID:       &anaID,
		CustomerName: "ana",
		Phone:        "555 123",
	}
	require.NoError(t, order.SetDetail(models.OrderDetail{FlowerType: "rosas", Quantity: "5"}))
	require.NoError(t, app.db.Create(&order).Error)

	body := app.get("/admin").Body.String()
	assert.Contains(t, body, "ref-1")
	assert.Contains(t, body, "ana@x.com")
	assert.Contains(t, body, "rosas")
}
