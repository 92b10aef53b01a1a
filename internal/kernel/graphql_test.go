package kernel_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbet/floreria/app/models"
)

func (a *testApp) graphql(query string) map[string]interface{} {
	a.t.Helper()

	payload, err := json.Marshal(map[string]string{"query": query})
	require.NoError(a.t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	require.Equal(a.t, http.StatusOK, rec.Code)

	var out map[string]interface{}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGraphQLProducts(t *testing.T) {
	app := newTestApp(t)

	zero := 0.0
	require.NoError(t, app.db.Create(&models.Product{Name: "Rosas Eternas", Category: "ramo", Price: &zero}).Error)
	require.NoError(t, app.db.Create(&models.Product{Name: "Arreglo especial"}).Error)

	out := app.graphql(`{ products { name category price } }`)
	require.Nil(t, out["errors"], "query should not error: %v", out["errors"])

	data := out["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	require.Len(t, products, 2)

	byName := map[string]map[string]interface{}{}
	for _, p := range products {
		m := p.(map[string]interface{})
		byName[m["name"].(string)] = m
	}

	assert.Equal(t, 0.0, byName["Rosas Eternas"]["price"], "zero is a real price")
	assert.Nil(t, byName["Arreglo especial"]["price"], "unpriced product serializes as null")
}

func TestGraphQLProductByID(t *testing.T) {
	app := newTestApp(t)

	product := models.Product{Name: "Girasoles", Category: "ramo"}
	require.NoError(t, app.db.Create(&product).Error)

	out := app.graphql(`{ product(id: "` + itoaU(product.ID) + `") { name } }`)
	data := out["data"].(map[string]interface{})
	got := data["product"].(map[string]interface{})
	assert.Equal(t, "Girasoles", got["name"])
}

func TestGraphQLUnknownProductIsNull(t *testing.T) {
	app := newTestApp(t)

	out := app.graphql(`{ product(id: "9999") { name } }`)
	data := out["data"].(map[string]interface{})
	assert.Nil(t, data["product"])
}

func TestGraphQLRejectsMalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
