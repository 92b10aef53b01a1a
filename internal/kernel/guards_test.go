package kernel_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousCustomOrderRedirectsToLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.get("/custom_order")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = app.get("/login")
	assert.Contains(t, rec.Body.String(), "Debes iniciar sesión para acceder a esa página.")
}

func TestAdminGuardTreatsAnonymousAndNonAdminIdentically(t *testing.T) {
	app := newTestApp(t)
	app.createUser("ana", "ana@x.com", "pw123", false)

	anon := app.freshJar()
	recAnon := anon.get("/admin")

	member := app.freshJar()
	member.login("ana", "pw123")
	recMember := member.get("/admin")

	require.Equal(t, http.StatusSeeOther, recAnon.Code)
	assert.Equal(t, recAnon.Code, recMember.Code)
	assert.Equal(t, "/", recAnon.Header().Get("Location"))
	assert.Equal(t, recAnon.Header().Get("Location"), recMember.Header().Get("Location"))

	// Neither response leaks dashboard markup.
	assert.NotContains(t, recAnon.Body.String(), "Panel de administración")
	assert.NotContains(t, recMember.Body.String(), "Panel de administración")

	assert.Contains(t, anon.get("/").Body.String(), "Acceso denegado. Sólo administradores.")
	assert.Contains(t, member.get("/").Body.String(), "Acceso denegado. Sólo administradores.")
}

func TestAdminCanReachDashboard(t *testing.T) {
	app := newTestApp(t)
	app.createUser("admin", "admin@example.com", "adminpass", true)
	app.login("admin", "adminpass")

	rec := app.get("/admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Panel de administración")
}

func TestGuardCoversEveryAdminRoute(t *testing.T) {
	app := newTestApp(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/admin"},
		{http.MethodGet, "/admin/product/new"},
		{http.MethodPost, "/admin/product/new"},
		{http.MethodPost, "/admin/product/1/delete"},
	} {
		rec := app.request(route.method, route.path, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code, "%s %s must be guarded", route.method, route.path)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	}
}
