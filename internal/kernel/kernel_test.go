package kernel_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/internal/kernel"
	"github.com/josbet/floreria/pkg/cache"
)

func init() {
	cache.UseMemory()
}

// testApp drives the fully wired handler with a cookie jar, like a
// browser session would.
type testApp struct {
	t       *testing.T
	db      *gorm.DB
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}))

	r, err := kernel.Build(db)
	require.NoError(t, err)

	return &testApp{t: t, db: db, handler: r.Handler(), cookies: map[string]*http.Cookie{}}
}

func (a *testApp) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		a.cookies[c.Name] = c
	}
	return rec
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	return a.request(http.MethodGet, path, nil)
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return a.request(http.MethodPost, path, form)
}

// createUser inserts an account directly, bypassing the registration form.
func (a *testApp) createUser(username, email, password string, admin bool) models.User {
	a.t.Helper()

	user := models.User{Username: username, Email: email, IsAdmin: admin}
	require.NoError(a.t, user.SetPassword(password))
	require.NoError(a.t, a.db.Create(&user).Error)
	return user
}

func itoaU(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// freshJar clones the app with an empty cookie jar, like a second
// browser against the same server.
func (a *testApp) freshJar() *testApp {
	return &testApp{t: a.t, db: a.db, handler: a.handler, cookies: map[string]*http.Cookie{}}
}

// login signs the jar in through the real login endpoint.
func (a *testApp) login(identifier, password string) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.postForm("/login", url.Values{
		"nombre":     {identifier},
		"contrasena": {password},
	})
}
