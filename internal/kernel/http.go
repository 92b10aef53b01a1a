// Package kernel assembles the HTTP handler: middleware stack, views,
// repositories, services, controllers and the route table.
package kernel

import (
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/josbet/floreria/app/controllers"
	"github.com/josbet/floreria/app/guards"
	"github.com/josbet/floreria/app/repositories"
	"github.com/josbet/floreria/app/routes"
	"github.com/josbet/floreria/app/services"
	"github.com/josbet/floreria/pkg/graphqlapi"
	"github.com/josbet/floreria/pkg/metrics"
	"github.com/josbet/floreria/pkg/middleware"
	"github.com/josbet/floreria/pkg/reqid"
	"github.com/josbet/floreria/pkg/router"
	"github.com/josbet/floreria/pkg/session"
	"github.com/josbet/floreria/pkg/view"
	"github.com/josbet/floreria/resources/static"
	"github.com/josbet/floreria/resources/views"
)

// Build wires the whole application around db and returns the router.
// Tests call this with an in-memory database; the server and the CLI
// call it with the configured one.
func Build(db *gorm.DB) (*router.Router, error) {
	renderer, err := view.New(views.FS)
	if err != nil {
		return nil, fmt.Errorf("kernel: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	authSvc := services.NewAuthService(userRepo)
	orderSvc := services.NewOrderService(orderRepo)

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. Session           — load/create the signed session cookie
	//  6. User resolution   — session user id → models.User in context
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(guards.WithUser(userRepo))

	routes.Register(r, routes.Controllers{
		Auth:    controllers.NewAuthController(renderer, authSvc),
		Catalog: controllers.NewCatalogController(renderer, productRepo),
		Order:   controllers.NewOrderController(renderer, orderSvc),
		Admin:   controllers.NewAdminController(renderer, userRepo, productRepo, orderRepo),
	})

	// Read-only GraphQL view of the catalog. Cross-origin reads are
	// fine here; the HTML pages never need CORS.
	schema, err := graphqlapi.NewSchema(productRepo)
	if err != nil {
		return nil, fmt.Errorf("kernel: graphql schema: %w", err)
	}
	gq := middleware.CORS(middleware.APICORSOptions())(
		middleware.RateLimit(120, time.Minute)(graphqlapi.Handler(schema)),
	)
	r.HandleFunc("/graphql", gq.ServeHTTP)

	// Prometheus endpoint and embedded assets, outside the named table.
	r.HandleFunc("/metrics", metrics.Handler())
	assets := http.StripPrefix("/static/", http.FileServer(http.FS(static.FS)))
	r.HandleFunc("/static/*", assets.ServeHTTP)

	return r, nil
}
