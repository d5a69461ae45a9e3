// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/beanledger/beanledger/internal/app/features/categories"
	"github.com/beanledger/beanledger/internal/app/features/health"
	"github.com/beanledger/beanledger/internal/app/features/members"
	"github.com/beanledger/beanledger/internal/app/features/products"
	"github.com/beanledger/beanledger/internal/app/features/transactions"
	"github.com/beanledger/beanledger/internal/app/ledger"
	"github.com/beanledger/beanledger/internal/app/system/httpjson"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connection, and schema
// setup have completed. The router carries the JSON recoverer so no
// handler error or panic ever escapes without the API's error shape,
// and a JSON 404 for unmatched routes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	// The ledger is shared by the members (redeem) and transactions
	// (purchase) features so the points rules live in exactly one place.
	ldg := ledger.New(db, appCfg.MinRedeemPoints, logger)

	r := chi.NewRouter()
	r.Use(httpjson.Recoverer(logger))
	r.NotFound(httpjson.NotFoundHandler)
	r.MethodNotAllowed(httpjson.NotFoundHandler)

	// Health check endpoint for load balancers and orchestrators;
	// /status is an alias kept for older deployment tooling.
	healthHandler := health.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", health.Routes(healthHandler))
	r.Mount("/status", health.Routes(healthHandler))

	membersHandler := members.NewHandler(db, ldg, appCfg.MembershipTerm, logger)
	r.Mount("/members", members.Routes(membersHandler))

	productsHandler := products.NewHandler(db, logger)
	r.Mount("/products", products.Routes(productsHandler))

	transactionsHandler := transactions.NewHandler(db, ldg, logger)
	r.Mount("/transactions", transactions.Routes(transactionsHandler))

	categoriesHandler := categories.NewHandler(db, logger)
	r.Mount("/categories", categories.Routes(categoriesHandler))

	return r, nil
}
