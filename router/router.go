package router

import (
	"go-bankist/handler"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the route table. Everything under /api requires a bearer
// token of the open session.
func NewRouter(
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(authHandler.Login))

	api := http.NewServeMux()
	api.Handle("POST /api/logout", handler.ErrorHandlingMiddleware(authHandler.Logout))
	api.Handle("POST /api/account/close", handler.ErrorHandlingMiddleware(authHandler.CloseAccount))
	api.Handle("GET /api/account", handler.ErrorHandlingMiddleware(accountHandler.GetSummary))
	api.Handle("GET /api/movements", handler.ErrorHandlingMiddleware(accountHandler.ListMovements))
	api.Handle("POST /api/movements/sort", handler.ErrorHandlingMiddleware(accountHandler.ToggleSort))
	api.Handle("POST /api/transfers", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransfer))
	api.Handle("POST /api/loans", handler.ErrorHandlingMiddleware(transactionHandler.RequestLoan))

	mux.Handle("/api/", authMiddleware(api))

	return mux
}
