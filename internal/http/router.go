package httpapi

import (
	"expvar"
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/products/create-product", app.createProductHandler)
	mux.HandleFunc("GET /api/products", app.listProductsHandler)
	mux.HandleFunc("GET /api/products/{id}", app.getProductHandler)
	mux.HandleFunc("PUT /api/products/{id}", app.updateProductHandler)
	mux.HandleFunc("DELETE /api/products/{id}", app.deleteProductHandler)
	mux.HandleFunc("POST /api/orders", app.createOrderHandler)
	mux.HandleFunc("GET /api/orders/revenue", app.revenueHandler)
	mux.HandleFunc("GET /{$}", app.livenessHandler)
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.Handle("GET /debug/vars", expvar.Handler())
	mux.HandleFunc("GET /openapi.yaml", app.openapiHandler)
	mux.HandleFunc("GET /docs", app.docsHandler)
	return WithRequestID(WithCORS(WithLogging(mux)))
}
