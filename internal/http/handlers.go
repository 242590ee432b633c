package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fairyhunter13/bike-store-service/internal/config"
	httpopenapi "github.com/fairyhunter13/bike-store-service/internal/http/openapi"
	"github.com/fairyhunter13/bike-store-service/internal/model"
	"github.com/fairyhunter13/bike-store-service/internal/obs"
	"github.com/fairyhunter13/bike-store-service/internal/service"
	"github.com/fairyhunter13/bike-store-service/internal/store"
	"github.com/fairyhunter13/bike-store-service/internal/validate"
)

type App struct {
	Cfg      config.Config
	Products *service.ProductService
	Orders   *service.OrderService
}

func NewApp(cfg config.Config, products *service.ProductService, orders *service.OrderService) *App {
	return &App{Cfg: cfg, Products: products, Orders: orders}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

// writeServiceError translates workflow and store errors into the envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *validate.Error
	if errors.As(err, &ve) {
		WriteJSONError(w, http.StatusBadRequest, "Validation failed", ve.Fields)
		return
	}
	var ise *store.InsufficientStockError
	if errors.As(err, &ise) {
		msg := fmt.Sprintf("Insufficient stock: only %d items available", ise.Available)
		WriteJSONError(w, http.StatusBadRequest, msg, "Inventory Error")
		return
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Product not found", err.Error())
	case errors.Is(err, store.ErrProductGone):
		WriteJSONError(w, http.StatusBadRequest, "Product is no longer available", "Inventory Error")
	case errors.Is(err, store.ErrDuplicateName):
		WriteJSONError(w, http.StatusBadRequest, "Product name already exists", err.Error())
	default:
		obs.Logger.Error("request_failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

func (a *App) createProductHandler(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if !decodeJSON(w, r, &p) {
		return
	}
	created, err := a.Products.Create(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, "Bike created successfully", created)
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := a.Products.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, "Bikes retrieved successfully", products)
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := a.Products.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, "Bike retrieved successfully", p)
}

func (a *App) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	var u model.ProductUpdate
	if !decodeJSON(w, r, &u) {
		return
	}
	p, err := a.Products.Update(r.Context(), r.PathValue("id"), u)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, "Bike updated successfully", p)
}

func (a *App) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.Products.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, "Bike deleted successfully", struct{}{})
}

func (a *App) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var o model.Order
	if !decodeJSON(w, r, &o) {
		return
	}
	created, err := a.Orders.Place(r.Context(), o)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, "Order created successfully", created)
}

func (a *App) revenueHandler(w http.ResponseWriter, r *http.Request) {
	total, err := a.Orders.TotalRevenue(r.Context())
	if err != nil {
		obs.Logger.Error("revenue_failed", "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve total revenue", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, "Revenue calculated successfully", map[string]float64{"totalRevenue": total})
}

func (a *App) livenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("App is running!"))
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
