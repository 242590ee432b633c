package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fairyhunter13/bike-store-service/internal/config"
	httpapi "github.com/fairyhunter13/bike-store-service/internal/http"
	"github.com/fairyhunter13/bike-store-service/internal/obs"
	"github.com/fairyhunter13/bike-store-service/internal/service"
	"github.com/fairyhunter13/bike-store-service/internal/store"
)

func TestMain(m *testing.M) {
	obs.InitLogger()
	os.Exit(m.Run())
}

func startServer() *httptest.Server {
	products := store.NewMemoryProductRepository()
	orders := store.NewMemoryOrderRepository()
	app := httpapi.NewApp(config.Load(),
		service.NewProductService(products),
		service.NewOrderService(products, orders))
	return httptest.NewServer(httpapi.NewRouter(app))
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	var env map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp, env
}

func TestEndToEndOrderFlow(t *testing.T) {
	srv := startServer()
	defer srv.Close()

	resp, env := postJSON(t, srv.URL+"/api/products/create-product",
		`{"name":"Volt Cruiser","brand":"Ampere","price":1999.99,"category":"Electric","description":"Commuter e-bike","quantity":2}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	data := env["data"].(map[string]any)
	id := data["_id"].(string)

	orderBody := fmt.Sprintf(`{"email":"rider@example.com","product":%q,"quantity":2,"totalPrice":3999.98}`, id)
	resp, _ = postJSON(t, srv.URL+"/api/orders", orderBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("order: expected 201, got %d", resp.StatusCode)
	}

	resp, env = postJSON(t, srv.URL+"/api/orders", orderBody)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second order: expected 400, got %d", resp.StatusCode)
	}
	if env["success"].(bool) {
		t.Fatalf("expected failed envelope")
	}

	getResp, err := http.Get(srv.URL + "/api/products/" + id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer getResp.Body.Close()
	var getEnv map[string]any
	if err := json.NewDecoder(getResp.Body).Decode(&getEnv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	product := getEnv["data"].(map[string]any)
	if product["quantity"].(float64) != 0 || product["inStock"].(bool) {
		t.Fatalf("expected drained product, got %+v", product)
	}

	revResp, err := http.Get(srv.URL + "/api/orders/revenue")
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	defer revResp.Body.Close()
	var revEnv map[string]any
	if err := json.NewDecoder(revResp.Body).Decode(&revEnv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	total := revEnv["data"].(map[string]any)["totalRevenue"].(float64)
	if total != 3999.98 {
		t.Fatalf("expected revenue 3999.98, got %v", total)
	}
}
