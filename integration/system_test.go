//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"Shoplinkado/internal/admin"
	"Shoplinkado/internal/catalog"
	"Shoplinkado/internal/httpapi"
)

const adminPassword = "senha-e2e"

func TestStorefront_E2E(t *testing.T) {
	store := catalog.NewMemStore()
	if err := catalog.Seed(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := admin.NewService(admin.NewMemStore(), admin.NewTokenMaker("e2e-secret"), adminPassword)

	ts := httptest.NewServer(httpapi.NewHandler(
		&catalog.Server{Store: store, Log: zap.NewNop()},
		&admin.Server{Svc: svc, Log: zap.NewNop()},
		httpapi.Deps{Log: zap.NewNop(), Service: "storefront"},
	))
	defer ts.Close()

	// Visitor browses the seeded storefront.
	var cats []map[string]any
	doJSON(t, http.MethodGet, ts.URL+"/api/categories", nil, "", &cats, 200)
	if len(cats) == 0 {
		t.Fatal("expected seeded categories")
	}

	var tech map[string]any
	doJSON(t, http.MethodGet, ts.URL+"/api/categories/tecnologia", nil, "", &tech, 200)
	catID, _ := tech["id"].(string)
	if catID == "" {
		t.Fatalf("category id missing: %#v", tech)
	}

	// Anonymous creation is refused.
	doJSON(t, http.MethodPost, ts.URL+"/api/products", map[string]any{"name": "x"}, "", nil, 401)

	// Admin logs in and publishes two products.
	var loginResp struct {
		Token string `json:"token"`
	}
	doJSON(t, http.MethodPost, ts.URL+"/api/admin/login", map[string]any{"password": adminPassword}, "", &loginResp, 200)
	if loginResp.Token == "" {
		t.Fatal("empty admin token")
	}

	for _, p := range []map[string]any{
		{"name": "Fone Bluetooth", "price": "R$ 149,90", "sold": "1.2k vendidos", "rating": 4.7},
		{"name": "Cabo USB-C", "price": "R$ 19,90", "sold": "800 vendidos", "rating": 4.9},
	} {
		p["image"] = "https://img.example/p.jpg"
		p["categoryId"] = catID
		p["shopeeUrl"] = "https://shopee.example/p"
		doJSON(t, http.MethodPost, ts.URL+"/api/products", p, loginResp.Token, nil, 201)
	}

	// The public listing reflects the new products, cheapest first.
	var products []map[string]any
	doJSON(t, http.MethodGet, ts.URL+"/api/categories/tecnologia/products?sort=lowest-price", nil, "", &products, 200)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if name, _ := products[0]["name"].(string); name != "Cabo USB-C" {
		t.Fatalf("cheapest first, got %q", name)
	}

	// Session ends; the admin surface closes again.
	doJSON(t, http.MethodPost, ts.URL+"/api/admin/logout", nil, loginResp.Token, nil, 200)
	doJSON(t, http.MethodGet, ts.URL+"/api/products", nil, loginResp.Token, nil, 401)
}

func doJSON(t *testing.T, method, url string, body any, token string, out any, want int) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != want {
		t.Fatalf("%s %s: status %d, want %d (body %s)", method, url, resp.StatusCode, want, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
	}
}
