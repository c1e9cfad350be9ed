package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSKUFromPath(t *testing.T) {
	cases := map[string]string{
		"/products/oled55c4":              "OLED55C4",
		"/products/oled55c4/":             "OLED55C4",
		"/us/tvs/products/oled55c4/specs": "OLED55C4",
		"/us/tvs/oled55c4":                "OLED55C4",
		"oled55c4":                        "OLED55C4",
		"":                                "",
		"/":                               "",
	}
	for path, want := range cases {
		if got := SKUFromPath(path); got != want {
			t.Fatalf("SKUFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestProductService_FallbackCarriesPathSKU(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	product := NewProductService(srv.URL, nil).Product(context.Background(), "/products/xyz123")
	if product.SKU != "XYZ123" {
		t.Fatalf("fallback product must carry the path SKU, got %q", product.SKU)
	}
	if product.Name != DefaultProduct.Name || len(product.GalleryImages) != len(DefaultProduct.GalleryImages) {
		t.Fatalf("fallback must serve the bundled product data, got %+v", product)
	}
}

func TestProductService_FetchesBySKU(t *testing.T) {
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Write([]byte(`{"sku":"OLED55C4","name":"OLED TV","price":"$999","galleryImages":["/a.png"],"breadcrumb":["Home"]}`))
	}))
	defer srv.Close()

	product := NewProductService(srv.URL, nil).Product(context.Background(), "/products/oled55c4")
	if requested != "/OLED55C4" {
		t.Fatalf("lookup must use the uppercased SKU, requested %q", requested)
	}
	if product.Price != "$999" || len(product.Breadcrumb) != 1 {
		t.Fatalf("unexpected product payload: %+v", product)
	}
}

func TestProductService_NilServiceStillServes(t *testing.T) {
	var s *ProductService
	product := s.Product(context.Background(), "/products/abc")
	if product.SKU != "ABC" {
		t.Fatalf("nil service must still degrade to the bundled product, got %+v", product)
	}
}
