package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"showcase-backend/internal/models"
	"showcase-backend/pkg/cache"
	"showcase-backend/pkg/logger"
)

const productFetchTimeout = 5 * time.Second

// DefaultProduct is the bundled fallback served when the remote product
// endpoint is unreachable. The SKU is replaced with the one derived from the
// page path so the display field stays truthful.
var DefaultProduct = models.Product{
	SKU:           "OLED55DEMO",
	Name:          "OLED TV",
	Price:         "$1,499.99",
	Description:   "Self-lit pixels deliver perfect black and cinematic color.",
	GalleryImages: []string{"/media/products/front.png", "/media/products/side.png", "/media/products/back.png"},
	Breadcrumb:    []string{"Home", "TVs", "OLED"},
}

// ProductService resolves product data for product blocks. Like the spec
// dataset, lookups degrade to a bundled default instead of failing.
type ProductService struct {
	url    string
	client *http.Client
	cache  *cache.Cache
}

func NewProductService(url string, c *cache.Cache) *ProductService {
	return &ProductService{
		url:    url,
		client: &http.Client{Timeout: productFetchTimeout},
		cache:  c,
	}
}

// SKUFromPath extracts the SKU from a product page path: the segment after a
// "products" token when present, otherwise the last segment. The value is
// uppercased for display and lookup.
func SKUFromPath(path string) string {
	segments := strings.FieldsFunc(strings.TrimSpace(path), func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}

	sku := segments[len(segments)-1]
	for i, segment := range segments {
		if strings.EqualFold(segment, "products") && i+1 < len(segments) {
			sku = segments[i+1]
			break
		}
	}
	return strings.ToUpper(sku)
}

// Product returns product data for a page path. Any fetch failure degrades
// to DefaultProduct carrying the path's SKU.
func (s *ProductService) Product(ctx context.Context, path string) models.Product {
	sku := SKUFromPath(path)
	if sku == "" {
		sku = DefaultProduct.SKU
	}

	if s == nil || s.url == "" {
		return s.fallback(sku)
	}

	if s.cache != nil {
		var cached models.Product
		if err := s.cache.GetCachedDataset("product:"+sku, &cached); err == nil && cached.SKU != "" {
			return cached
		}
	}

	product, err := s.fetch(ctx, sku)
	if err != nil {
		logger.Warn("Product fetch failed, serving bundled dataset", map[string]interface{}{
			"sku":   sku,
			"error": err.Error(),
		})
		return s.fallback(sku)
	}

	if s.cache != nil {
		if err := s.cache.CacheDataset("product:"+sku, product); err != nil {
			logger.Debug("Failed to cache product dataset", map[string]interface{}{"error": err.Error()})
		}
	}
	return product
}

func (s *ProductService) fallback(sku string) models.Product {
	product := DefaultProduct
	product.SKU = sku
	return product
}

func (s *ProductService) fetch(ctx context.Context, sku string) (models.Product, error) {
	url := strings.TrimSuffix(s.url, "/") + "/" + sku
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("building product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Product{}, fmt.Errorf("fetching product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Product{}, fmt.Errorf("product endpoint returned status %d", resp.StatusCode)
	}

	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return models.Product{}, fmt.Errorf("decoding product payload: %w", err)
	}
	if product.SKU == "" {
		product.SKU = sku
	}
	return product, nil
}
