package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"showcase-backend/internal/blocks"
	"showcase-backend/internal/models"
	"showcase-backend/internal/rowdoc"
	"showcase-backend/pkg/cache"
	"showcase-backend/pkg/logger"
	"showcase-backend/pkg/validator"
)

// DecorateService turns authored block sources into decorated markup: parse
// rows, resolve the decorator, render, cache.
type DecorateService struct {
	registry *blocks.Registry
	cache    *cache.Cache
	specs    *SpecService
	products *ProductService
}

func NewDecorateService(registry *blocks.Registry, c *cache.Cache, specs *SpecService, products *ProductService) *DecorateService {
	if registry == nil {
		registry = blocks.DefaultRegistry()
	}
	return &DecorateService{
		registry: registry,
		cache:    c,
		specs:    specs,
		products: products,
	}
}

// BlockTypes lists the registered block types.
func (s *DecorateService) BlockTypes() []string {
	return s.registry.Types()
}

// Decorate renders one authored block. Unknown block types are the only
// error; everything inside a decorator fails soft.
func (s *DecorateService) Decorate(ctx context.Context, blockType, rawHTML string) (*models.DecoratedBlock, error) {
	blockType = strings.TrimSpace(strings.ToLower(blockType))
	decorator, ok := s.registry.Get(blockType)
	if !ok {
		return nil, fmt.Errorf("unknown block type %q", blockType)
	}

	hash := contentHash(rawHTML)
	if s.cache != nil {
		var cached models.DecoratedBlock
		if err := s.cache.GetCachedRender(blockType, hash, &cached); err == nil && cached.Type != "" {
			return &cached, nil
		}
	}

	rows, err := rowdoc.ParseBlockString(rawHTML)
	if err != nil {
		// Unparseable markup degrades to an empty row set; the decorator
		// then renders its defaults or nothing.
		logger.Warn("Block source did not parse, decorating empty rows", map[string]interface{}{
			"type":  blockType,
			"error": err.Error(),
		})
		rows = nil
	}

	html, hooks := decorator(s.renderContext(ctx), blockType, rows)
	decorated := &models.DecoratedBlock{
		Type:  blockType,
		HTML:  html,
		Hooks: hooks,
	}

	if s.cache != nil {
		if err := s.cache.CacheRender(blockType, hash, decorated); err != nil {
			logger.Debug("Failed to cache render", map[string]interface{}{"error": err.Error()})
		}
	}
	return decorated, nil
}

// DecorateAll renders a page's block list in order. Blocks that fail resolve
// render as empty entries rather than aborting the page.
func (s *DecorateService) DecorateAll(ctx context.Context, sources []models.BlockSource) []models.DecoratedBlock {
	decorated := make([]models.DecoratedBlock, 0, len(sources))
	for _, source := range sources {
		block, err := s.Decorate(ctx, source.Type, source.HTML)
		if err != nil {
			logger.Warn("Skipping unknown block type", map[string]interface{}{"type": source.Type})
			decorated = append(decorated, models.DecoratedBlock{Type: source.Type})
			continue
		}
		decorated = append(decorated, *block)
	}
	return decorated
}

func (s *DecorateService) renderContext(ctx context.Context) blocks.RenderContext {
	return &renderContext{ctx: ctx, specs: s.specs, products: s.products}
}

// renderContext adapts the service layer to the decorator contract. Dataset
// accessors never fail; the services behind them own the fallbacks.
type renderContext struct {
	ctx      context.Context
	specs    *SpecService
	products *ProductService
}

func (r *renderContext) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

func (r *renderContext) Specs() []models.SpecEntry {
	if r.specs == nil {
		return DefaultSpecEntries
	}
	return r.specs.Entries(r.ctx)
}

func (r *renderContext) Product(path string) models.Product {
	if r.products == nil {
		product := DefaultProduct
		if sku := SKUFromPath(path); sku != "" {
			product.SKU = sku
		}
		return product
	}
	return r.products.Product(r.ctx, path)
}

func contentHash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
