package blocks

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"showcase-backend/internal/models"
	"showcase-backend/internal/rowdoc"
)

// RenderContext exposes the minimal capabilities required by block decorators.
type RenderContext interface {
	// SanitizeHTML cleans potentially unsafe authored markup before it is
	// allowed into rendered output.
	SanitizeHTML(input string) string
	// Specs returns the specification dataset for spec-table blocks. It
	// never fails; a fallback dataset stands in for unreachable sources.
	Specs() []models.SpecEntry
	// Product resolves product data for the given page path. It never
	// fails; a fallback product stands in for unreachable sources.
	Product(path string) models.Product
}

// Decorator renders one authored block's rows into final markup plus the
// names of the behavior hooks the client runtime should attach.
type Decorator func(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string)

// Registry stores the mapping between block types and their decorators.
type Registry struct {
	mu         sync.RWMutex
	decorators map[string]Decorator
}

// NewRegistry creates an empty block decorator registry.
func NewRegistry() *Registry {
	return &Registry{decorators: make(map[string]Decorator)}
}

// Register associates a decorator with a normalised block type. It returns an
// error when the input is invalid.
func (r *Registry) Register(blockType string, decorator Decorator) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}

	blockType = strings.TrimSpace(strings.ToLower(blockType))
	if blockType == "" {
		return fmt.Errorf("block type is empty")
	}
	if decorator == nil {
		return fmt.Errorf("decorator is nil for type %s", blockType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.decorators == nil {
		r.decorators = make(map[string]Decorator)
	}
	r.decorators[blockType] = decorator
	return nil
}

// MustRegister registers the decorator and panics if registration fails.
func (r *Registry) MustRegister(blockType string, decorator Decorator) {
	if err := r.Register(blockType, decorator); err != nil {
		panic(err)
	}
}

// Get retrieves a decorator for the provided block type if it exists.
func (r *Registry) Get(blockType string) (Decorator, bool) {
	if r == nil {
		return nil, false
	}

	blockType = strings.TrimSpace(strings.ToLower(blockType))
	if blockType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	decorator, ok := r.decorators[blockType]
	return decorator, ok
}

// Types returns the registered block types in sorted order.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.decorators))
	for t := range r.decorators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Clone creates a copy of the registry with the same decorator mappings.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, decorator := range r.decorators {
		cloned.decorators[key] = decorator
	}
	return cloned
}
