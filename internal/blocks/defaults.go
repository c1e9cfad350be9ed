package blocks

// DefaultRegistry returns a registry pre-populated with the built-in block
// decorators.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}

// RegisterDefaults adds the built-in block decorators to the provided
// registry.
func RegisterDefaults(reg *Registry) {
	if reg == nil {
		return
	}

	RegisterHero(reg)
	RegisterCards(reg)
	RegisterCarousel(reg)
	RegisterSpecTable(reg)
	RegisterProduct(reg)
	RegisterHeader(reg)
	RegisterFooter(reg)
}
