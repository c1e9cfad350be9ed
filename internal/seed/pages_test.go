package seed

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"showcase-backend/internal/models"
	"showcase-backend/internal/service"
)

func embeddedDefinitions(t *testing.T) []models.CreatePageRequest {
	t.Helper()

	entries, err := fs.ReadDir(defaultPagesFS, "data/pages")
	if err != nil {
		t.Fatalf("failed to read embedded page definitions: %v", err)
	}

	var definitions []models.CreatePageRequest
	for _, entry := range entries {
		data, err := defaultPagesFS.ReadFile("data/pages/" + entry.Name())
		if err != nil {
			t.Fatalf("failed to read %s: %v", entry.Name(), err)
		}
		parsed, err := parsePageDefinitions(data)
		if err != nil {
			t.Fatalf("failed to parse %s: %v", entry.Name(), err)
		}
		definitions = append(definitions, parsed...)
	}

	if len(definitions) == 0 {
		t.Fatalf("expected embedded page definitions")
	}
	return definitions
}

func TestEmbeddedPagesDecorateWithoutDroppedFields(t *testing.T) {
	decorate := service.NewDecorateService(nil, nil, nil, nil)

	for _, definition := range embeddedDefinitions(t) {
		for _, source := range definition.Blocks {
			block, err := decorate.Decorate(context.Background(), source.Type, source.HTML)
			if err != nil {
				t.Fatalf("page %q block %q failed to decorate: %v", definition.Title, source.Type, err)
			}
			if block.HTML == "" {
				t.Fatalf("page %q block %q rendered empty", definition.Title, source.Type)
			}

			switch source.Type {
			case "hero":
				if !strings.Contains(block.HTML, `hero__cta`) {
					t.Fatalf("seeded hero lost its CTA: %s", block.HTML)
				}
			case "spec-table":
				if !strings.Contains(block.HTML, "Specifications") {
					t.Fatalf("seeded spec table lost its title: %s", block.HTML)
				}
			}
		}
	}
}
