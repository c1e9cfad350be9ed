package service

import (
	"context"
	"strings"
	"testing"

	"showcase-backend/internal/models"
)

const cardsBlockHTML = `
<div class="cards">
  <div><div>Headline #1</div><div>A</div></div>
  <div><div>Body Copy #1</div><div>B</div></div>
  <div><div>Image #1</div><div>http://x/1.png</div></div>
</div>`

func newTestDecorateService() *DecorateService {
	return NewDecorateService(nil, nil, nil, nil)
}

func TestDecorate_SingleCardEndToEnd(t *testing.T) {
	s := newTestDecorateService()

	block, err := s.Decorate(context.Background(), "cards", cardsBlockHTML)
	if err != nil {
		t.Fatalf("expected block to decorate, got error: %v", err)
	}
	if got := strings.Count(block.HTML, `class="cards__card"`); got != 1 {
		t.Fatalf("expected exactly one card, got %d in %s", got, block.HTML)
	}
	for _, want := range []string{">A</h3>", ">B</div>", `src="http://x/1.png"`} {
		if !strings.Contains(block.HTML, want) {
			t.Fatalf("missing %q in %s", want, block.HTML)
		}
	}
}

func TestDecorate_Idempotent(t *testing.T) {
	s := newTestDecorateService()

	first, err := s.Decorate(context.Background(), "cards", cardsBlockHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := s.Decorate(context.Background(), "cards", cardsBlockHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.HTML != second.HTML {
		t.Fatalf("same input must decorate byte-identically:\n%s\n%s", first.HTML, second.HTML)
	}
}

func TestDecorate_UnknownTypeIsAnError(t *testing.T) {
	s := newTestDecorateService()
	if _, err := s.Decorate(context.Background(), "marquee", "<div></div>"); err == nil {
		t.Fatalf("expected error for unregistered block type")
	}
}

func TestDecorate_SpecTableUsesBundledDataset(t *testing.T) {
	s := newTestDecorateService()
	block, err := s.Decorate(context.Background(), "spec-table", "<div></div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(block.HTML, `class="spec-table__row"`); got != len(DefaultSpecEntries) {
		t.Fatalf("expected %d bundled spec rows, got %d", len(DefaultSpecEntries), got)
	}
}

func TestDecorateAll_UnknownTypesFailSoft(t *testing.T) {
	s := newTestDecorateService()
	blocks := s.DecorateAll(context.Background(), []models.BlockSource{
		{Type: "cards", HTML: cardsBlockHTML},
		{Type: "marquee", HTML: "<div></div>"},
	})
	if len(blocks) != 2 {
		t.Fatalf("every source must yield an entry, got %d", len(blocks))
	}
	if blocks[0].HTML == "" {
		t.Fatalf("known block must render")
	}
	if blocks[1].HTML != "" {
		t.Fatalf("unknown block must render empty, not abort the page")
	}
}

func TestDecorate_SanitizesAuthoredMarkup(t *testing.T) {
	s := newTestDecorateService()
	block, err := s.Decorate(context.Background(), "hero", `
<div>
  <div><div>Headline</div><div>Safe</div></div>
  <div><div>Body Copy</div><div><p>fine</p><script>alert(1)</script></div></div>
</div>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(block.HTML, "<script>") {
		t.Fatalf("script tags must never survive sanitization: %s", block.HTML)
	}
	if !strings.Contains(block.HTML, "<p>fine</p>") {
		t.Fatalf("benign rich text must pass through, got %s", block.HTML)
	}
}
