package blocks

import (
	"strings"
	"testing"

	"showcase-backend/internal/models"
	"showcase-backend/internal/rowdoc"
)

type stubContext struct {
	specs   []models.SpecEntry
	product models.Product
}

func (s stubContext) SanitizeHTML(input string) string { return input }
func (s stubContext) Specs() []models.SpecEntry        { return s.specs }
func (s stubContext) Product(path string) models.Product {
	return s.product
}

func TestResolveStyle_EmptyRowsYieldDefaults(t *testing.T) {
	parsed := rowdoc.Spec{Synonyms: StyleSynonyms()}.Parse(nil)
	if got := ResolveStyle(parsed); got != DefaultStyle() {
		t.Fatalf("empty row set must resolve to the documented defaults, got %+v", got)
	}
}

func TestResolveStyle_UnrecognizedValuesKeepDefaults(t *testing.T) {
	parsed := rowdoc.Spec{Synonyms: StyleSynonyms()}.Parse([]rowdoc.Row{
		{Label: "Alignment", Text: "diagonal"},
		{Label: "Background", Text: "plaid"},
		{Label: "Margin", Text: "huge"},
	})
	if got := ResolveStyle(parsed); got != DefaultStyle() {
		t.Fatalf("unknown values must fall back per axis, got %+v", got)
	}
}

func TestResolveStyle_RecognizedValues(t *testing.T) {
	parsed := rowdoc.Spec{Synonyms: StyleSynonyms()}.Parse([]rowdoc.Row{
		{Label: "Select Block Type", Text: "Splash"},
		{Label: "Alignment", Text: "Center"},
		{Label: "Background", Text: "Dark"},
		{Label: "Border", Text: "Yes"},
		{Label: "Headline Size", Text: "XL Bold"},
	})
	got := ResolveStyle(parsed)
	if got.Variant != "splash" || got.Alignment != "center" || got.Background != "dark" ||
		!got.Border || got.Heading != "xl-bold" {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestStyleClasses_OrderStable(t *testing.T) {
	s := DefaultStyle()
	first := s.ClassAttr("hero")
	second := s.ClassAttr("hero")
	if first != second {
		t.Fatalf("class order must be stable: %q vs %q", first, second)
	}
	want := "hero hero--default hero--align-left hero--bg-none hero--margin-medium hero--heading-m-regular"
	if first != want {
		t.Fatalf("class list = %q, want %q", first, want)
	}
}

func TestDecorateCards_SingleCardEndToEnd(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Headline #1", Text: "A"},
		{Label: "Body Copy #1", Text: "B", HTML: "B"},
		{Label: "Image #1", Text: "http://x/1.png"},
	}
	html, hooks := decorateCards(stubContext{}, "cards", rows)

	if got := strings.Count(html, `class="cards__card"`); got != 1 {
		t.Fatalf("expected exactly one populated card, got %d in %s", got, html)
	}
	if !strings.Contains(html, ">A</h3>") {
		t.Fatalf("missing headline A in %s", html)
	}
	if !strings.Contains(html, ">B</div>") {
		t.Fatalf("missing body B in %s", html)
	}
	if !strings.Contains(html, `src="http://x/1.png"`) {
		t.Fatalf("missing image URL in %s", html)
	}
	if !strings.Contains(html, "cards__grid--cols-1") {
		t.Fatalf("grid class must follow populated card count, got %s", html)
	}
	if len(hooks) != 0 {
		t.Fatalf("image-only cards need no hooks, got %v", hooks)
	}
}

func TestDecorateCards_NumberedImagesSpellingFillsCard(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Headline #1", Text: "A"},
		{Label: "Images 2", Text: "http://x/2.png"},
	}
	html, _ := decorateCards(stubContext{}, "cards", rows)

	if got := strings.Count(html, `class="cards__card"`); got != 2 {
		t.Fatalf("expected two populated cards, got %d in %s", got, html)
	}
	if strings.Contains(html, `<div class="cards__card"></div>`) {
		t.Fatalf("empty card container rendered: %s", html)
	}
	if !strings.Contains(html, `src="http://x/2.png"`) {
		t.Fatalf("second card must carry the numbered image, got %s", html)
	}
	if !strings.Contains(html, "cards__grid--cols-2") {
		t.Fatalf("grid class must follow populated card count, got %s", html)
	}
}

func TestDecorateCards_Idempotent(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Headline #1", Text: "One"},
		{Label: "Headline #2", Text: "Two"},
		{Label: "Image #2", HTML: `<a href="http://x/p"><img src="http://x/t.png"></a>`},
	}
	first, _ := decorateCards(stubContext{}, "cards", rows)
	second, _ := decorateCards(stubContext{}, "cards", rows)
	if first != second {
		t.Fatalf("decorating identical rows twice must be byte-identical:\n%s\n%s", first, second)
	}
	if !strings.Contains(first, `src="http://x/p"`) {
		t.Fatalf("anchor-wrapped image must use the link target, got %s", first)
	}
}

func TestDecorateHero_OmitsEmptyOptionals(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Headline", Text: "Launch"},
		{Label: "Image", Text: "/media/launch.png"},
	}
	html, hooks := decorateHero(stubContext{}, "hero", rows)
	for _, forbidden := range []string{"__eyebrow", "__cta", "__disclaimer", "__body"} {
		if strings.Contains(html, forbidden) {
			t.Fatalf("empty optional %s must not render, got %s", forbidden, html)
		}
	}
	if !strings.Contains(html, "hero__image") {
		t.Fatalf("expected hero image, got %s", html)
	}
	if len(hooks) != 0 {
		t.Fatalf("hero without video needs no hooks, got %v", hooks)
	}
}

func TestDecorateHero_VideoGetsMediaToggle(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Headline", Text: "Launch"},
		{Label: "Image", Text: "/media/poster.png"},
		{Label: "Video", Text: "/media/clip.mp4"},
	}
	html, hooks := decorateHero(stubContext{}, "hero", rows)
	if !strings.Contains(html, `data-media-src="/media/clip.mp4"`) {
		t.Fatalf("expected media source attribute, got %s", html)
	}
	if !strings.Contains(html, "hero__poster") || !strings.Contains(html, "hero__play") {
		t.Fatalf("expected poster and play control, got %s", html)
	}
	if len(hooks) != 1 || hooks[0] != "media-toggle" {
		t.Fatalf("expected media-toggle hook, got %v", hooks)
	}
}

func TestDecorateHero_MissingHeadlineRendersNothing(t *testing.T) {
	html, hooks := decorateHero(stubContext{}, "hero", []rowdoc.Row{
		{Label: "Image", Text: "/media/launch.png"},
	})
	if html != "" || hooks != nil {
		t.Fatalf("partially authored hero must fail soft, got %q %v", html, hooks)
	}
}

func TestDecorateCarousel_SlidesAndIndicators(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Images", Text: "http://x/1.png, http://x/2.png, http://x/3.png"},
		{Label: "Autoplay", Text: "Yes"},
		{Label: "Delay", Text: "4"},
	}
	html, hooks := decorateCarousel(stubContext{}, "carousel", rows)
	if got := strings.Count(html, "data-slide-index"); got != 3 {
		t.Fatalf("expected 3 slides, got %d", got)
	}
	if got := strings.Count(html, "data-slide-target"); got != 3 {
		t.Fatalf("expected 3 indicator dots, got %d", got)
	}
	if !strings.Contains(html, `data-slide-count="3"`) || !strings.Contains(html, `data-swipe-threshold="50"`) {
		t.Fatalf("missing carousel config attributes in %s", html)
	}
	if !strings.Contains(html, `data-autoplay-delay="4000"`) {
		t.Fatalf("authored delay must override the default, got %s", html)
	}
	if strings.Count(html, "carousel__slide--active") != 1 || !strings.Contains(html, `class="carousel__slide carousel__slide--active" data-slide-index="0"`) {
		t.Fatalf("exactly slide 0 must start active, got %s", html)
	}
	if len(hooks) != 1 || hooks[0] != "carousel" {
		t.Fatalf("expected carousel hook, got %v", hooks)
	}
}

func TestDecorateSpecTable_RendersDataset(t *testing.T) {
	ctx := stubContext{specs: []models.SpecEntry{
		{LeftLabel: "Width", LeftValue: "120cm", RightLabel: "Height", RightValue: "80cm"},
		{LeftLabel: "Weight", LeftValue: "40kg"},
	}}
	html, _ := decorateSpecTable(ctx, "specs", []rowdoc.Row{{Label: "Title", Text: "Dimensions"}})
	if got := strings.Count(html, `class="specs__row"`); got != 2 {
		t.Fatalf("expected 2 table rows, got %d", got)
	}
	if !strings.Contains(html, ">Width</th>") || !strings.Contains(html, ">120cm</td>") {
		t.Fatalf("missing left column in %s", html)
	}
	if strings.Count(html, "specs__label") != 3 {
		t.Fatalf("row without a right pair must render two cells only, got %s", html)
	}
	if !strings.Contains(html, ">Dimensions</h2>") {
		t.Fatalf("missing authored title in %s", html)
	}
}

func TestDecorateProduct_UsesDatasetAndEscapes(t *testing.T) {
	ctx := stubContext{product: models.Product{
		SKU:           "OLED55C4",
		Name:          "55\" OLED TV",
		Price:         "$1,299.99",
		GalleryImages: []string{"/media/tv-front.png", "/media/tv-side.png"},
		Breadcrumb:    []string{"Home", "TVs"},
	}}
	html, hooks := decorateProduct(ctx, "product", []rowdoc.Row{
		{Label: "Page Path", Text: "/products/oled55c4"},
	})
	if !strings.Contains(html, `data-sku="OLED55C4"`) {
		t.Fatalf("missing SKU attribute in %s", html)
	}
	if !strings.Contains(html, "&#34;") {
		t.Fatalf("product name quotes must be escaped, got %s", html)
	}
	if strings.Count(html, "<img") != 2 {
		t.Fatalf("expected 2 gallery images, got %s", html)
	}
	if strings.Count(html, "product__crumb") != 2 {
		t.Fatalf("expected 2 breadcrumb entries, got %s", html)
	}
	if len(hooks) != 1 || hooks[0] != "gallery" {
		t.Fatalf("expected gallery hook, got %v", hooks)
	}
}

func TestDecorateHeader_StickyAndPanels(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Logo", Text: "/media/logo.svg"},
		{Label: "Nav Label #1", Text: "TVs"},
		{Label: "Nav Menu #1", Text: "OLED, QNED, 4K"},
		{Label: "Nav Label #2", Text: "Support"},
		{Label: "Nav URL #2", Text: "/support"},
		{Label: "Fixed Offset", Text: "64px"},
	}
	html, hooks := decorateHeader(stubContext{}, "header", rows)
	if !strings.Contains(html, `data-fixed-offset="64"`) {
		t.Fatalf("missing fixed offset config in %s", html)
	}
	if got := strings.Count(html, "header__panel-item"); got != 3 {
		t.Fatalf("expected 3 dropdown entries, got %d", got)
	}
	if !strings.Contains(html, `href="/support"`) {
		t.Fatalf("plain nav item must render a link, got %s", html)
	}
	joined := strings.Join(hooks, ",")
	if !strings.Contains(joined, "mega-menu") || !strings.Contains(joined, "sticky-nav") {
		t.Fatalf("expected mega-menu and sticky-nav hooks, got %v", hooks)
	}
}

func TestDecorateFooter_Columns(t *testing.T) {
	rows := []rowdoc.Row{
		{Label: "Column Title #1", Text: "Products"},
		{Label: "Column Links #1", Text: "TVs, Monitors"},
		{Label: "Copyright", Text: "© 2026 Showcase"},
	}
	html, _ := decorateFooter(stubContext{}, "footer", rows)
	if !strings.Contains(html, "footer__columns--cols-1") {
		t.Fatalf("column class must follow populated count, got %s", html)
	}
	if got := strings.Count(html, `class="footer__link">`); got != 2 {
		t.Fatalf("expected 2 links, got %d in %s", got, html)
	}
	if !strings.Contains(html, "footer__copyright") {
		t.Fatalf("missing copyright in %s", html)
	}
}

func TestDefaultRegistry_Types(t *testing.T) {
	reg := DefaultRegistry()
	want := []string{"cards", "carousel", "footer", "header", "hero", "product", "spec-table"}
	got := reg.Types()
	if len(got) != len(want) {
		t.Fatalf("expected %d block types, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("types = %v, want %v", got, want)
		}
	}
}
