package blocks

import (
	"fmt"
	"strings"

	"showcase-backend/internal/interact"
	"showcase-backend/internal/rowdoc"
)

// RegisterCarousel registers the image carousel decorator.
func RegisterCarousel(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("carousel", decorateCarousel)
}

func carouselSpec() rowdoc.Spec {
	return rowdoc.Spec{
		Synonyms: mergeSynonyms(rowdoc.Synonyms{
			"Slide Image":    "image",
			"Image":          "image",
			"Images":         "images",
			"Slide Images":   "images",
			"Caption":        "caption",
			"Slide Caption":  "caption",
			"Alt Text":       "alt",
			"Slide Alt Text": "alt",
			"Delay":          "delay",
			"Autoplay Delay": "delay",
		}),
		ItemFields: []string{"image", "caption", "alt"},
		FanOut:     map[string]string{"images": "image"},
	}
}

func decorateCarousel(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string) {
	parsed := carouselSpec().Parse(rows)
	style := ResolveStyle(parsed)

	var slides []rowdoc.Item
	for _, item := range parsed.Items() {
		if item.URL("image") != "" {
			slides = append(slides, item)
		}
	}
	if len(slides) == 0 {
		return "", nil
	}

	// The controller seeds the initial slide so markup and client state
	// start from the same place.
	state := interact.NewCarousel(len(slides))
	defer state.Close()
	active := state.Index()

	delayMillis := int(interact.DefaultAutoplayDelay.Milliseconds())
	if n, ok := parsePositiveInt(parsed.Text("delay")); ok {
		delayMillis = n * 1000
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + style.ClassAttr(prefix) + `"` +
		fmt.Sprintf(` data-slide-count="%d" data-swipe-threshold="%d"`, len(slides), interact.SwipeThreshold))
	if style.Autoplay {
		sb.WriteString(fmt.Sprintf(` data-autoplay-delay="%d"`, delayMillis))
	}
	sb.WriteString(`>`)

	sb.WriteString(`<div class="` + prefix + `__track">`)
	for i, slide := range slides {
		slideClass := prefix + "__slide"
		if i == active {
			slideClass += " " + prefix + "__slide--active"
		}
		alt := slide.Text("alt")
		if alt == "" {
			alt = slide.Text("caption")
		}
		sb.WriteString(fmt.Sprintf(`<div class="%s" data-slide-index="%d">`, slideClass, i))
		writeImg(&sb, prefix+"__slide-image", slide.URL("image"), alt)
		writeRich(&sb, ctx, "p", prefix+"__slide-caption", slide.HTML("caption"), slide.Text("caption"))
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)

	sb.WriteString(`<button type="button" class="` + prefix + `__prev" aria-label="Previous slide"></button>`)
	sb.WriteString(`<button type="button" class="` + prefix + `__next" aria-label="Next slide"></button>`)

	sb.WriteString(`<div class="` + prefix + `__indicators">`)
	for i := range slides {
		dotClass := prefix + "__dot"
		if i == active {
			dotClass += " " + prefix + "__dot--active"
		}
		sb.WriteString(fmt.Sprintf(`<button type="button" class="%s" data-slide-target="%d" aria-label="Go to slide %d"></button>`, dotClass, i, i+1))
	}
	sb.WriteString(`</div>`)

	if style.Autoplay {
		sb.WriteString(`<button type="button" class="` + prefix + `__toggle" aria-label="Pause carousel"></button>`)
	}

	sb.WriteString(`</div>`)
	return sb.String(), []string{"carousel"}
}

// parsePositiveInt reads authored numbers like "5", "5s" or "64px".
func parsePositiveInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, "px")
	value = strings.TrimSuffix(value, "s")
	if value == "" {
		return 0, false
	}
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}
