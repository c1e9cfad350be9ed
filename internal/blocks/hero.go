package blocks

import (
	"strings"

	"showcase-backend/internal/rowdoc"
)

// RegisterHero registers the hero banner decorator.
func RegisterHero(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("hero", decorateHero)
}

func heroSpec() rowdoc.Spec {
	return rowdoc.Spec{
		Synonyms: mergeSynonyms(rowdoc.Synonyms{
			"Eyebrow":      "eyebrow",
			"Eyebrow Text": "eyebrow",
			"Headline":     "headline",
			"Title":        "headline",
			"Body Copy":    "body",
			"Body":         "body",
			"Description":  "body",
			"Image":        "image",
			"Hero Image":   "image",
			"Alt Text":     "alt",
			"Image Alt":    "alt",
			"Video":        "video",
			"Video URL":    "video",
			"CTA":          "ctalabel",
			"CTA Text":     "ctalabel",
			"CTA Label":    "ctalabel",
			"CTA URL":      "ctaurl",
			"CTA Link":     "ctaurl",
			"Disclaimer":   "disclaimer",
		}),
	}
}

func decorateHero(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string) {
	parsed := heroSpec().Parse(rows)
	style := ResolveStyle(parsed)

	headline := parsed.Text("headline")
	if headline == "" {
		return "", nil
	}

	imageURL := parsed.URL("image")
	videoURL := parsed.URL("video")
	alt := parsed.Text("alt")
	if alt == "" {
		alt = headline
	}

	var hooks []string
	var sb strings.Builder
	sb.WriteString(`<div class="` + style.ClassAttr(prefix) + `">`)
	sb.WriteString(`<div class="` + prefix + `__content">`)

	writeTag(&sb, "p", prefix+"__eyebrow", parsed.Text("eyebrow"))
	writeRich(&sb, ctx, "h1", prefix+"__headline", parsed.HTML("headline"), headline)
	writeRich(&sb, ctx, "div", prefix+"__body", parsed.HTML("body"), parsed.Text("body"))
	writeCTA(&sb, prefix+"__cta", parsed.Text("ctalabel"), parsed.URL("ctaurl"))
	writeTag(&sb, "p", prefix+"__disclaimer", parsed.Text("disclaimer"))

	sb.WriteString(`</div>`)

	switch {
	case videoURL != "":
		sb.WriteString(`<div class="` + prefix + `__media" data-media-src="` + esc(videoURL) + `">`)
		writeImg(&sb, prefix+"__poster", imageURL, alt)
		sb.WriteString(`<button type="button" class="` + prefix + `__play" aria-label="Play video"></button>`)
		sb.WriteString(`<button type="button" class="` + prefix + `__pause ` + prefix + `__pause--hidden" aria-label="Pause video"></button>`)
		sb.WriteString(`</div>`)
		hooks = append(hooks, "media-toggle")
	case imageURL != "":
		sb.WriteString(`<div class="` + prefix + `__media">`)
		writeImg(&sb, prefix+"__image", imageURL, alt)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div>`)
	return sb.String(), hooks
}
