package blocks

import (
	"fmt"
	"strings"

	"showcase-backend/internal/rowdoc"
)

// RegisterCards registers the card grid decorator.
func RegisterCards(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("cards", decorateCards)
}

func cardsSpec() rowdoc.Spec {
	return rowdoc.Spec{
		Synonyms: mergeSynonyms(rowdoc.Synonyms{
			"Headline":      "headline",
			"Card Headline": "headline",
			"Title":         "headline",
			"Body Copy":     "body",
			"Body":          "body",
			"Image":         "image",
			"Card Image":    "image",
			"Images":        "images",
			"Alt Text":      "alt",
			"Video":         "video",
			"Video URL":     "video",
			"CTA":           "ctalabel",
			"CTA Text":      "ctalabel",
			"CTA URL":       "ctaurl",
			"CTA Link":      "ctaurl",
		}),
		ItemFields: []string{"headline", "body", "image", "alt", "video", "ctalabel", "ctaurl"},
		FanOut:     map[string]string{"images": "image"},
	}
}

func decorateCards(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string) {
	parsed := cardsSpec().Parse(rows)
	style := ResolveStyle(parsed)

	cards := parsed.Items()
	if len(cards) == 0 {
		return "", nil
	}

	// Column count follows the populated cards, not a fixed layout.
	gridClass := fmt.Sprintf("%s__grid %s__grid--cols-%d", prefix, prefix, len(cards))

	var hooks []string
	var sb strings.Builder
	sb.WriteString(`<div class="` + style.ClassAttr(prefix) + `">`)
	sb.WriteString(`<div class="` + gridClass + `">`)

	for _, card := range cards {
		alt := card.Text("alt")
		if alt == "" {
			alt = card.Text("headline")
		}

		sb.WriteString(`<div class="` + prefix + `__card">`)

		videoURL := card.URL("video")
		imageURL := card.URL("image")
		switch {
		case videoURL != "":
			sb.WriteString(`<div class="` + prefix + `__card-media" data-media-src="` + esc(videoURL) + `">`)
			writeImg(&sb, prefix+"__card-poster", imageURL, alt)
			sb.WriteString(`<button type="button" class="` + prefix + `__card-play" aria-label="Play video"></button>`)
			sb.WriteString(`<button type="button" class="` + prefix + `__card-pause ` + prefix + `__card-pause--hidden" aria-label="Pause video"></button>`)
			sb.WriteString(`</div>`)
			if !contains(hooks, "media-toggle") {
				hooks = append(hooks, "media-toggle")
			}
		case imageURL != "":
			writeImg(&sb, prefix+"__card-image", imageURL, alt)
		}

		writeTag(&sb, "h3", prefix+"__card-headline", card.Text("headline"))
		writeRich(&sb, ctx, "div", prefix+"__card-body", card.HTML("body"), card.Text("body"))
		writeCTA(&sb, prefix+"__card-cta", card.Text("ctalabel"), card.URL("ctaurl"))

		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	return sb.String(), hooks
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
