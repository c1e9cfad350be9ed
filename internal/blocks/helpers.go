package blocks

import (
	"html/template"
	"strings"

	"showcase-backend/internal/rowdoc"
)

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// mergeSynonyms folds the shared style spellings into a block's own synonym
// table so every block accepts the same style rows.
func mergeSynonyms(own rowdoc.Synonyms) rowdoc.Synonyms {
	merged := rowdoc.Synonyms{}
	for k, v := range StyleSynonyms() {
		merged[k] = v
	}
	for k, v := range own {
		merged[k] = v
	}
	return merged
}

// writeTag writes an element only when its escaped text content is non-empty.
// Optional sub-elements never render as empty containers.
func writeTag(sb *strings.Builder, tag, class, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	sb.WriteString(`<` + tag + ` class="` + class + `">` + esc(text) + `</` + tag + `>`)
}

// writeRich is writeTag for the allow-listed rich-text fields: the value
// passes through sanitized instead of escaped.
func writeRich(sb *strings.Builder, ctx RenderContext, tag, class, html, fallback string) {
	content := strings.TrimSpace(html)
	if content != "" {
		content = strings.TrimSpace(ctx.SanitizeHTML(content))
	}
	if content == "" {
		content = esc(strings.TrimSpace(fallback))
	}
	if content == "" {
		return
	}
	sb.WriteString(`<` + tag + ` class="` + class + `">` + content + `</` + tag + `>`)
}

// writeImg writes an image element only when a source is present.
func writeImg(sb *strings.Builder, class, src, alt string) {
	if strings.TrimSpace(src) == "" {
		return
	}
	sb.WriteString(`<img class="` + class + `" src="` + esc(src) + `" alt="` + esc(alt) + `" loading="lazy"/>`)
}

// writeCTA writes a call-to-action link only when both label and target are
// present.
func writeCTA(sb *strings.Builder, class, label, url string) {
	if strings.TrimSpace(label) == "" || strings.TrimSpace(url) == "" {
		return
	}
	sb.WriteString(`<a class="` + class + `" href="` + esc(url) + `">` + esc(label) + `</a>`)
}
