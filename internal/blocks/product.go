package blocks

import (
	"fmt"
	"strings"

	"showcase-backend/internal/rowdoc"
)

// RegisterProduct registers the product detail decorator. Product data comes
// from the remote product dataset keyed by the page path's SKU segment;
// authored rows supply the path, styling and optional overrides.
func RegisterProduct(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("product", decorateProduct)
}

func productSpec() rowdoc.Spec {
	return rowdoc.Spec{
		Synonyms: mergeSynonyms(rowdoc.Synonyms{
			"Page Path":    "path",
			"Path":         "path",
			"Product Path": "path",
			"Headline":     "headline",
			"Disclaimer":   "disclaimer",
			"CTA":          "ctalabel",
			"CTA Text":     "ctalabel",
			"CTA URL":      "ctaurl",
		}),
	}
}

func decorateProduct(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string) {
	parsed := productSpec().Parse(rows)
	style := ResolveStyle(parsed)

	product := ctx.Product(parsed.Text("path"))
	if product.SKU == "" {
		return "", nil
	}

	var hooks []string
	var sb strings.Builder
	sb.WriteString(`<div class="` + style.ClassAttr(prefix) + `" data-sku="` + esc(product.SKU) + `">`)

	if len(product.Breadcrumb) > 0 {
		sb.WriteString(`<nav class="` + prefix + `__breadcrumb" aria-label="Breadcrumb"><ol>`)
		for _, crumb := range product.Breadcrumb {
			writeTag(&sb, "li", prefix+"__crumb", crumb)
		}
		sb.WriteString(`</ol></nav>`)
	}

	sb.WriteString(`<div class="` + prefix + `__layout">`)

	if len(product.GalleryImages) > 0 {
		sb.WriteString(fmt.Sprintf(`<div class="%s__gallery" data-slide-count="%d">`, prefix, len(product.GalleryImages)))
		for i, src := range product.GalleryImages {
			imgClass := prefix + "__gallery-image"
			if i == 0 {
				imgClass += " " + prefix + "__gallery-image--active"
			}
			writeImg(&sb, imgClass, src, product.Name)
		}
		sb.WriteString(`</div>`)
		hooks = append(hooks, "gallery")
	}

	sb.WriteString(`<div class="` + prefix + `__details">`)
	headline := parsed.Text("headline")
	if headline == "" {
		headline = product.Name
	}
	writeTag(&sb, "h1", prefix+"__name", headline)
	writeTag(&sb, "p", prefix+"__sku", product.SKU)
	writeTag(&sb, "p", prefix+"__price", product.Price)
	writeRich(&sb, ctx, "div", prefix+"__description", product.Description, "")
	writeCTA(&sb, prefix+"__cta", parsed.Text("ctalabel"), parsed.URL("ctaurl"))
	writeTag(&sb, "p", prefix+"__disclaimer", parsed.Text("disclaimer"))
	sb.WriteString(`</div>`)

	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	return sb.String(), hooks
}
