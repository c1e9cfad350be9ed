package blocks

import (
	"fmt"
	"strings"

	"showcase-backend/internal/interact"
	"showcase-backend/internal/rowdoc"
)

// RegisterHeader registers the site navigation header decorator.
func RegisterHeader(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("header", decorateHeader)
}

func headerSpec() rowdoc.Spec {
	return rowdoc.Spec{
		Synonyms: mergeSynonyms(rowdoc.Synonyms{
			"Logo":         "logo",
			"Logo Image":   "logo",
			"Logo URL":     "logourl",
			"Logo Link":    "logourl",
			"Nav Label":    "navlabel",
			"Menu Label":   "navlabel",
			"Nav URL":      "navurl",
			"Menu URL":     "navurl",
			"Nav Menu":     "navmenu",
			"Menu Items":   "navmenu",
			"Sticky":       "sticky",
			"Fixed Offset": "fixedoffset",
		}),
		ItemFields: []string{"navlabel", "navurl", "navmenu"},
	}
}

func decorateHeader(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string) {
	parsed := headerSpec().Parse(rows)
	style := ResolveStyle(parsed)

	hooks := []string{"mega-menu"}
	sticky := parsed.Bool("sticky", true)

	var sb strings.Builder
	sb.WriteString(`<header class="` + style.ClassAttr(prefix) + `"`)
	if sticky {
		fixedOffset := 0
		if n, ok := parsePositiveInt(parsed.Text("fixedoffset")); ok {
			fixedOffset = n
		}
		sb.WriteString(fmt.Sprintf(` data-sticky="true" data-fixed-offset="%d" data-desktop-breakpoint="%d"`,
			fixedOffset, interact.DesktopBreakpoint))
		hooks = append(hooks, "sticky-nav")
	}
	sb.WriteString(`>`)

	logo := parsed.URL("logo")
	if logo != "" {
		target := parsed.URL("logourl")
		if target == "" {
			target = "/"
		}
		sb.WriteString(`<a class="` + prefix + `__logo" href="` + esc(target) + `">`)
		writeImg(&sb, prefix+"__logo-image", logo, "Home")
		sb.WriteString(`</a>`)
	}

	sb.WriteString(`<nav class="` + prefix + `__nav" aria-label="Main">`)
	sb.WriteString(`<ul class="` + prefix + `__nav-list">`)
	for i, item := range parsed.Items() {
		label := item.Text("navlabel")
		if label == "" {
			continue
		}

		panelID := fmt.Sprintf("%s-panel-%d", prefix, i+1)
		sb.WriteString(`<li class="` + prefix + `__nav-item" data-panel="` + panelID + `">`)

		url := item.URL("navurl")
		if url != "" {
			sb.WriteString(`<a class="` + prefix + `__nav-link" href="` + esc(url) + `">` + esc(label) + `</a>`)
		} else {
			sb.WriteString(`<button type="button" class="` + prefix + `__nav-trigger" aria-expanded="false">` + esc(label) + `</button>`)
		}

		// A comma-separated menu row becomes the item's dropdown panel.
		if menu := (rowdoc.Row{Text: item.Text("navmenu")}).Values(); len(menu) > 0 {
			sb.WriteString(`<div class="` + prefix + `__panel" id="` + panelID + `" hidden>`)
			sb.WriteString(`<ul class="` + prefix + `__panel-list">`)
			for _, entry := range menu {
				writeTag(&sb, "li", prefix+"__panel-item", entry)
			}
			sb.WriteString(`</ul>`)
			sb.WriteString(`</div>`)
		}

		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul>`)
	sb.WriteString(`</nav>`)

	sb.WriteString(`</header>`)
	return sb.String(), hooks
}
