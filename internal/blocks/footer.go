package blocks

import (
	"fmt"
	"strings"

	"showcase-backend/internal/rowdoc"
)

// RegisterFooter registers the site footer decorator.
func RegisterFooter(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("footer", decorateFooter)
}

func footerSpec() rowdoc.Spec {
	return rowdoc.Spec{
		Synonyms: mergeSynonyms(rowdoc.Synonyms{
			"Column Title": "coltitle",
			"Column Links": "collinks",
			"Links":        "collinks",
			"Copyright":    "copyright",
			"Legal":        "copyright",
			"Social":       "social",
			"Social Links": "social",
		}),
		ItemFields: []string{"coltitle", "collinks"},
	}
}

func decorateFooter(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string) {
	parsed := footerSpec().Parse(rows)
	style := ResolveStyle(parsed)

	columns := parsed.Items()
	copyright := parsed.Text("copyright")
	social := (rowdoc.Row{Text: parsed.Text("social")}).Values()
	if len(columns) == 0 && copyright == "" && len(social) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(`<footer class="` + style.ClassAttr(prefix) + `">`)

	if len(columns) > 0 {
		sb.WriteString(fmt.Sprintf(`<div class="%s__columns %s__columns--cols-%d">`, prefix, prefix, len(columns)))
		for _, col := range columns {
			sb.WriteString(`<div class="` + prefix + `__column">`)
			writeTag(&sb, "h4", prefix+"__column-title", col.Text("coltitle"))
			if links := (rowdoc.Row{Text: col.Text("collinks")}).Values(); len(links) > 0 {
				sb.WriteString(`<ul class="` + prefix + `__links">`)
				for _, link := range links {
					writeTag(&sb, "li", prefix+"__link", link)
				}
				sb.WriteString(`</ul>`)
			}
			sb.WriteString(`</div>`)
		}
		sb.WriteString(`</div>`)
	}

	if len(social) > 0 {
		sb.WriteString(`<ul class="` + prefix + `__social">`)
		for _, url := range social {
			if !strings.HasPrefix(url, "http") && !strings.HasPrefix(url, "/") {
				continue
			}
			sb.WriteString(`<li class="` + prefix + `__social-item"><a href="` + esc(url) + `">` + esc(url) + `</a></li>`)
		}
		sb.WriteString(`</ul>`)
	}

	writeTag(&sb, "p", prefix+"__copyright", copyright)

	sb.WriteString(`</footer>`)
	return sb.String(), nil
}
