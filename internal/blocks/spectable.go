package blocks

import (
	"strings"

	"showcase-backend/internal/rowdoc"
)

// RegisterSpecTable registers the specification table decorator. Table rows
// come from the remote specs dataset; authored rows only carry styling and
// the optional title.
func RegisterSpecTable(reg *Registry) {
	if reg == nil {
		return
	}
	reg.MustRegister("spec-table", decorateSpecTable)
}

func specTableSpec() rowdoc.Spec {
	return rowdoc.Spec{
		Synonyms: mergeSynonyms(rowdoc.Synonyms{
			"Title":       "title",
			"Table Title": "title",
			"Heading":     "title",
		}),
	}
}

func decorateSpecTable(ctx RenderContext, prefix string, rows []rowdoc.Row) (string, []string) {
	parsed := specTableSpec().Parse(rows)
	style := ResolveStyle(parsed)

	entries := ctx.Specs()
	if len(entries) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + style.ClassAttr(prefix) + `">`)
	writeTag(&sb, "h2", prefix+"__title", parsed.Text("title"))

	sb.WriteString(`<table class="` + prefix + `__table">`)
	sb.WriteString(`<tbody>`)
	for _, entry := range entries {
		sb.WriteString(`<tr class="` + prefix + `__row">`)
		sb.WriteString(`<th class="` + prefix + `__label" scope="row">` + esc(entry.LeftLabel) + `</th>`)
		sb.WriteString(`<td class="` + prefix + `__value">` + esc(entry.LeftValue) + `</td>`)
		if strings.TrimSpace(entry.RightLabel) != "" {
			sb.WriteString(`<th class="` + prefix + `__label" scope="row">` + esc(entry.RightLabel) + `</th>`)
			sb.WriteString(`<td class="` + prefix + `__value">` + esc(entry.RightValue) + `</td>`)
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody>`)
	sb.WriteString(`</table>`)

	sb.WriteString(`</div>`)
	return sb.String(), nil
}
