package rowdoc

import "strings"

// Parsed is the field view over one block's rows: un-numbered fields plus a
// fixed-size collection of numbered content items. Everything is rebuilt per
// decoration pass; nothing persists.
type Parsed struct {
	fields map[string]Row
	items  []map[string]Row
}

// Parse maps rows onto canonical fields using the spec's synonym table.
// Unrecognized labels and out-of-range indices are ignored, never errors:
// authored documents stay forward-compatible.
func (s Spec) Parse(rows []Row) *Parsed {
	c := s.compile()
	p := &Parsed{
		fields: make(map[string]Row),
		items:  make([]map[string]Row, c.maxItems),
	}
	for i := range p.items {
		p.items[i] = make(map[string]Row)
	}

	for _, row := range rows {
		canonical, index, ok := c.resolve(row.Label)
		if !ok {
			continue
		}

		if target, fanned := c.fanOut[canonical]; fanned {
			if index >= 0 {
				// Numbered spelling of a multi-value field carries one
				// value for one item.
				if urls := row.URLs(); len(urls) > 0 {
					p.items[index][target] = Row{Label: row.Label, Text: urls[0], HTML: ""}
				}
				continue
			}
			for i, url := range row.URLs() {
				if i >= c.maxItems {
					break
				}
				p.items[i][target] = Row{Label: row.Label, Text: url, HTML: ""}
			}
			continue
		}

		switch {
		case index >= 0:
			p.items[index][canonical] = row
		case c.itemSet[canonical]:
			// Un-numbered spelling of an item field addresses the first item.
			p.items[0][canonical] = row
		default:
			p.fields[canonical] = row
		}
	}
	return p
}

// Field returns the row mapped to an un-numbered canonical field.
func (p *Parsed) Field(name string) (Row, bool) {
	row, ok := p.fields[name]
	return row, ok
}

// Text returns the plain-text value of an un-numbered field, or "".
func (p *Parsed) Text(name string) string {
	return strings.TrimSpace(p.fields[name].Text)
}

// HTML returns the raw-HTML value of an un-numbered field, or "".
func (p *Parsed) HTML(name string) string {
	return p.fields[name].HTML
}

// URL returns the extracted link target of an un-numbered field, or "".
func (p *Parsed) URL(name string) string {
	return p.fields[name].URL()
}

// Bool reads an un-numbered field as a yes/no value.
func (p *Parsed) Bool(name string, fallback bool) bool {
	row, ok := p.fields[name]
	if !ok {
		return fallback
	}
	return row.Bool(fallback)
}

// Item is the field view over one numbered content entry.
type Item struct {
	fields map[string]Row
}

func (it Item) Text(name string) string {
	return strings.TrimSpace(it.fields[name].Text)
}

func (it Item) HTML(name string) string {
	return it.fields[name].HTML
}

func (it Item) URL(name string) string {
	return it.fields[name].URL()
}

func (it Item) Empty() bool {
	for _, row := range it.fields {
		if strings.TrimSpace(row.Text) != "" || strings.TrimSpace(row.HTML) != "" {
			return false
		}
	}
	return true
}

// Items returns the materialized content entries in index order. An index is
// only materialized when at least one of its fields is non-empty.
func (p *Parsed) Items() []Item {
	var items []Item
	for _, fields := range p.items {
		item := Item{fields: fields}
		if !item.Empty() {
			items = append(items, item)
		}
	}
	return items
}

// AllItems returns every slot up to the collection cap, empty ones included,
// for blocks that render fixed-size collections conditionally.
func (p *Parsed) AllItems() []Item {
	items := make([]Item, len(p.items))
	for i, fields := range p.items {
		items[i] = Item{fields: fields}
	}
	return items
}
