// Package rowdoc parses authored content blocks into label/value rows and
// maps them onto canonical fields. Blocks arrive as HTML subtrees produced by
// a document-to-HTML conversion pipeline: each row holds a label cell and a
// value cell, and labels may carry a numbered suffix for repeated entries.
package rowdoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Row is one label/value pair from an authored table. Value keeps both a
// plain-text form and the raw inner HTML of the value cell.
type Row struct {
	Label string
	Text  string
	HTML  string
}

// ParseBlock extracts rows from a block's HTML subtree. A row is any element
// with exactly two element children: the first cell is the label, the second
// the value. Anything that does not look like a row is skipped silently.
func ParseBlock(r io.Reader) ([]Row, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var rows []Row
	collectRows(doc, &rows)
	return rows, nil
}

// ParseBlockString is ParseBlock over an in-memory document.
func ParseBlockString(s string) ([]Row, error) {
	return ParseBlock(strings.NewReader(s))
}

func collectRows(n *html.Node, rows *[]Row) {
	if n.Type == html.ElementNode {
		cells := elementChildren(n)
		if len(cells) == 2 && !rowLike(cells[0]) {
			label := collapseSpace(textContent(cells[0]))
			if label != "" {
				*rows = append(*rows, Row{
					Label: label,
					Text:  collapseSpace(textContent(cells[1])),
					HTML:  innerHTML(cells[1]),
				})
				return
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectRows(c, rows)
	}
}

func elementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

// rowLike reports whether a candidate label cell is itself a two-cell row or
// holds one, which means the current node is a wrapper, not a row. Without
// this a block authored with exactly two rows would parse as a single row.
func rowLike(n *html.Node) bool {
	if len(elementChildren(n)) == 2 {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && rowLike(c) {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return ""
		}
	}
	return strings.TrimSpace(sb.String())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
