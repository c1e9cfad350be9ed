package rowdoc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// URL recovers a link target from the row's value. The HTML form wins over
// plain text: an anchor's href first, then an image's src, then the plain
// text itself when it looks like a URL. An image wrapped in a link therefore
// yields the link target, not the image source.
func (r Row) URL() string {
	if r.HTML != "" {
		if nodes, err := html.ParseFragment(strings.NewReader(r.HTML), bodyContext()); err == nil {
			if href := findAttr(nodes, "a", "href"); href != "" {
				return href
			}
			if src := findAttr(nodes, "img", "src"); src != "" {
				return src
			}
		}
	}
	text := strings.TrimSpace(r.Text)
	if looksLikeURL(text) {
		return text
	}
	return ""
}

// Values splits a comma-separated row into its trimmed entries, dropping
// empties so trailing commas do not produce phantom items.
func (r Row) Values() []string {
	var values []string
	for _, part := range strings.Split(r.Text, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// URLs is Values applied to link extraction: when a comma-separated row lists
// several URLs in plain text they fan out in authored order.
func (r Row) URLs() []string {
	// A row whose HTML carries a single anchor or image is one URL even if
	// the surrounding text contains commas.
	if url := r.URL(); url != "" && !strings.Contains(r.Text, ",") {
		return []string{url}
	}
	var urls []string
	for _, v := range r.Values() {
		if looksLikeURL(v) {
			urls = append(urls, v)
		}
	}
	if len(urls) == 0 {
		if url := r.URL(); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// Bool maps the authored yes/no vocabulary onto a boolean, falling back for
// anything unrecognized.
func (r Row) Bool(fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(r.Text)) {
	case "yes", "true", "on", "1":
		return true
	case "no", "false", "off", "0":
		return false
	default:
		return fallback
	}
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http") || strings.HasPrefix(s, "/")
}

func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}

func findAttr(nodes []*html.Node, tag, attr string) string {
	for _, n := range nodes {
		if v := findAttrNode(n, tag, attr); v != "" {
			return v
		}
	}
	return ""
}

func findAttrNode(n *html.Node, tag, attr string) string {
	if n.Type == html.ElementNode && n.Data == tag {
		for _, a := range n.Attr {
			if a.Key == attr && strings.TrimSpace(a.Val) != "" {
				return strings.TrimSpace(a.Val)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := findAttrNode(c, tag, attr); v != "" {
			return v
		}
	}
	return ""
}
