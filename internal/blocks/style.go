package blocks

import (
	"fmt"
	"strings"

	"showcase-backend/internal/rowdoc"
)

// StyleConfig is the resolved styling for one block. Every axis has a
// documented default so a block authored with no style rows still renders a
// complete class list:
//
//	Variant "default", Alignment "left", Background "none", Margin "medium",
//	Border false, Heading "m-regular", Autoplay false.
type StyleConfig struct {
	Variant    string
	Alignment  string
	Background string
	Margin     string
	Border     bool
	Heading    string
	Autoplay   bool
}

// DefaultStyle returns the per-axis defaults applied when a style row is
// absent or carries an unrecognized value.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Variant:    "default",
		Alignment:  "left",
		Background: "none",
		Margin:     "medium",
		Border:     false,
		Heading:    "m-regular",
		Autoplay:   false,
	}
}

// StyleSynonyms lists the authored spellings of the shared style rows. Block
// specs merge these with their own content fields.
func StyleSynonyms() rowdoc.Synonyms {
	return rowdoc.Synonyms{
		"Block Type":        "variant",
		"Select Block Type": "variant",
		"Alignment":         "alignment",
		"Text Alignment":    "alignment",
		"Background":        "background",
		"Background Color":  "background",
		"Margin":            "margin",
		"Margins":           "margin",
		"Border":            "border",
		"Show Border":       "border",
		"Headline Size":     "heading",
		"Font Size":         "heading",
		"Autoplay":          "autoplay",
		"Auto Play":         "autoplay",
	}
}

// ResolveStyle maps parsed style rows onto the fixed axis enumeration.
// Unknown values keep the axis default rather than dropping the axis.
func ResolveStyle(p *rowdoc.Parsed) StyleConfig {
	s := DefaultStyle()

	if v := normalizeToken(p.Text("variant")); v != "" {
		s.Variant = v
	}

	switch normalizeToken(p.Text("alignment")) {
	case "left", "center", "right":
		s.Alignment = normalizeToken(p.Text("alignment"))
	}

	switch normalizeToken(p.Text("background")) {
	case "none", "light", "dark", "image":
		s.Background = normalizeToken(p.Text("background"))
	}

	switch normalizeToken(p.Text("margin")) {
	case "none", "small", "medium", "large":
		s.Margin = normalizeToken(p.Text("margin"))
	}

	s.Border = p.Bool("border", s.Border)
	s.Autoplay = p.Bool("autoplay", s.Autoplay)

	if h := normalizeHeadingToken(p.Text("heading")); h != "" {
		s.Heading = h
	}

	return s
}

// Classes builds the block's class list. The order is fixed so identical
// configurations always produce identically ordered class tokens.
func (s StyleConfig) Classes(prefix string) []string {
	classes := []string{
		prefix,
		fmt.Sprintf("%s--%s", prefix, s.Variant),
		fmt.Sprintf("%s--align-%s", prefix, s.Alignment),
		fmt.Sprintf("%s--bg-%s", prefix, s.Background),
		fmt.Sprintf("%s--margin-%s", prefix, s.Margin),
		fmt.Sprintf("%s--heading-%s", prefix, s.Heading),
	}
	if s.Border {
		classes = append(classes, fmt.Sprintf("%s--bordered", prefix))
	}
	return classes
}

// ClassAttr renders the class list as a single attribute value.
func (s StyleConfig) ClassAttr(prefix string) string {
	return strings.Join(s.Classes(prefix), " ")
}

func normalizeToken(value string) string {
	token := strings.ToLower(strings.TrimSpace(value))
	token = strings.Join(strings.Fields(token), "-")
	return token
}

// normalizeHeadingToken accepts "size" or "size weight" spellings, e.g.
// "XL Bold" becomes "xl-bold" and "Large" becomes "l-regular".
func normalizeHeadingToken(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	if len(fields) == 0 {
		return ""
	}

	size := ""
	switch fields[0] {
	case "xs", "s", "m", "l", "xl", "xxl":
		size = fields[0]
	case "small":
		size = "s"
	case "medium":
		size = "m"
	case "large":
		size = "l"
	default:
		return ""
	}

	weight := "regular"
	if len(fields) > 1 {
		switch fields[1] {
		case "regular", "light", "bold", "black":
			weight = fields[1]
		}
	}

	return size + "-" + weight
}
