package rowdoc

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultMaxItems caps numbered collections when a Spec does not set its own
// limit. Authoring has never used more than four entries per block.
const DefaultMaxItems = 4

var numberedSuffix = regexp.MustCompile(`#?(\d+)$`)

// Normalize lowercases a label and strips whitespace and hyphens so that all
// historical spellings of a field collapse to one lookup key.
func Normalize(label string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '-':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Synonyms maps authored label spellings to canonical field names. Keys are
// written in authored form and normalized when the table is compiled.
type Synonyms map[string]string

// Spec is the declarative field mapping for one block type.
type Spec struct {
	// Synonyms resolves authored labels to canonical fields.
	Synonyms Synonyms
	// ItemFields are canonical fields that belong to numbered content items.
	ItemFields []string
	// FanOut maps a canonical multi-value field to the per-item field its
	// comma-separated values populate positionally.
	FanOut map[string]string
	// MaxItems caps the numbered collection; zero means DefaultMaxItems.
	MaxItems int
}

type compiledSpec struct {
	synonyms map[string]string
	itemSet  map[string]bool
	fanOut   map[string]string
	maxItems int
}

func (s Spec) compile() compiledSpec {
	c := compiledSpec{
		synonyms: make(map[string]string, len(s.Synonyms)),
		itemSet:  make(map[string]bool, len(s.ItemFields)),
		fanOut:   s.FanOut,
		maxItems: s.MaxItems,
	}
	for authored, canonical := range s.Synonyms {
		c.synonyms[Normalize(authored)] = canonical
	}
	for _, field := range s.ItemFields {
		c.itemSet[field] = true
	}
	if c.maxItems <= 0 {
		c.maxItems = DefaultMaxItems
	}
	return c
}

// resolve maps a normalized label to its canonical field and item index.
// Index is -1 for un-numbered fields. ok is false for unrecognized labels and
// for numbered labels whose index is out of range.
func (c compiledSpec) resolve(label string) (canonical string, index int, ok bool) {
	key := Normalize(label)

	if canonical, found := c.synonyms[key]; found {
		return canonical, -1, true
	}

	m := numberedSuffix.FindStringSubmatch(key)
	if m == nil {
		return "", -1, false
	}
	base := strings.TrimSuffix(key, m[0])
	canonical, found := c.synonyms[base]
	if !found {
		return "", -1, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > c.maxItems {
		return "", -1, false
	}
	return canonical, n - 1, true
}
