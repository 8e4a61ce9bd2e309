// Package catalog is the static content shown by TECHNO APP screens:
// the searchable directory, offers, credits and news. It is embedded
// YAML and read-only once loaded.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Offer is one discount tile.
type Offer struct {
	Label    string `yaml:"label"`
	Discount int    `yaml:"discount"`
}

// Credit is one person on the credits screen.
type Credit struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Email string `yaml:"email"`
}

// NewsItem is one entry on the news screen.
type NewsItem struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Catalog is the full content set.
type Catalog struct {
	Version  string     `yaml:"version"`
	People   []string   `yaml:"people"`
	Featured []string   `yaml:"featured"`
	Offers   []Offer    `yaml:"offers"`
	Credits  []Credit   `yaml:"credits"`
	News     []NewsItem `yaml:"news"`
	Genders  []string   `yaml:"genders"`

	folded []string
}

//go:embed catalog.yaml
var embedded []byte

// Parse decodes a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(c.People) == 0 {
		return nil, fmt.Errorf("catalog: no people to search")
	}

	c.folded = make([]string, len(c.People))
	for i, p := range c.People {
		c.folded[i] = fold(p)
	}
	return &c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Search returns the people whose name contains query, ignoring case, in
// catalog order. Surrounding spaces are part of the query. A blank query
// matches nothing.
func (c *Catalog) Search(query string) []string {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := fold(query)

	var out []string
	for i, name := range c.People {
		if strings.Contains(c.folded[i], q) {
			out = append(out, name)
		}
	}
	return out
}

// Suggest returns up to n names closest to query by edit distance,
// nearest first. Ties keep catalog order.
func (c *Catalog) Suggest(query string, n int) []string {
	q := fold(strings.TrimSpace(query))
	if q == "" || n <= 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	ranked := make([]scored, len(c.People))
	for i, name := range c.People {
		ranked[i] = scored{name: name, dist: nearest(q, c.folded[i])}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].dist < ranked[j].dist
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = ranked[i].name
	}
	return out
}

// nearest scores q against the whole name and each of its words, so a
// misspelt first name still finds "Jorge Erazo".
func nearest(q, name string) int {
	best := levenshtein.ComputeDistance(q, name)
	for _, word := range strings.Fields(name) {
		if d := levenshtein.ComputeDistance(q, word); d < best {
			best = d
		}
	}
	return best
}
