// Package campaign holds the donation campaigns shown in the campaign dialog.
package campaign

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	ErrNotFound     = errors.New("campaign not found")
	ErrEmptyKey     = errors.New("campaign key is empty")
	ErrDuplicateKey = errors.New("duplicate campaign key")
	ErrProgress     = errors.New("campaign progress out of range")
)

// Campaign is one fundraising campaign.
type Campaign struct {
	Key         string `yaml:"key" json:"key"`
	Keyword     string `yaml:"keyword" json:"-"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Progress    int    `yaml:"progress" json:"progress"` // percent, 0..100
	Goal        string `yaml:"goal" json:"goal"`
}

// Catalog is an ordered set of campaigns.
type Catalog struct {
	campaigns []Campaign
	byKey     map[string]int
}

//go:embed campaigns.yaml
var embedded []byte

var defaultCatalog = mustParse(embedded)

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("campaign: parse embedded catalog: %v", err))
	}
	return c
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Load reads and parses a catalog file from fsys.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog. A campaign without a keyword is matched by
// its key.
func Parse(data []byte) (*Catalog, error) {
	var file struct {
		Campaigns []Campaign `yaml:"campaigns"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	c := &Catalog{byKey: make(map[string]int, len(file.Campaigns))}
	for _, camp := range file.Campaigns {
		camp.Key = strings.TrimSpace(camp.Key)
		if camp.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, dup := c.byKey[camp.Key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, camp.Key)
		}
		if camp.Progress < 0 || camp.Progress > 100 {
			return nil, fmt.Errorf("%w: %s has %d", ErrProgress, camp.Key, camp.Progress)
		}
		if camp.Keyword == "" {
			camp.Keyword = camp.Key
		}
		c.byKey[camp.Key] = len(c.campaigns)
		c.campaigns = append(c.campaigns, camp)
	}
	return c, nil
}

// Lookup returns the campaign with the given key.
func (c *Catalog) Lookup(key string) (Campaign, error) {
	i, ok := c.byKey[key]
	if !ok {
		return Campaign{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return c.campaigns[i], nil
}

// Keys returns every campaign key, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.campaigns))
	for _, camp := range c.campaigns {
		keys = append(keys, camp.Key)
	}
	sort.Strings(keys)
	return keys
}

// All returns the campaigns in catalog order.
func (c *Catalog) All() []Campaign {
	return append([]Campaign(nil), c.campaigns...)
}

// MatchTitle resolves a card heading to a campaign key. The first campaign,
// in catalog order, whose keyword appears in the heading wins. Case and
// accents are ignored.
func (c *Catalog) MatchTitle(title string) (string, bool) {
	folded := fold(title)
	for _, camp := range c.campaigns {
		if strings.Contains(folded, fold(camp.Keyword)) {
			return camp.Key, true
		}
	}
	return "", false
}

// fold lowercases s and strips combining marks: "Oncológico" -> "oncologico".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
