package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	minPriceCents = 500
	maxPriceCents = 50000
)

var ErrInvalidConfig = errors.New("invalid catalog config")

// Config describes a catalog to generate. Exactly one description policy
// must be set: Template (one fixed template for every item) or
// CategoryTemplates (a template chosen at random from the item's category).
type Config struct {
	TargetCount int
	Categories  []string
	Adjectives  []string
	Nouns       []string

	// Template may reference {name} and {category}; the category is
	// substituted lowercased.
	Template string

	// CategoryTemplates maps each category to its templates, which may
	// reference {name}.
	CategoryTemplates map[string][]string
}

// DefaultConfig is the stock storefront: 100 common items across seven
// categories.
func DefaultConfig() Config {
	return Config{
		TargetCount: 100,
		Categories: []string{
			"Electronics", "Stationery", "Accessories", "Clothing",
			"Kitchen", "Sports", "Toys",
		},
		Adjectives: []string{
			"Ultra", "Pro", "Eco", "Smart", "Classic",
			"Deluxe", "Compact", "Premium", "Mega", "Super",
		},
		Nouns: []string{
			"Laptop", "Notebook", "Backpack", "Water Bottle", "Headphones",
			"Sneakers", "Jacket", "Camera", "Watch", "Tablet",
			"Pen", "Keyboard", "Mouse", "Chair", "Ball",
			"Gloves", "Mixer", "Drone", "Puzzle", "Toy Car",
		},
		Template: "The {name} is a high-quality {category} item. Perfect for everyday use.",
	}
}

func (c Config) validate() error {
	if c.TargetCount <= 0 {
		return fmt.Errorf("%w: target count must be positive", ErrInvalidConfig)
	}
	if len(c.Categories) == 0 || len(c.Adjectives) == 0 || len(c.Nouns) == 0 {
		return fmt.Errorf("%w: categories, adjectives and nouns must be non-empty", ErrInvalidConfig)
	}

	if space := len(c.Adjectives) * len(c.Nouns); c.TargetCount > space {
		return fmt.Errorf("%w: target count %d exceeds %d unique names", ErrInvalidConfig, c.TargetCount, space)
	}

	switch {
	case c.Template == "" && c.CategoryTemplates == nil:
		return fmt.Errorf("%w: a description policy is required", ErrInvalidConfig)
	case c.Template != "" && c.CategoryTemplates != nil:
		return fmt.Errorf("%w: only one description policy may be set", ErrInvalidConfig)
	case c.CategoryTemplates != nil:
		for _, cat := range c.Categories {
			if len(c.CategoryTemplates[cat]) == 0 {
				return fmt.Errorf("%w: category %q has no templates", ErrInvalidConfig, cat)
			}
		}
	}

	return nil
}

// Generate draws TargetCount items with pairwise-unique "{adjective} {noun}"
// names. Name collisions are redrawn; the validated name space bounds the
// loop. The caller owns the random source, so a seeded rng reproduces the
// same catalog.
func Generate(cfg Config, rng *rand.Rand) ([]Item, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	items := make([]Item, 0, cfg.TargetCount)
	used := make(map[string]struct{}, cfg.TargetCount)

	for len(items) < cfg.TargetCount {
		category := cfg.Categories[rng.Intn(len(cfg.Categories))]
		name := cfg.Adjectives[rng.Intn(len(cfg.Adjectives))] + " " + cfg.Nouns[rng.Intn(len(cfg.Nouns))]
		if _, dup := used[name]; dup {
			continue
		}
		used[name] = struct{}{}

		items = append(items, Item{
			Name:        name,
			Category:    category,
			PriceCents:  minPriceCents + rng.Int63n(maxPriceCents-minPriceCents+1),
			Description: cfg.describe(name, category, rng),
		})
	}

	return items, nil
}

func (c Config) describe(name, category string, rng *rand.Rand) string {
	if c.CategoryTemplates != nil {
		ts := c.CategoryTemplates[category]
		return strings.ReplaceAll(ts[rng.Intn(len(ts))], "{name}", name)
	}

	d := strings.ReplaceAll(c.Template, "{name}", name)
	return strings.ReplaceAll(d, "{category}", strings.ToLower(category))
}
