package catalog

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestGenerate_CountAndUniqueNames(t *testing.T) {
	items, err := Generate(DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := DefaultConfig()
	if len(items) != cfg.TargetCount {
		t.Fatalf("len=%d want=%d", len(items), cfg.TargetCount)
	}

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.Name]; dup {
			t.Fatalf("duplicate name %q", it.Name)
		}
		seen[it.Name] = struct{}{}
	}
}

func TestGenerate_ItemShape(t *testing.T) {
	cfg := DefaultConfig()
	items, err := Generate(cfg, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	categories := make(map[string]struct{})
	for _, c := range cfg.Categories {
		categories[c] = struct{}{}
	}
	adjectives := make(map[string]struct{})
	for _, a := range cfg.Adjectives {
		adjectives[a] = struct{}{}
	}
	nouns := make(map[string]struct{})
	for _, n := range cfg.Nouns {
		nouns[n] = struct{}{}
	}

	for _, it := range items {
		if it.PriceCents < 500 || it.PriceCents > 50000 {
			t.Fatalf("price out of range: %d (%s)", it.PriceCents, it.Name)
		}
		if _, ok := categories[it.Category]; !ok {
			t.Fatalf("unknown category %q", it.Category)
		}

		adj, noun, found := strings.Cut(it.Name, " ")
		if !found {
			t.Fatalf("name %q is not adjective+noun", it.Name)
		}
		if _, ok := adjectives[adj]; !ok {
			t.Fatalf("unknown adjective %q in %q", adj, it.Name)
		}
		if _, ok := nouns[noun]; !ok {
			t.Fatalf("unknown noun %q in %q", noun, it.Name)
		}

		if !strings.Contains(it.Description, it.Name) {
			t.Fatalf("description misses name: %q", it.Description)
		}
		if !strings.Contains(it.Description, strings.ToLower(it.Category)) {
			t.Fatalf("description misses category: %q", it.Description)
		}
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a, err := Generate(DefaultConfig(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(DefaultConfig(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different catalogs")
	}
}

func TestGenerate_TargetExceedsNameSpace(t *testing.T) {
	cfg := Config{
		TargetCount: 5,
		Categories:  []string{"Toys"},
		Adjectives:  []string{"Mini", "Maxi"},
		Nouns:       []string{"Ball", "Kite"},
		Template:    "{name}",
	}

	_, err := Generate(cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err=%v want ErrInvalidConfig", err)
	}
}

func TestGenerate_FillsWholeNameSpace(t *testing.T) {
	cfg := Config{
		TargetCount: 4,
		Categories:  []string{"Toys"},
		Adjectives:  []string{"Mini", "Maxi"},
		Nouns:       []string{"Ball", "Kite"},
		Template:    "{name}",
	}

	items, err := Generate(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("len=%d want=4", len(items))
	}
}

func TestGenerate_CategoryTemplates(t *testing.T) {
	cfg := Config{
		TargetCount: 2,
		Categories:  []string{"Toys"},
		Adjectives:  []string{"Mini", "Maxi"},
		Nouns:       []string{"Ball"},
		CategoryTemplates: map[string][]string{
			"Toys": {"Play with the {name} all day."},
		},
	}

	items, err := Generate(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, it := range items {
		want := "Play with the " + it.Name + " all day."
		if it.Description != want {
			t.Fatalf("description=%q want=%q", it.Description, want)
		}
	}
}

func TestGenerate_ConfigValidation(t *testing.T) {
	base := func() Config {
		return Config{
			TargetCount: 1,
			Categories:  []string{"Toys"},
			Adjectives:  []string{"Mini"},
			Nouns:       []string{"Ball"},
			Template:    "{name}",
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero target", func(c *Config) { c.TargetCount = 0 }},
		{"no categories", func(c *Config) { c.Categories = nil }},
		{"no policy", func(c *Config) { c.Template = "" }},
		{"both policies", func(c *Config) {
			c.CategoryTemplates = map[string][]string{"Toys": {"{name}"}}
		}},
		{"category without templates", func(c *Config) {
			c.Template = ""
			c.CategoryTemplates = map[string][]string{}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)

			if _, err := Generate(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err=%v want ErrInvalidConfig", err)
			}
		})
	}
}
