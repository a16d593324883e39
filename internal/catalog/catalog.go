package catalog

import (
	"sort"
	"strings"
)

type Item struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
	Description string `json:"description"`
}

// Store holds the generated catalog. Items never change after construction,
// so reads need no locking.
type Store struct {
	items  []Item
	byName map[string]Item
}

func NewStore(items []Item) *Store {
	s := &Store{
		items:  items,
		byName: make(map[string]Item, len(items)),
	}
	for _, it := range items {
		s.byName[it.Name] = it
	}
	return s
}

func (s *Store) List() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(name string) (Item, bool) {
	it, ok := s.byName[name]
	return it, ok
}

func (s *Store) Len() int { return len(s.items) }

// Categories returns the distinct categories present in the catalog,
// sorted, for the storefront's filter dropdown.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for _, it := range s.items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out
}

// AllCategories is the category filter value that matches everything.
const AllCategories = "All"

// Matches reports whether an entry with the given name and category passes
// the optional category filter and case-insensitive name search.
func Matches(name, category, categoryFilter, search string) bool {
	if categoryFilter != "" && categoryFilter != AllCategories && category != categoryFilter {
		return false
	}
	if search != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(search)) {
		return false
	}
	return true
}

// Filter returns the items passing Matches, preserving catalog order.
// It never mutates its input.
func Filter(items []Item, categoryFilter, search string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if Matches(it.Name, it.Category, categoryFilter, search) {
			out = append(out, it)
		}
	}
	return out
}
