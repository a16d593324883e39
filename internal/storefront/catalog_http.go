package storefront

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"CommonStore/internal/catalog"
	"CommonStore/pkg/kit"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := catalog.Filter(s.Catalog.List(), q.Get("category"), q.Get("search"))
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	name := urlParam(r, "name")

	it, ok := s.Catalog.Get(name)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "item not found", map[string]any{"name": name})
		return
	}
	kit.WriteJSON(w, http.StatusOK, it)
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := append([]string{catalog.AllCategories}, s.Catalog.Categories()...)
	kit.WriteJSON(w, http.StatusOK, categories)
}

// urlParam unescapes a chi path parameter; item names contain spaces.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
