package storefront

import (
	"errors"
	"net/http"
	"strings"

	"CommonStore/internal/market"
	"CommonStore/internal/session"
	"CommonStore/pkg/kit"
)

func (s *Server) handleListApps(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kit.WriteJSON(w, http.StatusOK, s.Market.List(q.Get("category"), q.Get("search")))
}

func (s *Server) handleGetApp(w http.ResponseWriter, r *http.Request) {
	id := urlParam(r, "id")

	l, ok := s.Market.Get(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "app not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, l)
}

type uploadReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents"`
}

func (s *Server) handleUploadApp(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	username, _ := sess.Username()

	var req uploadReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "name required", nil)
		return
	}
	if req.PriceCents < 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "price_cents must not be negative", nil)
		return
	}

	l := s.Market.Upload(req.Name, req.Description, req.Category, req.PriceCents, username)
	kit.WriteJSON(w, http.StatusCreated, l)
}

type reviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	username, _ := sess.Username()

	var req reviewReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	rv, err := s.Market.AddReview(urlParam(r, "id"), username, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, market.ErrInvalidRating) {
			kit.WriteError(w, r, http.StatusBadRequest, "rating must be between 1 and 5", map[string]any{"rating": req.Rating})
			return
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, rv)
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	// No existence check on the app id: unknown apps simply have no reviews.
	kit.WriteJSON(w, http.StatusOK, s.Market.ReviewsFor(urlParam(r, "id")))
}
