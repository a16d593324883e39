package storefront

import (
	"errors"
	"net/http"
	"strings"

	"CommonStore/internal/cart"
	"CommonStore/internal/session"
	"CommonStore/pkg/kit"
)

type cartResp struct {
	Items      []cart.Entry `json:"items"`
	TotalCents int64        `json:"total_cents"`
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	kit.WriteJSON(w, http.StatusOK, cartResp{
		Items:      sess.Cart.Items(),
		TotalCents: sess.Cart.TotalCents(),
	})
}

type addItemReq struct {
	ItemName string `json:"item_name"`
}

type entryResp struct {
	Key string `json:"key"`
	Qty int    `json:"qty"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req addItemReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemName == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "item_name required", nil)
		return
	}

	it, ok := s.Catalog.Get(req.ItemName)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "item not found", map[string]any{"name": req.ItemName})
		return
	}

	qty := sess.Cart.Add(cart.Product{Key: it.Name, Name: it.Name, PriceCents: it.PriceCents})
	kit.WriteJSON(w, http.StatusCreated, entryResp{Key: it.Name, Qty: qty})
}

type addAppReq struct {
	AppID string `json:"app_id"`
}

func (s *Server) handleAddApp(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req addAppReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.AppID = strings.TrimSpace(req.AppID)
	if req.AppID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "app_id required", nil)
		return
	}

	l, ok := s.Market.Get(req.AppID)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "app not found", map[string]any{"id": req.AppID})
		return
	}

	qty := sess.Cart.Add(cart.Product{Key: l.ID, Name: l.Name, PriceCents: l.PriceCents})
	kit.WriteJSON(w, http.StatusCreated, entryResp{Key: l.ID, Qty: qty})
}

type adjustReq struct {
	Delta int `json:"delta"`
}

// handleAdjustEntry applies positive deltas in a single bulk add and
// negative deltas one unit at a time, so decrementing past zero removes
// the entry instead of going negative.
func (s *Server) handleAdjustEntry(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	key := urlParam(r, "key")

	var req adjustReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if req.Delta == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "delta must be non-zero", nil)
		return
	}

	e, ok := sess.Cart.Get(key)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not in cart", map[string]any{"key": key})
		return
	}

	qty := e.Qty
	if req.Delta > 0 {
		// One arithmetic step: a huge delta must not turn into a huge loop.
		qty = sess.Cart.AddN(e.Product, req.Delta)
	} else {
		for i := 0; i > req.Delta; i-- {
			var present bool
			if qty, present = sess.Cart.Decrement(key); !present {
				break
			}
		}
	}

	kit.WriteJSON(w, http.StatusOK, entryResp{Key: key, Qty: qty})
}

func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	// Removing an absent entry is a no-op, not an error.
	sess.Cart.Remove(urlParam(r, "key"))
	w.WriteHeader(http.StatusNoContent)
}

type checkoutResp struct {
	Status     string `json:"status"`
	TotalCents int64  `json:"total_cents"`
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	total, err := sess.Cart.Checkout()
	if errors.Is(err, cart.ErrEmptyCart) {
		kit.WriteError(w, r, http.StatusConflict, "nothing to purchase", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, checkoutResp{Status: "complete", TotalCents: total})
}
