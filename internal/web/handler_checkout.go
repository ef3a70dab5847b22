package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vbonduro/storefront/internal/domain"
)

func (s *Server) registerCheckoutRoutes(mux *http.ServeMux) {
	mux.HandleFunc("OPTIONS /api/{storeId}/checkout", s.handleCheckoutPreflight)
	mux.HandleFunc("POST /api/{storeId}/checkout", s.handleCheckout)
}

// Checkout is called cross-origin from the storefront, so it is the one
// route that answers preflights and carries CORS headers.
func (s *Server) corsHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", s.storefrontOrigin)
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

func (s *Server) handleCheckoutPreflight(w http.ResponseWriter, r *http.Request) {
	s.corsHeaders(w)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	s.corsHeaders(w)

	// Decoded as []any so a present-but-malformed list can be told apart from
	// a missing one.
	var body struct {
		ProductIDs []any `json:"productIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.ProductIDs) == 0 {
		http.Error(w, "Product ids are required", http.StatusBadRequest)
		return
	}
	ids := make([]string, 0, len(body.ProductIDs))
	for _, v := range body.ProductIDs {
		id, ok := v.(string)
		if !ok {
			http.Error(w, "Invalid product IDs format", http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	url, err := s.service.Checkout(r.Context(), r.PathValue("storeId"), ids)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, "No products found", http.StatusNotFound)
			return
		}
		s.fail(w, "checkout_post", err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
