package web

import (
	"net/http"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/store"
)

func (s *Server) registerProductRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/{storeId}/products", handleCreate(s, "products_post", s.service.CreateProduct))
	mux.HandleFunc("GET /api/{storeId}/products", s.handleListProducts)
	mux.Handle("GET /api/{storeId}/products/{productId}", handleGet(s, "products_get", "productId", s.service.GetProduct))
	mux.HandleFunc("POST /api/{storeId}/products/{productId}", s.handlePurchaseProduct)
	mux.Handle("PATCH /api/{storeId}/products/{productId}", handleUpdate(s, "products_patch", "productId", s.service.UpdateProduct))
	mux.Handle("DELETE /api/{storeId}/products/{productId}", handleDelete(s, "products_delete", "productId", s.service.DeleteProduct))
}

// handleListProducts serves the storefront catalog: archived products are
// excluded, and categoryId/sizeId/colorId/isFeatured query params narrow the
// result. isFeatured is a presence flag.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ProductFilter{
		CategoryID: q.Get("categoryId"),
		SizeID:     q.Get("sizeId"),
		ColorID:    q.Get("colorId"),
	}
	if q.Get("isFeatured") != "" {
		featured := true
		filter.Featured = &featured
	}

	products, err := s.service.ListProducts(r.Context(), r.PathValue("storeId"), filter)
	if err != nil {
		s.fail(w, "products_list", err)
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	s.respondJSON(w, http.StatusOK, products)
}

// handlePurchaseProduct is the storefront buy action: it decrements the
// product's quantity and returns the product.
func (s *Server) handlePurchaseProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.PurchaseProduct(r.Context(), r.PathValue("storeId"), r.PathValue("productId"))
	if err != nil {
		s.fail(w, "products_purchase", err)
		return
	}
	s.respondJSON(w, http.StatusOK, p)
}
