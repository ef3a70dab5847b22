package web

import (
	"net/http"

	"github.com/vbonduro/storefront/internal/domain"
	"github.com/vbonduro/storefront/internal/service"
)

// Store routes sit under /api/stores rather than a store-scoped prefix, so
// they get plain handlers instead of the generic verb set.
func (s *Server) registerStoreRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/stores", s.handleCreateStore)
	mux.HandleFunc("GET /api/stores", s.handleListStores)
	mux.HandleFunc("GET /api/stores/{storeId}", s.handleGetStore)
	mux.HandleFunc("PATCH /api/stores/{storeId}", s.handleUpdateStore)
	mux.HandleFunc("DELETE /api/stores/{storeId}", s.handleDeleteStore)
}

func (s *Server) handleCreateStore(w http.ResponseWriter, r *http.Request) {
	userID := s.caller(r)
	if userID == "" {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}
	in, err := decodeJSON[service.StoreInput](r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if msg := in.Validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	created, err := s.service.CreateStore(r.Context(), userID, in)
	if err != nil {
		s.fail(w, "stores_post", err)
		return
	}
	s.respondJSON(w, http.StatusOK, created)
}

func (s *Server) handleListStores(w http.ResponseWriter, r *http.Request) {
	userID := s.caller(r)
	if userID == "" {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}
	stores, err := s.service.ListStores(r.Context(), userID)
	if err != nil {
		s.fail(w, "stores_list", err)
		return
	}
	if stores == nil {
		stores = []*domain.Store{}
	}
	s.respondJSON(w, http.StatusOK, stores)
}

func (s *Server) handleGetStore(w http.ResponseWriter, r *http.Request) {
	st, err := s.service.GetStore(r.Context(), r.PathValue("storeId"))
	if err != nil {
		s.fail(w, "stores_get", err)
		return
	}
	s.respondJSON(w, http.StatusOK, st)
}

func (s *Server) handleUpdateStore(w http.ResponseWriter, r *http.Request) {
	userID := s.caller(r)
	if userID == "" {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}
	in, err := decodeJSON[service.StoreInput](r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if msg := in.Validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	updated, err := s.service.UpdateStore(r.Context(), userID, r.PathValue("storeId"), in)
	if err != nil {
		s.fail(w, "stores_patch", err)
		return
	}
	s.respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteStore(w http.ResponseWriter, r *http.Request) {
	userID := s.caller(r)
	if userID == "" {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}
	deleted, err := s.service.DeleteStore(r.Context(), userID, r.PathValue("storeId"))
	if err != nil {
		s.fail(w, "stores_delete", err)
		return
	}
	s.respondJSON(w, http.StatusOK, deleted)
}
