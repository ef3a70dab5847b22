package web

import "net/http"

func (s *Server) registerCategoryRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/{storeId}/categories", handleCreate(s, "categories_post", s.service.CreateCategory))
	mux.Handle("GET /api/{storeId}/categories", handleList(s, "categories_list", s.service.ListCategories))
	mux.Handle("GET /api/{storeId}/categories/{categoryId}", handleGet(s, "categories_get", "categoryId", s.service.GetCategory))
	mux.Handle("PATCH /api/{storeId}/categories/{categoryId}", handleUpdate(s, "categories_patch", "categoryId", s.service.UpdateCategory))
	mux.Handle("DELETE /api/{storeId}/categories/{categoryId}", handleDelete(s, "categories_delete", "categoryId", s.service.DeleteCategory))
}
