package web

import "net/http"

func (s *Server) registerSizeRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/{storeId}/sizes", handleCreate(s, "sizes_post", s.service.CreateSize))
	mux.Handle("GET /api/{storeId}/sizes", handleList(s, "sizes_list", s.service.ListSizes))
	mux.Handle("GET /api/{storeId}/sizes/{sizeId}", handleGet(s, "sizes_get", "sizeId", s.service.GetSize))
	mux.Handle("PATCH /api/{storeId}/sizes/{sizeId}", handleUpdate(s, "sizes_patch", "sizeId", s.service.UpdateSize))
	mux.Handle("DELETE /api/{storeId}/sizes/{sizeId}", handleDelete(s, "sizes_delete", "sizeId", s.service.DeleteSize))
}

func (s *Server) registerColorRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/{storeId}/colors", handleCreate(s, "colors_post", s.service.CreateColor))
	mux.Handle("GET /api/{storeId}/colors", handleList(s, "colors_list", s.service.ListColors))
	mux.Handle("GET /api/{storeId}/colors/{colorId}", handleGet(s, "colors_get", "colorId", s.service.GetColor))
	mux.Handle("PATCH /api/{storeId}/colors/{colorId}", handleUpdate(s, "colors_patch", "colorId", s.service.UpdateColor))
	mux.Handle("DELETE /api/{storeId}/colors/{colorId}", handleDelete(s, "colors_delete", "colorId", s.service.DeleteColor))
}
