package web

import "net/http"

func (s *Server) registerBillboardRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/{storeId}/billboards", handleCreate(s, "billboards_post", s.service.CreateBillboard))
	mux.Handle("GET /api/{storeId}/billboards", handleList(s, "billboards_list", s.service.ListBillboards))
	mux.Handle("GET /api/{storeId}/billboards/{billboardId}", handleGet(s, "billboards_get", "billboardId", s.service.GetBillboard))
	mux.Handle("PATCH /api/{storeId}/billboards/{billboardId}", handleUpdate(s, "billboards_patch", "billboardId", s.service.UpdateBillboard))
	mux.Handle("DELETE /api/{storeId}/billboards/{billboardId}", handleDelete(s, "billboards_delete", "billboardId", s.service.DeleteBillboard))
}
