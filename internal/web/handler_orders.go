package web

import "net/http"

func (s *Server) registerOrderRoutes(mux *http.ServeMux) {
	mux.Handle("POST /api/{storeId}/orders", handleCreate(s, "orders_post", s.service.CreateOrder))
	mux.Handle("GET /api/{storeId}/orders", handleList(s, "orders_list", s.service.ListOrders))
	mux.Handle("GET /api/{storeId}/orders/{orderId}", handleGet(s, "orders_get", "orderId", s.service.GetOrder))
	mux.Handle("PATCH /api/{storeId}/orders/{orderId}", handleUpdate(s, "orders_patch", "orderId", s.service.UpdateOrder))
	mux.Handle("DELETE /api/{storeId}/orders/{orderId}", handleDelete(s, "orders_delete", "orderId", s.service.DeleteOrder))
}
