package web

import (
	"context"
	"encoding/json"
	"net/http"
)

// validated is implemented by request bodies that report their first missing
// required field. The message order is part of the API contract.
type validated interface {
	Validate() string
}

func decodeJSON[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

// The generic verb handlers below implement the shared request ladder for
// store-scoped resources: 401 without identity, 400 on the first missing
// field, 403 when the caller does not own the store, then the operation.
// Methods cannot take type parameters, so these are free functions over the
// server.

func handleCreate[T validated, R any](s *Server, tag string, create func(ctx context.Context, userID, storeID string, in T) (*R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := s.caller(r)
		if userID == "" {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}
		in, err := decodeJSON[T](r)
		if err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if msg := in.Validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		out, err := create(r.Context(), userID, r.PathValue("storeId"), in)
		if err != nil {
			s.fail(w, tag, err)
			return
		}
		s.respondJSON(w, http.StatusOK, out)
	}
}

func handleUpdate[T validated, R any](s *Server, tag, idParam string, update func(ctx context.Context, userID, storeID, id string, in T) (*R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := s.caller(r)
		if userID == "" {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}
		in, err := decodeJSON[T](r)
		if err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if msg := in.Validate(); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		out, err := update(r.Context(), userID, r.PathValue("storeId"), r.PathValue(idParam), in)
		if err != nil {
			s.fail(w, tag, err)
			return
		}
		s.respondJSON(w, http.StatusOK, out)
	}
}

func handleDelete[R any](s *Server, tag, idParam string, del func(ctx context.Context, userID, storeID, id string) (*R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := s.caller(r)
		if userID == "" {
			http.Error(w, "Unauthenticated", http.StatusUnauthorized)
			return
		}
		out, err := del(r.Context(), userID, r.PathValue("storeId"), r.PathValue(idParam))
		if err != nil {
			s.fail(w, tag, err)
			return
		}
		s.respondJSON(w, http.StatusOK, out)
	}
}

// handleGet serves the public single-record read. A missing record is not an
// error; it renders as JSON null, which storefront clients check for.
func handleGet[R any](s *Server, tag, idParam string, get func(ctx context.Context, id string) (*R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := get(r.Context(), r.PathValue(idParam))
		if err != nil {
			s.fail(w, tag, err)
			return
		}
		s.respondJSON(w, http.StatusOK, out)
	}
}

func handleList[R any](s *Server, tag string, list func(ctx context.Context, storeID string) ([]*R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := list(r.Context(), r.PathValue("storeId"))
		if err != nil {
			s.fail(w, tag, err)
			return
		}
		if out == nil {
			out = []*R{}
		}
		s.respondJSON(w, http.StatusOK, out)
	}
}
