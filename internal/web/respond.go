package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vbonduro/storefront/internal/domain"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// fail translates service errors into the API's plain-text failure responses.
// Unrecognized errors are logged under the handler tag and surfaced as a 500.
func (s *Server) fail(w http.ResponseWriter, tag string, err error) {
	var notFound *domain.NotFoundError
	var conflict *domain.ConflictError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusForbidden)
	case errors.As(err, &notFound):
		http.Error(w, notFound.Error(), http.StatusBadRequest)
	case errors.As(err, &conflict):
		http.Error(w, conflict.Reason, http.StatusBadRequest)
	default:
		s.logger.Error("request failed", "handler", tag, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// caller returns the user id carried by the request's bearer token, or ""
// when the request has no valid identity.
func (s *Server) caller(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return ""
	}
	userID, err := s.verifier.Verify(token)
	if err != nil {
		return ""
	}
	return userID
}
