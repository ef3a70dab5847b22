package service

import (
	"context"
	"fmt"

	"github.com/vbonduro/storefront/internal/domain"
)

// authorizeStore is the ownership guard: every mutating operation calls it
// before touching the repository. It reports ErrUnauthenticated when no
// caller identity is present and ErrUnauthorized when the caller does not own
// the target store. Reads never call it; the read surface is public.
func (s *Service) authorizeStore(ctx context.Context, userID, storeID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	st, err := s.stores.GetByIDAndUser(ctx, storeID, userID)
	if err != nil {
		return fmt.Errorf("failed to authorize store: %w", err)
	}
	if st == nil {
		return domain.ErrUnauthorized
	}
	return nil
}
