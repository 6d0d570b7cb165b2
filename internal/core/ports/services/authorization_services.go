package services

import (
	"context"

	"github.com/fleetops/car_rental_app/internal/core/domain"
	"github.com/fleetops/car_rental_app/internal/dto"
)

// AuthorizationSvcFacade exposes the authorization lifecycle engine.
type AuthorizationSvcFacade interface {
	// Issue opens a new authorization for an available car and marks the car
	// rented, atomically.
	Issue(ctx context.Context, req dto.IssueAuthorizationRequest) (*domain.Authorization, error)

	// End closes an open authorization: fixes the billed amount, optionally
	// posts the closure journal entry, and optionally renews into a new open
	// authorization for the following billing week. Atomic.
	End(ctx context.Context, authorizationID string, opts dto.EndAuthorizationOptions) (*dto.EndAuthorizationResult, error)

	// GetAuthorization retrieves an authorization by its unique identifier.
	GetAuthorization(ctx context.Context, authorizationID string) (*domain.Authorization, error)

	// ListAuthorizations retrieves authorizations newest first, optionally only open ones.
	ListAuthorizations(ctx context.Context, onlyOpen bool) ([]domain.Authorization, error)
}
