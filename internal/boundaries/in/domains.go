// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// DomainService defines the contract for domain registration operations.
type DomainService interface {
	// List returns the full registry snapshot.
	List(ctx context.Context) (domain.Registry, error)

	// Add verifies ownership, provisions the vhost and records the domain.
	Add(ctx context.Context, req domain.AddDomainRequest) (domain.DomainRecord, error)

	// Remove deletes the domain from the registry.
	Remove(ctx context.Context, name string) error
}
