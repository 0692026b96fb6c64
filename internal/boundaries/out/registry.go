// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (filesystem, sqlite, DNS, nginx).
package out

import (
	"context"

	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// RegistryStore persists the full domain registry.
// There is no partial-update API: callers read the whole snapshot, modify it
// and write it back.
type RegistryStore interface {
	// Load returns the current snapshot. An uninitialized store yields an
	// empty registry, not an error.
	Load(ctx context.Context) (domain.Registry, error)

	// Save replaces the persisted registry. Concurrent readers observe either
	// the previous or the new complete state.
	Save(ctx context.Context, registry domain.Registry) error
}
