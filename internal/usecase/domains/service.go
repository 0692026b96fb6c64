// Package domains implements the domain registration use case.
package domains

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// Default timeouts for the blocking steps of the add workflow.
const (
	DefaultVerifyTimeout    = 5 * time.Second
	DefaultProvisionTimeout = 60 * time.Second
)

// Config holds the policy values of the registration workflow.
type Config struct {
	Ports            domain.PortRange
	VerifyTimeout    time.Duration
	ProvisionTimeout time.Duration
}

// Service implements the DomainService interface.
//
// Each domain is serialized by its own lock for the whole add or remove
// workflow. Writes to the registry additionally go through commitMu, which is
// held only for load+mutate+save and never while DNS or provisioning runs.
type Service struct {
	store       out.RegistryStore
	verifier    out.OwnershipVerifier
	provisioner out.ProxyProvisioner
	cfg         Config

	domainLocks *keyedMutex
	commitMu    sync.Mutex
}

// NewService creates a new domain service.
func NewService(
	store out.RegistryStore,
	verifier out.OwnershipVerifier,
	provisioner out.ProxyProvisioner,
	cfg Config,
) *Service {
	if cfg.Ports == (domain.PortRange{}) {
		cfg.Ports = domain.DefaultPortRange()
	}
	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = DefaultVerifyTimeout
	}
	if cfg.ProvisionTimeout <= 0 {
		cfg.ProvisionTimeout = DefaultProvisionTimeout
	}

	return &Service{
		store:       store,
		verifier:    verifier,
		provisioner: provisioner,
		cfg:         cfg,
		domainLocks: newKeyedMutex(),
	}
}

// List returns the full registry snapshot.
func (s *Service) List(ctx context.Context) (domain.Registry, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListDomains",
	})
	log := zerowrap.FromCtx(ctx)

	registry, err := s.load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load registry")
		return nil, err
	}

	log.Debug().Int(zerowrap.FieldCount, len(registry)).Msg("registry loaded")
	return registry, nil
}

// Add runs the add-domain workflow: port policy, DNS ownership, conflict
// check, provisioning and finally the registry commit. The registry is only
// written once provisioning fully succeeded.
func (s *Service) Add(ctx context.Context, req domain.AddDomainRequest) (domain.DomainRecord, error) {
	name := domain.NormalizeHostname(req.Domain)

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "AddDomain",
		"domain":              name,
		"port":                req.Port,
	})
	log := zerowrap.FromCtx(ctx)

	if name == "" {
		return domain.DomainRecord{}, domain.ErrFieldsRequired
	}
	if err := s.cfg.Ports.Check(req.Port); err != nil {
		log.Debug().Msg("port outside admissible range")
		return domain.DomainRecord{}, err
	}
	if err := domain.ValidateHostname(name); err != nil {
		log.Debug().Msg("invalid hostname")
		return domain.DomainRecord{}, err
	}

	unlock := s.domainLocks.Lock(name)
	defer unlock()

	if !s.verifyOwnership(ctx, name) {
		log.Info().Msg("domain does not resolve to this server")
		return domain.DomainRecord{}, domain.ErrOwnershipMismatch
	}

	registry, err := s.load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load registry")
		return domain.DomainRecord{}, err
	}
	if registry.Has(name) {
		log.Info().Msg("domain already registered")
		return domain.DomainRecord{}, domain.ErrDomainExists
	}

	if err := s.provision(ctx, name, req.Port); err != nil {
		log.Error().Err(err).Msg("provisioning failed")
		return domain.DomainRecord{}, err
	}

	record := domain.DomainRecord{Port: req.Port, Status: domain.DomainStatusActive}
	err = s.commit(ctx, func(registry domain.Registry) error {
		registry[name] = record
		return nil
	})
	if err != nil {
		// The vhost is live but unrecorded; nothing removes it.
		log.Error().Err(err).Msg("failed to commit registry after provisioning")
		return domain.DomainRecord{}, err
	}

	log.Info().Msg("domain registered")
	return record, nil
}

// Remove deletes the domain from the registry. Proxy files on disk are left
// in place.
func (s *Service) Remove(ctx context.Context, name string) error {
	name = domain.NormalizeHostname(name)

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "RemoveDomain",
		"domain":              name,
	})
	log := zerowrap.FromCtx(ctx)

	unlock := s.domainLocks.Lock(name)
	defer unlock()

	err := s.commit(ctx, func(registry domain.Registry) error {
		if !registry.Has(name) {
			return domain.ErrDomainNotFound
		}
		delete(registry, name)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDomainNotFound) {
			log.Debug().Msg("domain not registered")
		} else {
			log.Error().Err(err).Msg("failed to remove domain")
		}
		return err
	}

	log.Info().Msg("domain removed")
	return nil
}

// verifyOwnership runs the DNS check under the verify timeout.
func (s *Service) verifyOwnership(ctx context.Context, name string) bool {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.VerifyTimeout)
	defer cancel()
	return s.verifier.Verify(ctx, name)
}

// provision runs the provisioner detached from the caller's cancellation:
// once started it finishes or hits its own timeout.
func (s *Service) provision(ctx context.Context, name string, port int) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ProvisionTimeout)
	defer cancel()

	err := s.provisioner.Provision(ctx, name, port)
	if err == nil {
		return nil
	}

	var provErr *domain.ProvisionError
	if errors.As(err, &provErr) {
		return err
	}
	return &domain.ProvisionError{Step: domain.StepHelper, Err: err}
}

// commit applies mutate to a fresh snapshot and saves it. The snapshot is
// always re-read under commitMu so no write is based on a stale read.
func (s *Service) commit(ctx context.Context, mutate func(domain.Registry) error) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	registry, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := mutate(registry); err != nil {
		return err
	}

	if err := s.store.Save(ctx, registry); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context) (domain.Registry, error) {
	registry, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	if registry == nil {
		registry = domain.Registry{}
	}
	return registry, nil
}
