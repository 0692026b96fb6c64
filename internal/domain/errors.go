package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business-level errors that can occur in the system.
// Messages are user-facing: the HTTP adapter returns them verbatim.
var (
	// Validation errors
	ErrInvalidJSON       = errors.New("Invalid JSON body")
	ErrFieldsRequired    = errors.New("domain and port are required")
	ErrPortNotInteger    = errors.New("port must be an integer")
	ErrPortOutOfRange    = errors.New("port out of range")
	ErrInvalidHostname   = errors.New("domain must be a valid hostname")
	ErrOwnershipMismatch = errors.New("Domain A record does not point to VPS IP")

	// Registry errors
	ErrDomainExists   = errors.New("Domain already exists")
	ErrDomainNotFound = errors.New("Domain not found")
	ErrStorage        = errors.New("registry storage failure")

	// Provisioning errors
	ErrProvisioningFailed = errors.New("NGINX deployment failed")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PortRangeError reports a port outside the admissible range.
type PortRangeError struct {
	Port  int
	Range PortRange
}

func (e *PortRangeError) Error() string {
	return fmt.Sprintf("Port must be between %d and %d", e.Range.Min, e.Range.Max)
}

// Is makes errors.Is(err, ErrPortOutOfRange) hold.
func (e *PortRangeError) Is(target error) bool {
	return target == ErrPortOutOfRange
}

// ProvisionStep names a stage of vhost provisioning.
type ProvisionStep string

const (
	StepRender   ProvisionStep = "render"
	StepWrite    ProvisionStep = "write"
	StepActivate ProvisionStep = "activate"
	StepTest     ProvisionStep = "test"
	StepReload   ProvisionStep = "reload"
	StepHelper   ProvisionStep = "helper"
)

// ProvisionError carries the diagnostic output of the step that failed.
type ProvisionError struct {
	Step   ProvisionStep
	Output string
	Err    error
}

func (e *ProvisionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("provision %s failed: %s", e.Step, e.Output)
	}
	return fmt.Sprintf("provision %s failed: %v", e.Step, e.Err)
}

func (e *ProvisionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProvisioningFailed}
	}
	return []error{ErrProvisioningFailed, e.Err}
}

// Diagnostics returns the captured output, falling back to the cause.
func (e *ProvisionError) Diagnostics() string {
	if e.Output != "" {
		return e.Output
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
