// Package domain contains the business types of domain-hoster: registry records,
// the port policy, hostname rules and the errors shared across layers.
package domain

// DomainStatus is the lifecycle state of a registered domain.
type DomainStatus string

const (
	DomainStatusActive   DomainStatus = "active"
	DomainStatusDisabled DomainStatus = "disabled"
	DomainStatusFailed   DomainStatus = "failed"
)

// DomainRecord is the persisted state of one provisioned domain.
type DomainRecord struct {
	Port   int          `json:"port" db:"port"`
	Status DomainStatus `json:"status" db:"status"`
}

// Registry maps a domain name to its record. Every key corresponds to a
// proxy configuration that has already been applied on the host.
type Registry map[string]DomainRecord

// Has reports whether the domain is registered.
func (r Registry) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// AddDomainRequest is the validated input of the add-domain workflow.
type AddDomainRequest struct {
	Domain string
	Port   int
}
