// Package dto defines the JSON bodies of the HTTP API.
package dto

import "encoding/json"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// CreateDomainRequest is the body of POST /domains. Port is kept raw so that
// numbers and numeric strings can both be accepted.
type CreateDomainRequest struct {
	Domain string          `json:"domain"`
	Port   json.RawMessage `json:"port"`
}

// DomainEntry is one registry entry as returned by GET /domains.
type DomainEntry struct {
	Port   int    `json:"port"`
	Status string `json:"status"`
}

// DomainCreatedResponse is returned when a domain was deployed.
type DomainCreatedResponse struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
	Port    int    `json:"port"`
}

// DomainRemovedResponse is returned when a domain was removed.
type DomainRemovedResponse struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
}
