package out

import "context"

// ProxyProvisioner installs and activates a reverse-proxy virtual host.
type ProxyProvisioner interface {
	// Provision renders, installs and activates the vhost for domain on port,
	// then validates and reloads the proxy. A failure is returned as a
	// *domain.ProvisionError carrying the failing step's diagnostics.
	Provision(ctx context.Context, domain string, port int) error
}
