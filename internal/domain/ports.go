package domain

// Default admissible backend port range.
const (
	DefaultMinPort = 2000
	DefaultMaxPort = 9000
)

// PortRange is an inclusive range of backend ports.
type PortRange struct {
	Min int
	Max int
}

// DefaultPortRange returns the 2000-9000 range.
func DefaultPortRange() PortRange {
	return PortRange{Min: DefaultMinPort, Max: DefaultMaxPort}
}

// Allows reports whether port lies within the range, bounds included.
func (r PortRange) Allows(port int) bool {
	return r.Min <= port && port <= r.Max
}

// Check returns a *PortRangeError when port is outside the range.
func (r PortRange) Check(port int) error {
	if !r.Allows(port) {
		return &PortRangeError{Port: port, Range: r}
	}
	return nil
}
