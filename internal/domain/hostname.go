package domain

import (
	"regexp"
	"strings"
)

// maxHostnameLength is the RFC 1035 limit on a full domain name.
const maxHostnameLength = 253

// labelRegex matches a single DNS label: letters, digits and inner hyphens.
var labelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// NormalizeHostname lowercases the name and drops a single trailing dot.
func NormalizeHostname(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".")
	return strings.ToLower(name)
}

// ValidateHostname checks that name is a syntactically valid hostname.
// The name also becomes a file name under the nginx sites directories, so
// anything outside the hostname alphabet is rejected.
func ValidateHostname(name string) error {
	if name == "" || len(name) > maxHostnameLength {
		return ErrInvalidHostname
	}
	for _, label := range strings.Split(name, ".") {
		if !labelRegex.MatchString(label) {
			return ErrInvalidHostname
		}
	}
	return nil
}
