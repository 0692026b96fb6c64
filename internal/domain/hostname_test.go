package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHostname(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		wantErr bool
	}{
		{name: "simple domain", host: "example.com"},
		{name: "subdomain", host: "app.example.com"},
		{name: "hyphenated", host: "my-app.example.com"},
		{name: "single label", host: "localhost"},
		{name: "digits", host: "123.example.com"},
		{name: "empty", host: "", wantErr: true},
		{name: "path traversal", host: "../etc/passwd", wantErr: true},
		{name: "slash", host: "example.com/evil", wantErr: true},
		{name: "double dots", host: "foo..bar", wantErr: true},
		{name: "leading dot", host: ".example.com", wantErr: true},
		{name: "leading hyphen", host: "-bad.example.com", wantErr: true},
		{name: "trailing hyphen", host: "bad-.example.com", wantErr: true},
		{name: "space", host: "has space.com", wantErr: true},
		{name: "port suffix", host: "example.com:8080", wantErr: true},
		{name: "underscore", host: "bad_name.com", wantErr: true},
		{name: "label too long", host: strings.Repeat("a", 64) + ".com", wantErr: true},
		{name: "name too long", host: strings.Repeat("a.", 127) + "com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHostname(tt.host)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidHostname)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeHostname(t *testing.T) {
	assert.Equal(t, "example.com", NormalizeHostname(" Example.COM. "))
	assert.Equal(t, "app.example.com", NormalizeHostname("app.example.com"))
}
