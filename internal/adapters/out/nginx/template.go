package nginx

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
)

//go:embed templates/proxy.conf.tmpl
var defaultTemplate string

// VHost is the data a vhost template is rendered with.
type VHost struct {
	Domain string
	Port   int
}

// Template renders vhost configuration files.
//
// Besides {{ .Domain }} and {{ .Port }}, templates may use the bare
// {{ domain }} and {{ port }} forms.
type Template struct {
	name   string
	source string
}

// DefaultTemplate returns the embedded reverse proxy template.
func DefaultTemplate() *Template {
	return &Template{name: "proxy.conf", source: defaultTemplate}
}

// LoadTemplate reads a template from path. An empty path selects the default.
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return DefaultTemplate(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read nginx template: %w", err)
	}

	t := &Template{name: path, source: string(data)}
	if _, err := t.parse(VHost{}); err != nil {
		return nil, err
	}
	return t, nil
}

// Render executes the template for one vhost.
func (t *Template) Render(vhost VHost) ([]byte, error) {
	tmpl, err := t.parse(vhost)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vhost); err != nil {
		return nil, fmt.Errorf("failed to render nginx template: %w", err)
	}
	return buf.Bytes(), nil
}

func (t *Template) parse(vhost VHost) (*template.Template, error) {
	tmpl, err := template.New(t.name).
		Option("missingkey=error").
		Funcs(template.FuncMap{
			"domain": func() string { return vhost.Domain },
			"port":   func() int { return vhost.Port },
		}).
		Parse(t.source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nginx template: %w", err)
	}
	return tmpl, nil
}
