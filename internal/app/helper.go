package app

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// HelperSettings are the deploy settings resolved by the API server. The
// server passes them on the provision helper's command line, since sudo
// resets the environment the server was configured from. Zero values leave
// the helper's own configuration in place.
type HelperSettings struct {
	PortsMin        int
	PortsMax        int
	SitesAvailable  string
	SitesEnabled    string
	Template        string
	DefaultTemplate bool
	TestCommand     []string
	ReloadCommand   []string
	Timeout         time.Duration
}

// BindHelperFlags registers the helper settings on fs.
func BindHelperFlags(fs *pflag.FlagSet, s *HelperSettings) {
	fs.IntVar(&s.PortsMin, "ports-min", 0, "Lowest admissible backend port")
	fs.IntVar(&s.PortsMax, "ports-max", 0, "Highest admissible backend port")
	fs.StringVar(&s.SitesAvailable, "sites-available", "", "nginx sites-available directory")
	fs.StringVar(&s.SitesEnabled, "sites-enabled", "", "nginx sites-enabled directory")
	fs.StringVar(&s.Template, "template", "", "vhost template file")
	fs.BoolVar(&s.DefaultTemplate, "default-template", false, "Use the built-in vhost template")
	fs.StringArrayVar(&s.TestCommand, "test-command", nil, "nginx configuration test command, one flag per argument")
	fs.StringArrayVar(&s.ReloadCommand, "reload-command", nil, "nginx reload command, one flag per argument")
	fs.DurationVar(&s.Timeout, "timeout", 0, "Deploy timeout")
}

// helperSettings captures c's deploy settings with absolute paths.
func (c Config) helperSettings() (HelperSettings, error) {
	s := HelperSettings{
		PortsMin:      c.Ports.Min,
		PortsMax:      c.Ports.Max,
		TestCommand:   c.Nginx.TestCommand,
		ReloadCommand: c.Nginx.ReloadCommand,
		Timeout:       c.Provision.Timeout,
	}

	var err error
	if s.SitesAvailable, err = filepath.Abs(c.Nginx.SitesAvailable); err != nil {
		return HelperSettings{}, fmt.Errorf("failed to resolve sites-available: %w", err)
	}
	if s.SitesEnabled, err = filepath.Abs(c.Nginx.SitesEnabled); err != nil {
		return HelperSettings{}, fmt.Errorf("failed to resolve sites-enabled: %w", err)
	}
	if c.Nginx.Template == "" {
		s.DefaultTemplate = true
	} else if s.Template, err = filepath.Abs(c.Nginx.Template); err != nil {
		return HelperSettings{}, fmt.Errorf("failed to resolve template: %w", err)
	}
	return s, nil
}

// args renders s as flags understood by BindHelperFlags. The "=" form keeps
// command arguments such as "-t" from being read as flags.
func (s HelperSettings) args() []string {
	var args []string
	if s.PortsMin != 0 {
		args = append(args, "--ports-min="+strconv.Itoa(s.PortsMin))
	}
	if s.PortsMax != 0 {
		args = append(args, "--ports-max="+strconv.Itoa(s.PortsMax))
	}
	if s.SitesAvailable != "" {
		args = append(args, "--sites-available="+s.SitesAvailable)
	}
	if s.SitesEnabled != "" {
		args = append(args, "--sites-enabled="+s.SitesEnabled)
	}
	if s.DefaultTemplate {
		args = append(args, "--default-template")
	} else if s.Template != "" {
		args = append(args, "--template="+s.Template)
	}
	for _, a := range s.TestCommand {
		args = append(args, "--test-command="+a)
	}
	for _, a := range s.ReloadCommand {
		args = append(args, "--reload-command="+a)
	}
	if s.Timeout > 0 {
		args = append(args, "--timeout="+s.Timeout.String())
	}
	return args
}

// apply overrides cfg with every setting present in s.
func (s HelperSettings) apply(cfg *Config) {
	if s.PortsMin != 0 {
		cfg.Ports.Min = s.PortsMin
	}
	if s.PortsMax != 0 {
		cfg.Ports.Max = s.PortsMax
	}
	if s.SitesAvailable != "" {
		cfg.Nginx.SitesAvailable = s.SitesAvailable
	}
	if s.SitesEnabled != "" {
		cfg.Nginx.SitesEnabled = s.SitesEnabled
	}
	if s.DefaultTemplate {
		cfg.Nginx.Template = ""
	} else if s.Template != "" {
		cfg.Nginx.Template = s.Template
	}
	if len(s.TestCommand) > 0 {
		cfg.Nginx.TestCommand = s.TestCommand
	}
	if len(s.ReloadCommand) > 0 {
		cfg.Nginx.ReloadCommand = s.ReloadCommand
	}
	if s.Timeout > 0 {
		cfg.Provision.Timeout = s.Timeout
	}
}
