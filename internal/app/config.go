package app

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

// Registry backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Provisioning modes.
const (
	ProvisionExec  = "exec"
	ProvisionLocal = "local"
)

// Config holds the application configuration. It is built once at startup
// and passed by value to constructors.
type Config struct {
	Server struct {
		Host            string        `mapstructure:"host"`
		Port            int           `mapstructure:"port"`
		SecretKey       string        `mapstructure:"secret_key"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	DNS struct {
		TargetIP   string        `mapstructure:"target_ip"`
		Nameserver string        `mapstructure:"nameserver"` // empty uses the system resolver
		Timeout    time.Duration `mapstructure:"timeout"`
	} `mapstructure:"dns"`

	Registry struct {
		Backend string `mapstructure:"backend"` // "json" or "sqlite"
		Path    string `mapstructure:"path"`
	} `mapstructure:"registry"`

	Ports struct {
		Min int `mapstructure:"min"`
		Max int `mapstructure:"max"`
	} `mapstructure:"ports"`

	Provision struct {
		Mode    string        `mapstructure:"mode"` // "exec" or "local"
		Command []string      `mapstructure:"command"`
		Script  string        `mapstructure:"script"` // legacy deploy script run with python3
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"provision"`

	Nginx struct {
		Template       string   `mapstructure:"template"`
		SitesAvailable string   `mapstructure:"sites_available"`
		SitesEnabled   string   `mapstructure:"sites_enabled"`
		TestCommand    []string `mapstructure:"test_command"`
		ReloadCommand  []string `mapstructure:"reload_command"`
	} `mapstructure:"nginx"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled"`
			Path       string `mapstructure:"path"`
			MaxSize    int    `mapstructure:"max_size"`
			MaxBackups int    `mapstructure:"max_backups"`
			MaxAge     int    `mapstructure:"max_age"`
		} `mapstructure:"file"`
	} `mapstructure:"logging"`

	API struct {
		AllowedCIDRs   []string `mapstructure:"allowed_cidrs"`
		TrustedProxies []string `mapstructure:"trusted_proxies"`
		RateLimit      struct {
			Enabled   bool    `mapstructure:"enabled"`
			GlobalRPS float64 `mapstructure:"global_rps"`
			PerIPRPS  float64 `mapstructure:"per_ip_rps"`
			Burst     int     `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `mapstructure:"-"`
	// EnvFile is the absolute path of the .env file that was loaded, if any.
	EnvFile string `mapstructure:"-"`
}

// legacyEnv maps config keys to the environment variables used by earlier
// deployments of the service.
var legacyEnv = map[string]string{
	"server.host":           "FLASK_HOST",
	"server.port":           "FLASK_PORT",
	"server.secret_key":     "SECRET_KEY",
	"dns.target_ip":         "VPS_IP",
	"registry.path":         "DOMAINS_FILE",
	"ports.min":             "ALLOWED_PORT_MIN",
	"ports.max":             "ALLOWED_PORT_MAX",
	"provision.script":      "DEPLOY_SCRIPT",
	"nginx.template":        "NGINX_TEMPLATE_PATH",
	"nginx.sites_available": "NGINX_SITES_AVAILABLE",
	"nginx.sites_enabled":   "NGINX_SITES_ENABLED",
}

// LoadConfig reads the configuration from defaults, the config file, a .env
// file and the environment, in increasing order of precedence.
func LoadConfig(configPath, envFile string) (Config, error) {
	loadedEnv, err := loadDotEnv(envFile)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.EnvFile = loadedEnv

	cfg.normalize()
	return cfg, nil
}

// loadDotEnv loads envFile into the process environment without overriding
// variables that are already set, and returns its absolute path. A missing
// file is not an error and yields "".
func loadDotEnv(envFile string) (string, error) {
	if envFile == "" {
		return "", nil
	}
	if err := godotenv.Load(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	abs, err := filepath.Abs(envFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", envFile, err)
	}
	return abs, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.secret_key", "change-me")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("dns.target_ip", "")
	v.SetDefault("dns.nameserver", "")
	v.SetDefault("dns.timeout", "5s")
	v.SetDefault("registry.backend", BackendJSON)
	v.SetDefault("registry.path", "")
	v.SetDefault("ports.min", domain.DefaultMinPort)
	v.SetDefault("ports.max", domain.DefaultMaxPort)
	v.SetDefault("provision.mode", ProvisionExec)
	v.SetDefault("provision.command", []string{})
	v.SetDefault("provision.script", "")
	v.SetDefault("provision.timeout", "60s")
	v.SetDefault("nginx.template", "")
	v.SetDefault("nginx.sites_available", "/etc/nginx/sites-available")
	v.SetDefault("nginx.sites_enabled", "/etc/nginx/sites-enabled")
	v.SetDefault("nginx.test_command", []string{"nginx", "-t"})
	v.SetDefault("nginx.reload_command", []string{"systemctl", "reload", "nginx"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("api.allowed_cidrs", []string{})
	v.SetDefault("api.trusted_proxies", []string{})
	v.SetDefault("api.rate_limit.enabled", true)
	v.SetDefault("api.rate_limit.global_rps", 20)
	v.SetDefault("api.rate_limit.per_ip_rps", 2)
	v.SetDefault("api.rate_limit.burst", 10)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("DOMAIN_HOSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := "DOMAIN_HOSTER_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return fmt.Errorf("failed to bind %s: %w", legacy, err)
		}
	}

	return nil
}

// ConfigureViper sets the config file or the default search paths.
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("domain-hoster")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/domain-hoster")
		v.AddConfigPath("$HOME/.config/domain-hoster")
		v.AddConfigPath(".")
	}
}

func (c *Config) normalize() {
	c.Registry.Backend = strings.ToLower(strings.TrimSpace(c.Registry.Backend))
	c.Provision.Mode = strings.ToLower(strings.TrimSpace(c.Provision.Mode))
	c.DNS.TargetIP = strings.TrimSpace(c.DNS.TargetIP)

	if c.Registry.Path == "" {
		if c.Registry.Backend == BackendSQLite {
			c.Registry.Path = "data/domains.db"
		} else {
			c.Registry.Path = "data/domains.json"
		}
	}
}

// PortRange returns the configured port policy.
func (c Config) PortRange() domain.PortRange {
	return domain.PortRange{Min: c.Ports.Min, Max: c.Ports.Max}
}

// Addr returns the listen address of the API server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, fmt.Sprint(c.Server.Port))
}

// Validate checks the settings shared by every command.
func (c Config) Validate() error {
	var errs []error

	if c.Ports.Min < 1 || c.Ports.Max > 65535 || c.Ports.Min > c.Ports.Max {
		errs = append(errs, fmt.Errorf("ports range %d-%d must satisfy 1 <= min <= max <= 65535", c.Ports.Min, c.Ports.Max))
	}
	switch c.Registry.Backend {
	case BackendJSON, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown registry backend %q", c.Registry.Backend))
	}
	switch c.Provision.Mode {
	case ProvisionExec, ProvisionLocal:
	default:
		errs = append(errs, fmt.Errorf("unknown provision mode %q", c.Provision.Mode))
	}
	if c.Provision.Timeout <= 0 {
		errs = append(errs, errors.New("provision timeout must be positive"))
	}
	if c.DNS.Timeout <= 0 {
		errs = append(errs, errors.New("dns timeout must be positive"))
	}
	if len(c.Nginx.TestCommand) == 0 || len(c.Nginx.ReloadCommand) == 0 {
		errs = append(errs, errors.New("nginx test and reload commands are required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ValidateTarget checks the DNS target address needed by the ownership check.
func (c Config) ValidateTarget() error {
	if c.DNS.TargetIP == "" {
		return fmt.Errorf("%w: dns.target_ip (VPS_IP) is required", domain.ErrInvalidConfig)
	}
	ip := net.ParseIP(c.DNS.TargetIP)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("%w: dns.target_ip %q is not an IPv4 address", domain.ErrInvalidConfig, c.DNS.TargetIP)
	}
	return nil
}

// ProvisionCommand returns the command prefix the exec provisioner runs.
// Without an explicit command this binary is re-invoked through sudo with
// the config file, the .env file and the resolved deploy settings on its
// command line, so the helper deploys with the server's settings even after
// sudo reset the environment. The prefix ends with "--" before the domain
// and port the provisioner appends.
func (c Config) ProvisionCommand() ([]string, error) {
	if len(c.Provision.Command) > 0 {
		return c.Provision.Command, nil
	}
	if c.Provision.Script != "" {
		return []string{"sudo", "python3", c.Provision.Script}, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	settings, err := c.helperSettings()
	if err != nil {
		return nil, err
	}

	cmd := []string{"sudo", exe, "provision"}
	if c.ConfigFile != "" {
		configFile, err := filepath.Abs(c.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config file: %w", err)
		}
		cmd = append(cmd, "--config="+configFile)
	}
	cmd = append(cmd, "--env-file="+c.EnvFile)
	cmd = append(cmd, settings.args()...)
	return append(cmd, "--"), nil
}
