package cmsnav

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/eventfabrik/go-cms-nav/internal/namespace"
)

var (
	ErrDefaultNamespaceInvalid = errors.New("cmsnav: default namespace is invalid")
	ErrAdminPathPrefixRequired = errors.New("cmsnav: admin path prefix is required")
	ErrDefaultLocaleRequired   = errors.New("cmsnav: default locale is required")
	ErrDefaultMenuIDInvalid    = errors.New("cmsnav: default menu id must be zero or positive")
)

// Config aggregates the runtime settings of the resolution services. All
// values are fixed at construction time; nothing is read from ambient global
// state during resolution.
type Config struct {
	Namespace  NamespaceConfig
	Navigation NavigationConfig
	Logging    LoggingConfig
}

// NamespaceConfig tunes namespace resolution.
type NamespaceConfig struct {
	// Default is the backstop tenant identifier.
	Default string `env:"CMSNAV_DEFAULT_NAMESPACE" envDefault:"default"`
	// AdminPathPrefix enables the namespace query parameter for admin routes.
	AdminPathPrefix string `env:"CMSNAV_ADMIN_PATH_PREFIX" envDefault:"/admin"`
}

// NavigationConfig tunes menu resolution.
type NavigationConfig struct {
	// DefaultLocale is probed after the requested locale during the
	// priority search.
	DefaultLocale string `env:"CMSNAV_DEFAULT_LOCALE" envDefault:"de"`
	// DefaultMenuID names the menu served when no assignment matches.
	// Zero disables the default menu.
	DefaultMenuID int64 `env:"CMSNAV_DEFAULT_MENU_ID"`
	// LegacyFallback enables the pre-migration flat-menu escape hatch.
	LegacyFallback bool `env:"CMSNAV_LEGACY_FALLBACK"`
}

// LoggingConfig configures the go-logger provider.
type LoggingConfig struct {
	Level     string `env:"CMSNAV_LOG_LEVEL" envDefault:"info"`
	Format    string `env:"CMSNAV_LOG_FORMAT" envDefault:"json"`
	AddSource bool   `env:"CMSNAV_LOG_SOURCE"`
}

// DefaultConfig returns the configuration used when no overrides apply.
func DefaultConfig() Config {
	return Config{
		Namespace: NamespaceConfig{
			Default:         namespace.Default,
			AdminPathPrefix: namespace.DefaultAdminPathPrefix,
		},
		Navigation: NavigationConfig{
			DefaultLocale: "de",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// ConfigFromEnv builds a configuration from CMSNAV_* environment variables,
// falling back to the defaults above.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the resolvers cannot operate with.
func (c Config) Validate() error {
	if _, ok := namespace.NormalizeCandidate(c.Namespace.Default); !ok {
		return ErrDefaultNamespaceInvalid
	}
	if c.Namespace.AdminPathPrefix == "" {
		return ErrAdminPathPrefixRequired
	}
	if c.Navigation.DefaultLocale == "" {
		return ErrDefaultLocaleRequired
	}
	if c.Navigation.DefaultMenuID < 0 {
		return ErrDefaultMenuIDInvalid
	}
	return nil
}
