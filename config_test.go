package cmsnav_test

import (
	"errors"
	"testing"

	cmsnav "github.com/eventfabrik/go-cms-nav"
)

func TestDefaultConfig(t *testing.T) {
	cfg := cmsnav.DefaultConfig()

	if cfg.Namespace.Default != "default" {
		t.Fatalf("expected default namespace, got %q", cfg.Namespace.Default)
	}
	if cfg.Namespace.AdminPathPrefix != "/admin" {
		t.Fatalf("expected /admin prefix, got %q", cfg.Namespace.AdminPathPrefix)
	}
	if cfg.Navigation.DefaultLocale != "de" {
		t.Fatalf("expected de locale, got %q", cfg.Navigation.DefaultLocale)
	}
	if cfg.Navigation.DefaultMenuID != 0 {
		t.Fatalf("expected default menu disabled, got %d", cfg.Navigation.DefaultMenuID)
	}
	if cfg.Navigation.LegacyFallback {
		t.Fatal("expected legacy fallback disabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CMSNAV_DEFAULT_NAMESPACE", "acme")
	t.Setenv("CMSNAV_DEFAULT_LOCALE", "en")
	t.Setenv("CMSNAV_DEFAULT_MENU_ID", "12")
	t.Setenv("CMSNAV_LEGACY_FALLBACK", "true")
	t.Setenv("CMSNAV_LOG_LEVEL", "debug")

	cfg, err := cmsnav.ConfigFromEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Namespace.Default != "acme" {
		t.Fatalf("expected acme, got %q", cfg.Namespace.Default)
	}
	if cfg.Navigation.DefaultLocale != "en" {
		t.Fatalf("expected en, got %q", cfg.Navigation.DefaultLocale)
	}
	if cfg.Navigation.DefaultMenuID != 12 {
		t.Fatalf("expected menu id 12, got %d", cfg.Navigation.DefaultMenuID)
	}
	if !cfg.Navigation.LegacyFallback {
		t.Fatal("expected legacy fallback enabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestConfigFromEnvRejectsInvalidNamespace(t *testing.T) {
	t.Setenv("CMSNAV_DEFAULT_NAMESPACE", "-bad-")

	if _, err := cmsnav.ConfigFromEnv(); !errors.Is(err, cmsnav.ErrDefaultNamespaceInvalid) {
		t.Fatalf("expected namespace error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*cmsnav.Config)
		want   error
	}{
		{
			name:   "invalid namespace",
			mutate: func(c *cmsnav.Config) { c.Namespace.Default = "Not Valid" },
			want:   cmsnav.ErrDefaultNamespaceInvalid,
		},
		{
			name:   "missing admin prefix",
			mutate: func(c *cmsnav.Config) { c.Namespace.AdminPathPrefix = "" },
			want:   cmsnav.ErrAdminPathPrefixRequired,
		},
		{
			name:   "missing locale",
			mutate: func(c *cmsnav.Config) { c.Navigation.DefaultLocale = "" },
			want:   cmsnav.ErrDefaultLocaleRequired,
		},
		{
			name:   "negative menu id",
			mutate: func(c *cmsnav.Config) { c.Navigation.DefaultMenuID = -1 },
			want:   cmsnav.ErrDefaultMenuIDInvalid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := cmsnav.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
