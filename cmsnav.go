// Package cmsnav implements the namespace and menu resolution core of a
// multi-tenant CMS: picking a tenant namespace from conflicting request
// signals, and resolving navigation slots to ordered menu trees through a
// locale/page priority search with default-menu and legacy fallbacks.
package cmsnav

import (
	"github.com/eventfabrik/go-cms-nav/internal/commands"
	navigationcmd "github.com/eventfabrik/go-cms-nav/internal/commands/navigation"
	"github.com/eventfabrik/go-cms-nav/internal/logging"
	"github.com/eventfabrik/go-cms-nav/internal/menus"
	"github.com/eventfabrik/go-cms-nav/internal/namespace"
	"github.com/eventfabrik/go-cms-nav/pkg/interfaces"
)

type (
	NamespaceContext         = namespace.Context
	NamespaceRequest         = namespace.Request
	NamespaceResolver        = namespace.Resolver
	DomainType               = namespace.DomainType
	NamespaceValidationError = namespace.ValidationError

	Menu           = menus.Menu
	MenuItem       = menus.MenuItem
	MenuAssignment = menus.MenuAssignment
	MenuNode       = menus.MenuNode
	ResolvedMenu   = menus.ResolvedMenu
	MenuSource     = menus.Source
	MenuResolver   = menus.Resolver
	MenuService    = menus.Service
)

const (
	DefaultNamespace = namespace.Default
	DomainTypeTenant = namespace.DomainTypeTenant

	SourceInvalid             = menus.SourceInvalid
	SourcePageLocale          = menus.SourcePageLocale
	SourcePageDefaultLocale   = menus.SourcePageDefaultLocale
	SourceGlobalLocale        = menus.SourceGlobalLocale
	SourceGlobalDefaultLocale = menus.SourceGlobalDefaultLocale
	SourceDefaultMenu         = menus.SourceDefaultMenu
	SourceLegacyFallback      = menus.SourceLegacyFallback
	SourceNone                = menus.SourceNone
)

// NewNamespaceResolver wires a namespace resolver from the configuration.
func NewNamespaceResolver(cfg Config, provider interfaces.LoggerProvider) *namespace.Resolver {
	return namespace.NewResolver(
		namespace.WithDefaultNamespace(cfg.Namespace.Default),
		namespace.WithAdminPathPrefix(cfg.Namespace.AdminPathPrefix),
		namespace.WithLogger(logging.NamespaceLogger(provider)),
	)
}

// NewMenuResolver wires a menu resolver over the provided store. The legacy
// provider may be nil when the fallback is disabled.
func NewMenuResolver(cfg Config, store menus.AssignmentStore, legacy menus.LegacyMenuProvider, provider interfaces.LoggerProvider) *menus.Resolver {
	opts := []menus.ResolverOption{
		menus.WithDefaultLocale(cfg.Navigation.DefaultLocale),
		menus.WithDefaultMenu(cfg.Navigation.DefaultMenuID),
		menus.WithLegacyFallback(cfg.Navigation.LegacyFallback),
		menus.WithResolverLogger(logging.MenusLogger(provider)),
	}
	if legacy != nil {
		opts = append(opts, menus.WithLegacyProvider(legacy))
	}
	return menus.NewResolver(store, opts...)
}

// NewMenuService wires the admin write paths over the provided store.
func NewMenuService(store menus.AdminStore, provider interfaces.LoggerProvider) menus.Service {
	return menus.NewService(store, menus.WithServiceLogger(logging.MenusLogger(provider)))
}

// NavigationHandlers bundles the command handlers for slot administration.
type NavigationHandlers struct {
	Assign   *navigationcmd.AssignMenuHandler
	Unassign *navigationcmd.UnassignMenuHandler
}

// NewNavigationHandlers wires the navigation command handlers over the admin
// service.
func NewNavigationHandlers(service menus.Service, provider interfaces.LoggerProvider) NavigationHandlers {
	logger := commands.CommandLogger(provider, "navigation")
	return NavigationHandlers{
		Assign:   navigationcmd.NewAssignMenuHandler(service, logger),
		Unassign: navigationcmd.NewUnassignMenuHandler(service, logger),
	}
}
