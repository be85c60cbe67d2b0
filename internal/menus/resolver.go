package menus

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/eventfabrik/go-cms-nav/internal/logging"
	"github.com/eventfabrik/go-cms-nav/pkg/interfaces"
)

// DefaultLocale is the platform-wide fallback locale probed after the
// requested locale.
const DefaultLocale = "de"

// ResolverOption configures menu resolution behaviour.
type ResolverOption func(*Resolver)

// WithDefaultLocale overrides the fallback locale.
func WithDefaultLocale(locale string) ResolverOption {
	return func(r *Resolver) {
		if trimmed := normalizeLocale(locale); trimmed != "" {
			r.defaultLocale = trimmed
		}
	}
}

// WithDefaultMenu configures the menu served when no assignment matches.
// Ids of zero or less disable the default menu.
func WithDefaultMenu(menuID int64) ResolverOption {
	return func(r *Resolver) {
		if menuID > 0 {
			r.defaultMenuID = &menuID
		} else {
			r.defaultMenuID = nil
		}
	}
}

// WithLegacyProvider wires the pre-migration flat-menu source.
func WithLegacyProvider(provider LegacyMenuProvider) ResolverOption {
	return func(r *Resolver) {
		r.legacy = provider
	}
}

// WithLegacyFallback toggles the legacy escape hatch for slots that were
// never migrated to the assignment model.
func WithLegacyFallback(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.legacyFallback = enabled
	}
}

// WithResolverLogger injects the logger used during resolution.
func WithResolverLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver maps a navigation slot to an ordered menu tree using a
// locale/page priority search, a configured default menu, and a legacy-data
// fallback. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	store          AssignmentStore
	legacy         LegacyMenuProvider
	legacyFallback bool
	defaultMenuID  *int64
	defaultLocale  string
	logger         interfaces.Logger
}

// NewResolver constructs a menu resolver over the provided store.
func NewResolver(store AssignmentStore, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:         store,
		defaultLocale: DefaultLocale,
		logger:        logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// searchCandidate is one rung of the locale/page priority search. Discarded
// after resolution.
type searchCandidate struct {
	pageID *int64
	locale string
	source Source
}

func (c searchCandidate) key() string {
	if c.pageID == nil {
		return "global|" + c.locale
	}
	return "page:" + strconv.FormatInt(*c.pageID, 10) + "|" + c.locale
}

// ResolveMenu resolves slot within namespace to a menu tree. A pageID of
// zero or less means "no page scope"; an empty locale falls back to the
// default locale. Not-found conditions are folded into the Source tag, never
// returned as errors; only storage failures surface as errors.
func (r *Resolver) ResolveMenu(ctx context.Context, namespace, slot string, pageID int64, locale string) (ResolvedMenu, error) {
	ns := strings.TrimSpace(namespace)
	slot = strings.TrimSpace(slot)
	if ns == "" || slot == "" {
		return ResolvedMenu{Items: []MenuNode{}, Source: SourceInvalid}, nil
	}

	loc := normalizeLocale(locale)
	var page *int64
	if pageID > 0 {
		page = &pageID
	}

	for _, candidate := range r.searchCandidates(page, loc) {
		resolved, ok, err := r.tryCandidate(ctx, ns, slot, candidate)
		if err != nil {
			return ResolvedMenu{}, err
		}
		if ok {
			r.logger.Debug("menus.resolved",
				"namespace", ns,
				"slot", slot,
				"source", string(resolved.Source),
			)
			return resolved, nil
		}
	}

	if resolved, ok, err := r.tryDefaultMenu(ctx, ns, loc); err != nil {
		return ResolvedMenu{}, err
	} else if ok {
		return resolved, nil
	}

	if resolved, ok, err := r.tryLegacyFallback(ctx, ns, slot, loc); err != nil {
		return ResolvedMenu{}, err
	} else if ok {
		return resolved, nil
	}

	return ResolvedMenu{Items: []MenuNode{}, Source: SourceNone}, nil
}

// searchCandidates builds the priority list: page+locale, page+default
// locale, global+locale, global+default locale. Page-scoped rungs are
// skipped without a page, empty locales are skipped, and duplicates keep
// their first (highest-priority) position.
func (r *Resolver) searchCandidates(page *int64, locale string) []searchCandidate {
	raw := []searchCandidate{
		{pageID: page, locale: locale, source: SourcePageLocale},
		{pageID: page, locale: r.defaultLocale, source: SourcePageDefaultLocale},
		{pageID: nil, locale: locale, source: SourceGlobalLocale},
		{pageID: nil, locale: r.defaultLocale, source: SourceGlobalDefaultLocale},
	}

	seen := make(map[string]struct{}, len(raw))
	candidates := make([]searchCandidate, 0, len(raw))
	for _, candidate := range raw {
		if candidate.locale == "" {
			continue
		}
		if candidate.source == SourcePageLocale || candidate.source == SourcePageDefaultLocale {
			if candidate.pageID == nil {
				continue
			}
		}
		if _, dup := seen[candidate.key()]; dup {
			continue
		}
		seen[candidate.key()] = struct{}{}
		candidates = append(candidates, candidate)
	}
	return candidates
}

// tryCandidate probes one rung of the priority search. A missing assignment,
// missing menu, or inactive menu reports ok == false so the search continues.
func (r *Resolver) tryCandidate(ctx context.Context, ns, slot string, candidate searchCandidate) (ResolvedMenu, bool, error) {
	assignment, err := r.store.GetAssignmentForSlot(ctx, ns, slot, candidate.locale, candidate.pageID, true)
	if err != nil {
		if isNotFound(err) {
			return ResolvedMenu{}, false, nil
		}
		return ResolvedMenu{}, false, fmt.Errorf("menus: assignment lookup for slot %q: %w", slot, err)
	}

	menu, err := r.store.GetMenuByID(ctx, ns, assignment.MenuID)
	if err != nil {
		if isNotFound(err) {
			return ResolvedMenu{}, false, nil
		}
		return ResolvedMenu{}, false, fmt.Errorf("menus: menu lookup %d: %w", assignment.MenuID, err)
	}
	if !menu.IsActive {
		return ResolvedMenu{}, false, nil
	}

	items, err := r.store.GetMenuItemsForMenu(ctx, ns, menu.ID, candidate.locale, true)
	if err != nil {
		return ResolvedMenu{}, false, fmt.Errorf("menus: item lookup for menu %d: %w", menu.ID, err)
	}

	menuID := menu.ID
	assignmentID := assignment.ID
	return ResolvedMenu{
		MenuID:       &menuID,
		AssignmentID: &assignmentID,
		Items:        BuildTree(items),
		Source:       candidate.source,
	}, true, nil
}

// tryDefaultMenu serves the service-level default menu when configured and
// active. Items are loaded for the requested locale first, then the default
// locale when that yields nothing.
func (r *Resolver) tryDefaultMenu(ctx context.Context, ns, locale string) (ResolvedMenu, bool, error) {
	if r.defaultMenuID == nil {
		return ResolvedMenu{}, false, nil
	}

	menu, err := r.store.GetMenuByID(ctx, ns, *r.defaultMenuID)
	if err != nil {
		if isNotFound(err) {
			return ResolvedMenu{}, false, nil
		}
		return ResolvedMenu{}, false, fmt.Errorf("menus: default menu lookup %d: %w", *r.defaultMenuID, err)
	}
	if !menu.IsActive {
		return ResolvedMenu{}, false, nil
	}

	loc := locale
	if loc == "" {
		loc = r.defaultLocale
	}
	items, err := r.store.GetMenuItemsForMenu(ctx, ns, menu.ID, loc, true)
	if err != nil {
		return ResolvedMenu{}, false, fmt.Errorf("menus: default menu items for %d: %w", menu.ID, err)
	}
	if len(items) == 0 && loc != r.defaultLocale {
		items, err = r.store.GetMenuItemsForMenu(ctx, ns, menu.ID, r.defaultLocale, true)
		if err != nil {
			return ResolvedMenu{}, false, fmt.Errorf("menus: default menu items for %d: %w", menu.ID, err)
		}
	}

	menuID := menu.ID
	return ResolvedMenu{
		MenuID: &menuID,
		Items:  BuildTree(items),
		Source: SourceDefaultMenu,
	}, true, nil
}

// tryLegacyFallback consults the pre-migration provider, but only for slots
// that never received an assignment of any kind. One migrated assignment,
// even inactive or for another locale, disables the escape hatch.
func (r *Resolver) tryLegacyFallback(ctx context.Context, ns, slot, locale string) (ResolvedMenu, bool, error) {
	if !r.legacyFallback || r.legacy == nil {
		return ResolvedMenu{}, false, nil
	}

	migrated, err := r.store.HasAssignmentsForSlot(ctx, ns, slot)
	if err != nil {
		return ResolvedMenu{}, false, fmt.Errorf("menus: assignment probe for slot %q: %w", slot, err)
	}
	if migrated {
		return ResolvedMenu{}, false, nil
	}

	loc := locale
	if loc == "" {
		loc = r.defaultLocale
	}
	items, err := r.legacy.GetMenuForNamespace(ctx, ns, loc)
	if err != nil {
		return ResolvedMenu{}, false, fmt.Errorf("menus: legacy menu for namespace %q: %w", ns, err)
	}
	if len(items) == 0 {
		return ResolvedMenu{}, false, nil
	}

	r.logger.Debug("menus.resolved",
		"namespace", ns,
		"slot", slot,
		"source", string(SourceLegacyFallback),
	)
	return ResolvedMenu{Items: items, Source: SourceLegacyFallback}, true, nil
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

func isNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
