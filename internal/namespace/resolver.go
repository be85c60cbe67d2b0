package namespace

import (
	"strings"

	"github.com/eventfabrik/go-cms-nav/internal/logging"
	"github.com/eventfabrik/go-cms-nav/pkg/interfaces"
)

// DefaultAdminPathPrefix marks the admin surface, where operators may select
// a namespace explicitly via query parameter.
const DefaultAdminPathPrefix = "/admin"

// Attribute and route-argument keys checked during resolution, in precedence
// order within their step.
var (
	explicitAttributeKeys = []string{"legalPageNamespace", "pageNamespace", "namespace"}
	routeParamKeys        = []string{"namespace", "tenantNamespace", "tenant", "subdomain"}
	eventKeys             = []string{"event_uid", "event"}
	tenantAttributeKeys   = []string{"tenant", "tenantNamespace"}
)

// ResolverOption configures resolver behaviour.
type ResolverOption func(*Resolver)

// WithAdminPathPrefix overrides the path prefix that enables the namespace
// query parameter.
func WithAdminPathPrefix(prefix string) ResolverOption {
	return func(r *Resolver) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			r.adminPathPrefix = trimmed
		}
	}
}

// WithDefaultNamespace overrides the backstop namespace.
func WithDefaultNamespace(ns string) ResolverOption {
	return func(r *Resolver) {
		if candidate, ok := NormalizeCandidate(ns); ok {
			r.defaultNamespace = candidate
		}
	}
}

// WithLogger injects the logger used during resolution. Defaults to no-op.
func WithLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver turns request hints into an ordered namespace candidate list.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	adminPathPrefix  string
	defaultNamespace string
	logger           interfaces.Logger
}

// NewResolver constructs a namespace resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		adminPathPrefix:  DefaultAdminPathPrefix,
		defaultNamespace: Default,
		logger:           logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the ordered, de-duplicated candidate list for the request
// and returns a context whose namespace is the first candidate. Malformed
// hints are skipped silently; the default backstop guarantees the candidate
// list is never empty.
func (r *Resolver) Resolve(req Request) Context {
	set := newCandidateSet()

	if strings.HasPrefix(req.Path, r.adminPathPrefix) {
		if value, ok := req.queryValue("namespace"); ok {
			set.add(NormalizeCandidate(value))
		}
	}

	if value, ok := firstPresent(req.attribute, explicitAttributeKeys); ok {
		set.add(NormalizeCandidate(value))
	}

	if value, ok := firstPresent(req.routeParam, routeParamKeys); ok {
		set.add(NormalizeCandidate(value))
	}

	if value, ok := firstPresent(req.attribute, eventKeys); ok {
		set.add(NormalizeCandidate(value))
	} else if value, ok := firstPresent(req.queryValue, eventKeys); ok {
		set.add(NormalizeCandidate(value))
	}

	if value, ok := firstPresent(req.attribute, tenantAttributeKeys); ok {
		set.add(NormalizeCandidate(value))
	} else if req.DomainType == DomainTypeTenant {
		set.add(NormalizeCandidate(req.hostLabel()))
	}

	usedFallback := set.empty()
	set.add(r.defaultNamespace, true)

	ctx := newContext(set.values, req.normalizedHost(), usedFallback)
	r.logger.Debug("namespace.resolved",
		"namespace", ctx.Namespace(),
		"candidates", len(set.values),
		"fallback", usedFallback,
	)
	return ctx
}

// firstPresent walks keys in order and returns the first value the lookup
// reports as present, mirroring a null-coalescing chain. Presence is decided
// before normalization, so a present-but-malformed value still wins its step.
func firstPresent(lookup func(string) (any, bool), keys []string) (any, bool) {
	for _, key := range keys {
		if value, ok := lookup(key); ok {
			return value, true
		}
	}
	return nil, false
}

// candidateSet preserves insertion order with O(1) duplicate checks.
type candidateSet struct {
	values []string
	seen   map[string]struct{}
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]struct{}, 4)}
}

func (s *candidateSet) add(candidate string, ok bool) {
	if !ok {
		return
	}
	if _, dup := s.seen[candidate]; dup {
		return
	}
	s.seen[candidate] = struct{}{}
	s.values = append(s.values, candidate)
}

func (s *candidateSet) empty() bool {
	return len(s.values) == 0
}
