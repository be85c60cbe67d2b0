package namespace

import (
	"net/url"
	"strings"
)

// DomainType classifies how the request's host was matched by the routing
// layer. Only the tenant type influences resolution; any other value is
// opaque to this package.
type DomainType string

// DomainTypeTenant marks hosts whose first label is a tenant namespace.
const DomainTypeTenant DomainType = "tenant"

// Request carries the weakly-correlated hints a namespace can be resolved
// from. All fields are optional; the resolver treats missing or wrongly-typed
// values as absent signals.
type Request struct {
	// Path is the request path, used to detect admin routes.
	Path string
	// Host is the request host, optionally with a port.
	Host string
	// DomainType is the resolved classification of Host.
	DomainType DomainType
	// Query holds the request query parameters.
	Query url.Values
	// Attributes are string-keyed per-request context values set earlier in
	// the pipeline. Values are arbitrarily typed.
	Attributes map[string]any
	// RouteParams exposes named arguments from the route match.
	RouteParams map[string]string
}

func (r Request) queryValue(key string) (any, bool) {
	if r.Query == nil || !r.Query.Has(key) {
		return nil, false
	}
	return r.Query.Get(key), true
}

func (r Request) attribute(key string) (any, bool) {
	if r.Attributes == nil {
		return nil, false
	}
	value, ok := r.Attributes[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func (r Request) routeParam(key string) (any, bool) {
	if r.RouteParams == nil {
		return nil, false
	}
	value, ok := r.RouteParams[key]
	if !ok {
		return nil, false
	}
	return value, true
}

// normalizedHost lowercases the host and strips any port suffix.
func (r Request) normalizedHost() string {
	host := strings.ToLower(strings.TrimSpace(r.Host))
	if idx := strings.IndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	return host
}

// hostLabel returns the first DNS label of the host, e.g. "acme" for
// "acme.example.com".
func (r Request) hostLabel() string {
	host := r.normalizedHost()
	if host == "" {
		return ""
	}
	if idx := strings.IndexByte(host, '.'); idx >= 0 {
		return host[:idx]
	}
	return host
}
