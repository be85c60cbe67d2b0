package namespace

// Context is the immutable result of a namespace resolution. It carries the
// chosen namespace, the full candidate list for downstream fallback chains,
// the originating host, and whether the default backstop was used.
type Context struct {
	namespace    string
	candidates   []string
	host         string
	usedFallback bool
}

func newContext(candidates []string, host string, usedFallback bool) Context {
	owned := make([]string, len(candidates))
	copy(owned, candidates)
	return Context{
		namespace:    owned[0],
		candidates:   owned,
		host:         host,
		usedFallback: usedFallback,
	}
}

// Namespace returns the active namespace, always equal to the first candidate.
func (c Context) Namespace() string {
	return c.namespace
}

// Candidates returns the ordered, de-duplicated candidate list. The slice is
// copied so callers cannot mutate the context.
func (c Context) Candidates() []string {
	out := make([]string, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Host returns the request host the context was resolved from.
func (c Context) Host() string {
	return c.host
}

// UsedFallback reports whether no request signal matched and the default
// namespace backstop supplied the active namespace.
func (c Context) UsedFallback() bool {
	return c.usedFallback
}
