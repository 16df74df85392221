package innertube

import "sync"

// Registry resolves context aliases to profiles.
type Registry interface {
	Get(alias string) (ClientContext, bool)
	All() []ClientContext
}

type defaultRegistry struct {
	mu       sync.RWMutex
	contexts map[string]ClientContext
}

// NewRegistry creates a registry with the default profiles.
func NewRegistry() Registry {
	return &defaultRegistry{
		contexts: map[string]ClientContext{
			"web":          WebContext,
			"web_embedded": WebEmbeddedContext,
			"android":      AndroidContext,
			"tv":           TVContext,
		},
	}
}

func (r *defaultRegistry) Get(alias string) (ClientContext, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contexts[alias]
	return c, ok
}

func (r *defaultRegistry) All() []ClientContext {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]ClientContext, 0, len(r.contexts))
	for _, c := range r.contexts {
		all = append(all, c)
	}
	return all
}
