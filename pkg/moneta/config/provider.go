package config

import "context"

// Provider hands out the current configuration as a string-keyed map.
// The returned map is treated as read-only by callers.
//
// Implementations may fetch from memory, files, or a remote source;
// the resolver re-reads on every call, so a Provider that reflects
// live changes will be picked up without restarts.
type Provider interface {
	Config(ctx context.Context) (map[string]string, error)
}

// Static is a fixed in-memory Provider. The zero value is an empty
// configuration.
type Static map[string]string

// Config implements Provider.
func (s Static) Config(_ context.Context) (map[string]string, error) {
	return s, nil
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) (map[string]string, error)

// Config implements Provider.
func (f ProviderFunc) Config(ctx context.Context) (map[string]string, error) {
	return f(ctx)
}
