package moneta

import (
	"log/slog"

	"github.com/moneta-go/moneta/pkg/moneta/audit"
	"github.com/moneta-go/moneta/pkg/moneta/observability"
)

// DefaultKeyPrefix scopes the recognized configuration keys
// (<prefix>.defaults.precision and friends).
const DefaultKeyPrefix = "moneta.Money"

// DefaultOwner tags resolved contexts with the value type they are
// scoped to.
const DefaultOwner = "moneta.Money"

// resolverConfig holds configuration for a Resolver.
type resolverConfig struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	store   audit.Store
	prefix  string
	owner   string
}

// defaultResolverConfig returns the default resolver configuration.
func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
		prefix:  DefaultKeyPrefix,
		owner:   DefaultOwner,
	}
}

// Option configures a Resolver.
type Option func(*resolverConfig)

// WithLogger sets the logger for resolution events.
// Default: nil (logging disabled).
func WithLogger(logger *slog.Logger) Option {
	return func(c *resolverConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: observability.NoopMetrics{}
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *resolverConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpans sets the span manager for tracing.
// Default: observability.NoopSpanManager{}
func WithSpans(s observability.SpanManager) Option {
	return func(c *resolverConfig) {
		if s != nil {
			c.spans = s
		}
	}
}

// WithAuditStore records each resolution to the given store.
// Default: no audit trail.
//
// Store failures are logged and swallowed; they never affect the
// resolved context.
func WithAuditStore(s audit.Store) Option {
	return func(c *resolverConfig) {
		c.store = s
	}
}

// WithKeyPrefix changes the configuration key prefix.
// Default: DefaultKeyPrefix
//
// Example:
//
//	resolver := moneta.NewResolver(provider,
//	    moneta.WithKeyPrefix("app.FastMoney"),
//	    moneta.WithOwner("app.FastMoney"))
func WithKeyPrefix(prefix string) Option {
	return func(c *resolverConfig) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithOwner changes the owner tag stamped onto resolved contexts.
// Default: DefaultOwner
func WithOwner(owner string) Option {
	return func(c *resolverConfig) {
		if owner != "" {
			c.owner = owner
		}
	}
}
