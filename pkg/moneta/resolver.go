package moneta

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/moneta-go/moneta/pkg/moneta/audit"
	"github.com/moneta-go/moneta/pkg/moneta/config"
	"github.com/moneta-go/moneta/pkg/moneta/observability"
)

// Configuration key suffixes, appended to the resolver's key prefix.
const (
	precisionKey    = ".defaults.precision"
	roundingModeKey = ".defaults.roundingMode"
	mathContextKey  = ".defaults.mathContext"
)

// Resolver evaluates the default Context for a monetary value type
// from a configuration provider.
//
// Resolve re-reads the provider on every call and holds no state
// between calls, so a Resolver is safe for concurrent use as long as
// its provider is.
type Resolver struct {
	provider config.Provider
	cfg      resolverConfig
}

// NewResolver creates a Resolver reading from the given provider.
func NewResolver(provider config.Provider, opts ...Option) *Resolver {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Resolver{provider: provider, cfg: cfg}
}

// Resolve evaluates the default Context. It never fails: on any
// error (provider failure, malformed precision, unknown rounding
// mode) it logs the cause and returns the DECIMAL64 preset scoped to
// the owner. Nothing propagates to the caller, including panics from
// a misbehaving provider.
func (r *Resolver) Resolve(ctx context.Context) Context {
	done := observability.TimedOperation()
	resolutionID := uuid.New().String()

	var span trace.Span
	ctx, span = r.cfg.spans.StartResolveSpan(ctx, r.cfg.owner, resolutionID)

	resolved, path, err := r.resolve(ctx)
	if err != nil {
		observability.LogFallback(r.cfg.logger, r.cfg.owner, err)
		r.cfg.metrics.RecordFallback(ctx, r.cfg.owner, err.Error())
		resolved = r.fallback()
		path = audit.PathFallback
	}

	r.cfg.spans.AddSpanEvent(ctx, "context resolved",
		attribute.String("path", path),
		attribute.Int("precision", resolved.Precision()),
		attribute.String("rounding_mode", resolved.Mode().String()),
	)
	r.cfg.spans.EndSpanWithError(span, err)
	r.cfg.metrics.RecordResolution(ctx, r.cfg.owner, path, done())

	r.record(resolutionID, path, resolved, err)

	return resolved
}

// resolve runs the two-path resolution algorithm. Any returned error
// trips the global fallback in Resolve.
func (r *Resolver) resolve(ctx context.Context) (resolved Context, path string, err error) {
	// A panicking provider must not take the caller down; the
	// contract is a valid context on every code path.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("configuration provider panicked: %v", rec)
		}
	}()

	if r.provider == nil {
		return Context{}, "", ErrNilProvider
	}

	raw, err := r.provider.Config(ctx)
	if err != nil {
		return Context{}, "", fmt.Errorf("fetch config: %w", err)
	}
	cfg := config.New(raw)

	if cfg.Has(r.cfg.prefix + precisionKey) {
		resolved, err = r.resolveExplicit(cfg)
		return resolved, audit.PathExplicit, err
	}
	return r.resolvePreset(cfg), audit.PathPreset, nil
}

// resolveExplicit builds a context from an explicit precision value.
// The rounding mode defaults to HALF_UP when absent; a present but
// unrecognized mode is a hard error.
func (r *Resolver) resolveExplicit(cfg config.Config) (Context, error) {
	value := cfg.String(r.cfg.prefix+precisionKey, "")
	precision, err := strconv.Atoi(value)
	if err != nil {
		return Context{}, fmt.Errorf("%w: %q", ErrInvalidPrecision, value)
	}
	if precision < 0 {
		return Context{}, fmt.Errorf("%w: %d", ErrNegativePrecision, precision)
	}

	mode := HalfUp
	if cfg.Has(r.cfg.prefix + roundingModeKey) {
		mode, err = ParseRoundingMode(cfg.String(r.cfg.prefix+roundingModeKey, ""))
		if err != nil {
			return Context{}, err
		}
	}

	resolved := NewBuilder(r.cfg.owner).
		SetPrecision(precision).
		SetMode(mode).
		Build()
	observability.LogResolved(r.cfg.logger, r.cfg.owner, precision, mode.String())
	return resolved, nil
}

// resolvePreset builds a context from the named preset. An absent or
// unrecognized name silently means DECIMAL64.
func (r *Resolver) resolvePreset(cfg config.Config) Context {
	name := cfg.String(r.cfg.prefix+mathContextKey, "")
	if preset, ok := ParsePreset(name); ok {
		observability.LogPreset(r.cfg.logger, r.cfg.owner, name)
		return NewBuilder(r.cfg.owner).Set(preset).Build()
	}
	observability.LogPresetDefault(r.cfg.logger, r.cfg.owner, name)
	return NewBuilder(r.cfg.owner).Set(Decimal64).Build()
}

// fallback returns the hardcoded DECIMAL64-equivalent context used
// after any resolution error.
func (r *Resolver) fallback() Context {
	return NewBuilder(r.cfg.owner).Set(Decimal64).Build()
}

// record appends the resolution to the audit store, if configured.
func (r *Resolver) record(id, path string, resolved Context, cause error) {
	if r.cfg.store == nil {
		return
	}
	rec := audit.Record{
		ID:        id,
		Owner:     r.cfg.owner,
		Path:      path,
		Precision: resolved.Precision(),
		Mode:      resolved.Mode().String(),
		Timestamp: time.Now().UTC(),
	}
	if cause != nil {
		rec.Reason = cause.Error()
	}
	if err := r.cfg.store.Append(rec); err != nil {
		observability.LogAuditError(r.cfg.logger, r.cfg.owner, err)
	}
}
