/*
Package moneta resolves the default numeric precision context for a
monetary value type from external configuration.

# Overview

A monetary value type needs arithmetic defaults: how many significant
digits to keep and how to round. moneta reads those defaults from a
string-keyed configuration source and produces an immutable Context,
falling back to the DECIMAL64 preset whenever the configuration is
missing or broken. Resolve never fails: every call returns a usable
Context, and failures surface only as log lines and metrics.

# Basic Usage

Resolve a context from a static configuration map:

	provider := config.Static{
	    "moneta.Money.defaults.precision":    "256",
	    "moneta.Money.defaults.roundingMode": "HALF_EVEN",
	}

	resolver := moneta.NewResolver(provider)
	mc := resolver.Resolve(context.Background())
	fmt.Println(mc.Precision(), mc.Mode()) // 256 HALF_EVEN

Pass the resolved Context into the value type's constructor; moneta
keeps no global state and caches nothing between calls.

# Configuration Keys

Three keys are recognized, scoped by a configurable prefix
(default "moneta.Money"):

	# Custom context, overrides <prefix>.defaults.mathContext.
	# roundingMode is optional here (default = HALF_UP).
	moneta.Money.defaults.precision=256
	moneta.Money.defaults.roundingMode=HALF_EVEN

	# Named preset, used only when precision is absent.
	# One of DECIMAL32, DECIMAL64, DECIMAL128, UNLIMITED.
	moneta.Money.defaults.mathContext=DECIMAL128

When precision is set, the explicit values win. Otherwise the named
preset applies; an absent or unrecognized name means DECIMAL64.

# Fallback Behavior

A malformed precision, an unknown rounding-mode name, or a failing
provider all trip the same fallback: the DECIMAL64 preset scoped to
the owner type, with the cause logged at error level. An unrecognized
mathContext name on the preset path is not an error.

# Observability

Logging uses slog and is disabled when no logger is configured.
Metrics and tracing ride on OpenTelemetry through the observability
subpackage, and resolutions can be recorded to an audit store:

	resolver := moneta.NewResolver(provider,
	    moneta.WithLogger(slog.Default()),
	    moneta.WithMetrics(observability.NewMetricsRecorder()),
	    moneta.WithSpans(observability.NewSpanManager()),
	)
*/
package moneta
