package moneta_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/moneta-go/moneta/pkg/moneta"
	"github.com/moneta-go/moneta/pkg/moneta/audit"
	"github.com/moneta-go/moneta/pkg/moneta/config"
)

const (
	precisionKey    = "moneta.Money.defaults.precision"
	roundingModeKey = "moneta.Money.defaults.roundingMode"
	mathContextKey  = "moneta.Money.defaults.mathContext"
)

// failingProvider always returns an error.
type failingProvider struct{}

func (failingProvider) Config(_ context.Context) (map[string]string, error) {
	return nil, errors.New("config source unavailable")
}

// panickingProvider simulates a provider that blows up instead of
// returning an error.
type panickingProvider struct{}

func (panickingProvider) Config(_ context.Context) (map[string]string, error) {
	panic("boom")
}

// newTestLogger returns a logger writing text records into buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// TestResolve_ExplicitPrecision verifies the explicit-precision path.
func TestResolve_ExplicitPrecision(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.Static
		wantPrecision int
		wantMode      moneta.RoundingMode
	}{
		{
			"precision and rounding mode",
			config.Static{precisionKey: "256", roundingModeKey: "HALF_EVEN"},
			256, moneta.HalfEven,
		},
		{
			"rounding mode absent defaults to half up",
			config.Static{precisionKey: "256"},
			256, moneta.HalfUp,
		},
		{
			"lower case rounding mode",
			config.Static{precisionKey: "12", roundingModeKey: "floor"},
			12, moneta.Floor,
		},
		{
			"zero precision means unlimited",
			config.Static{precisionKey: "0"},
			0, moneta.HalfUp,
		},
		{
			"explicit precision wins over math context",
			config.Static{precisionKey: "9", mathContextKey: "DECIMAL128"},
			9, moneta.HalfUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := moneta.NewResolver(tt.cfg)
			mc := resolver.Resolve(context.Background())

			assert.Equal(t, tt.wantPrecision, mc.Precision())
			assert.Equal(t, tt.wantMode, mc.Mode())
			assert.Equal(t, moneta.DefaultOwner, mc.Owner())
		})
	}
}

// TestResolve_PresetPath verifies the named-math-context path.
func TestResolve_PresetPath(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Static
		want moneta.Context
	}{
		{"decimal32", config.Static{mathContextKey: "DECIMAL32"}, moneta.Decimal32},
		{"decimal64", config.Static{mathContextKey: "DECIMAL64"}, moneta.Decimal64},
		{"decimal128", config.Static{mathContextKey: "DECIMAL128"}, moneta.Decimal128},
		{"unlimited", config.Static{mathContextKey: "UNLIMITED"}, moneta.Unlimited},
		{"lower case name", config.Static{mathContextKey: "decimal128"}, moneta.Decimal128},
		{"mixed case name", config.Static{mathContextKey: "Decimal32"}, moneta.Decimal32},
		{"absent name defaults to decimal64", config.Static{}, moneta.Decimal64},
		{"nil config defaults to decimal64", nil, moneta.Decimal64},
		{"unknown name defaults to decimal64", config.Static{mathContextKey: "DECIMAL256"}, moneta.Decimal64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := moneta.NewResolver(tt.cfg)
			mc := resolver.Resolve(context.Background())

			assert.Equal(t, tt.want.Precision(), mc.Precision())
			assert.Equal(t, tt.want.Mode(), mc.Mode())
			assert.Equal(t, moneta.DefaultOwner, mc.Owner())
		})
	}
}

// TestResolve_Fallback verifies every error path yields the DECIMAL64
// fallback and logs at error level.
func TestResolve_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		provider config.Provider
	}{
		{"precision not a number", config.Static{precisionKey: "not-a-number"}},
		{"precision empty", config.Static{precisionKey: ""}},
		{"precision fractional", config.Static{precisionKey: "12.5"}},
		{"negative precision", config.Static{precisionKey: "-3"}},
		{"unknown rounding mode", config.Static{precisionKey: "10", roundingModeKey: "SIDEWAYS"}},
		{"empty rounding mode", config.Static{precisionKey: "10", roundingModeKey: ""}},
		{"provider error", failingProvider{}},
		{"provider panic", panickingProvider{}},
		{"nil provider", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			resolver := moneta.NewResolver(tt.provider, moneta.WithLogger(newTestLogger(&buf)))

			var mc moneta.Context
			require.NotPanics(t, func() {
				mc = resolver.Resolve(context.Background())
			})

			assert.Equal(t, moneta.Decimal64.Precision(), mc.Precision())
			assert.Equal(t, moneta.Decimal64.Mode(), mc.Mode())
			assert.Equal(t, moneta.DefaultOwner, mc.Owner())
			assert.Contains(t, buf.String(), "level=ERROR")
		})
	}
}

// TestResolve_PresetDefault_NotAnError verifies an unrecognized
// mathContext name logs no error.
func TestResolve_PresetDefault_NotAnError(t *testing.T) {
	var buf bytes.Buffer
	resolver := moneta.NewResolver(
		config.Static{mathContextKey: "DECIMAL256"},
		moneta.WithLogger(newTestLogger(&buf)),
	)

	mc := resolver.Resolve(context.Background())

	assert.Equal(t, moneta.Decimal64.Precision(), mc.Precision())
	assert.NotContains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "level=INFO")
}

// TestResolve_CustomPrefixAndOwner verifies key scoping for other
// value types.
func TestResolve_CustomPrefixAndOwner(t *testing.T) {
	cfg := config.Static{
		"app.FastMoney.defaults.precision":    "19",
		"app.FastMoney.defaults.roundingMode": "DOWN",
		// Keys under the default prefix must be ignored.
		precisionKey: "999",
	}
	resolver := moneta.NewResolver(cfg,
		moneta.WithKeyPrefix("app.FastMoney"),
		moneta.WithOwner("app.FastMoney"),
	)

	mc := resolver.Resolve(context.Background())

	assert.Equal(t, 19, mc.Precision())
	assert.Equal(t, moneta.Down, mc.Mode())
	assert.Equal(t, "app.FastMoney", mc.Owner())
}

// TestResolve_RereadsProvider verifies no caching between calls.
func TestResolve_RereadsProvider(t *testing.T) {
	calls := 0
	provider := config.ProviderFunc(func(_ context.Context) (map[string]string, error) {
		calls++
		return map[string]string{precisionKey: fmt.Sprintf("%d", calls)}, nil
	})

	resolver := moneta.NewResolver(provider)
	first := resolver.Resolve(context.Background())
	second := resolver.Resolve(context.Background())

	assert.Equal(t, 1, first.Precision())
	assert.Equal(t, 2, second.Precision())
	assert.Equal(t, 2, calls)
}

// TestResolve_AuditTrail verifies one record per call with the path
// taken.
func TestResolve_AuditTrail(t *testing.T) {
	store := audit.NewMemoryStore()
	defer store.Close()

	providers := []struct {
		provider config.Provider
		path     string
	}{
		{config.Static{precisionKey: "42"}, audit.PathExplicit},
		{config.Static{mathContextKey: "DECIMAL128"}, audit.PathPreset},
		{config.Static{precisionKey: "nope"}, audit.PathFallback},
	}

	for _, p := range providers {
		resolver := moneta.NewResolver(p.provider, moneta.WithAuditStore(store))
		resolver.Resolve(context.Background())
	}

	recs, err := store.List(moneta.DefaultOwner)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, audit.PathExplicit, recs[0].Path)
	assert.Equal(t, 42, recs[0].Precision)
	assert.Equal(t, "HALF_UP", recs[0].Mode)
	assert.Empty(t, recs[0].Reason)

	assert.Equal(t, audit.PathPreset, recs[1].Path)
	assert.Equal(t, 34, recs[1].Precision)

	assert.Equal(t, audit.PathFallback, recs[2].Path)
	assert.Equal(t, 16, recs[2].Precision)
	assert.NotEmpty(t, recs[2].Reason)

	// Every record carries a distinct ID.
	assert.NotEqual(t, recs[0].ID, recs[1].ID)
	assert.NotEqual(t, recs[1].ID, recs[2].ID)
}

// TestResolve_AuditFailureIsSwallowed verifies a broken audit store
// does not affect the resolved context.
func TestResolve_AuditFailureIsSwallowed(t *testing.T) {
	store := audit.NewMemoryStore()
	require.NoError(t, store.Close())

	var buf bytes.Buffer
	resolver := moneta.NewResolver(
		config.Static{precisionKey: "8"},
		moneta.WithAuditStore(store),
		moneta.WithLogger(newTestLogger(&buf)),
	)

	mc := resolver.Resolve(context.Background())

	assert.Equal(t, 8, mc.Precision())
	assert.Contains(t, buf.String(), "audit record failed")
}

// TestResolve_PropertyExplicit checks that any precision P >= 0
// paired with any valid rounding-mode name, in any case, resolves to
// exactly (P, R).
func TestResolve_PropertyExplicit(t *testing.T) {
	names := []string{
		"UP", "DOWN", "CEILING", "FLOOR",
		"HALF_UP", "HALF_DOWN", "HALF_EVEN", "UNNECESSARY",
	}

	rapid.Check(t, func(t *rapid.T) {
		precision := rapid.IntRange(0, 1<<20).Draw(t, "precision")
		name := rapid.SampledFrom(names).Draw(t, "mode")
		switch rapid.IntRange(0, 2).Draw(t, "case") {
		case 1:
			name = strings.ToLower(name)
		case 2:
			name = strings.ToTitle(name[:1]) + strings.ToLower(name[1:])
		}

		resolver := moneta.NewResolver(config.Static{
			precisionKey:    fmt.Sprintf("%d", precision),
			roundingModeKey: name,
		})
		mc := resolver.Resolve(context.Background())

		want, err := moneta.ParseRoundingMode(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if mc.Precision() != precision {
			t.Fatalf("precision = %d, want %d", mc.Precision(), precision)
		}
		if mc.Mode() != want {
			t.Fatalf("mode = %v, want %v", mc.Mode(), want)
		}
	})
}

// TestResolve_PropertyNeverFails checks that arbitrary configuration
// values always yield a valid context without panicking.
func TestResolve_PropertyNeverFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := config.Static{}
		if rapid.Bool().Draw(t, "has_precision") {
			cfg[precisionKey] = rapid.String().Draw(t, "precision")
		}
		if rapid.Bool().Draw(t, "has_mode") {
			cfg[roundingModeKey] = rapid.String().Draw(t, "mode")
		}
		if rapid.Bool().Draw(t, "has_preset") {
			cfg[mathContextKey] = rapid.String().Draw(t, "preset")
		}

		resolver := moneta.NewResolver(cfg)
		mc := resolver.Resolve(context.Background())

		if mc.Owner() != moneta.DefaultOwner {
			t.Fatalf("owner = %q, want %q", mc.Owner(), moneta.DefaultOwner)
		}
		if mc.Precision() < 0 {
			t.Fatalf("negative precision %d", mc.Precision())
		}
		if _, err := moneta.ParseRoundingMode(mc.Mode().String()); err != nil {
			t.Fatalf("invalid mode %v", mc.Mode())
		}
	})
}
