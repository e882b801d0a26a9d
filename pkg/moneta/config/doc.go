// Package config supplies string-keyed configuration to the context
// resolver.
//
// A Provider hands out the raw map; Config wraps a map for type-safe
// value extraction with defaults. Loaders build Static providers from
// YAML, JSON, or properties files, flattening nested documents into
// dotted keys ("moneta.Money.defaults.precision").
package config
