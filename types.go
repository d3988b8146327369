package goschemes

import "github.com/sirupsen/logrus"

// Options configures a Registry.
type Options struct {
	// CacheSize bounds the number of cached categories over a base.
	// Zero keeps every category (no eviction).
	CacheSize int
	// Logger receives debug diagnostics; nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// WithCacheSize sets Options.CacheSize.
func WithCacheSize(n int) Option { return func(o *Options) { o.CacheSize = n } }

// WithLogger sets Options.Logger.
func WithLogger(l logrus.FieldLogger) Option { return func(o *Options) { o.Logger = l } }
