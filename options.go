package htmlbind

import (
	"log/slog"
)

// Option configures an HTMLSerializer.
type Option func(*options)

type options struct {
	cfg      Config
	logger   *slog.Logger
	resolver *Resolver
	register []func(*Resolver) error
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	if err := cfg.validate(); err != nil {
		panic("WithConfig: " + err.Error())
	}
	return func(o *options) { o.cfg = cfg }
}

// WithTagName sets the struct tag selectors are read from.
func WithTagName(name string) Option {
	if name == "" {
		panic("WithTagName: name cannot be empty")
	}
	return func(o *options) { o.cfg.TagName = name }
}

// WithTimeLayouts sets the layouts tried, in order, for time.Time fields.
func WithTimeLayouts(layouts ...string) Option {
	if len(layouts) == 0 {
		panic("WithTimeLayouts: at least one layout is required")
	}
	return func(o *options) { o.cfg.TimeLayouts = layouts }
}

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithResolver shares an existing resolver, and its cache, between
// serializers. The resolver's own configuration takes precedence over
// WithConfig, WithTagName and WithTimeLayouts.
func WithResolver(r *Resolver) Option {
	if r == nil {
		panic("WithResolver: nil resolver")
	}
	return func(o *options) { o.resolver = r }
}

// WithEnum registers T as an enum leaf type, see RegisterEnum.
func WithEnum[T any](values map[string]T) Option {
	if len(values) == 0 {
		panic("WithEnum: no values")
	}
	return func(o *options) {
		o.register = append(o.register, func(r *Resolver) error {
			return RegisterEnum(r, values)
		})
	}
}
