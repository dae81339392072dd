package threadpool

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/threadpool/observe"
)

// config holds Pool configuration.
type config struct {
	// Name identifies the pool in observer events.
	// Default: "threadpool".
	Name string

	// Observer receives pool lifecycle events.
	// Default: observe.NoopObserver.
	Observer observe.Observer
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Name:     "threadpool",
		Observer: observe.NewNoopObserver(),
	}
}

// validateConfig performs lightweight invariants checks after options are
// applied.
func validateConfig(cfg *config) error {
	if cfg.Name == "" {
		return errorc.With(ErrInvalidConfig, errorc.String("", "pool name must not be empty"))
	}
	if cfg.Observer == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "observer must not be nil"))
	}
	return nil
}

// Option configures a Pool. Use New(size, opts...) to construct a Pool via
// options. Options return an error on invalid input instead of panicking.
type Option func(*config) error

// WithName sets the pool name surfaced through observer events.
func WithName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithName requires a non-empty name"))
		}
		cfg.Name = name
		return nil
	}
}

// WithObserver injects the observability hook receiving pool lifecycle
// events. The observer must be safe for concurrent use.
func WithObserver(o observe.Observer) Option {
	return func(cfg *config) error {
		if o == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithObserver requires a non-nil observer"))
		}
		cfg.Observer = o
		return nil
	}
}
