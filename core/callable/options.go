package callable

import (
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/types"
)

type options struct {
	name     string
	dialect  params.Dialect
	registry *types.Registry
}

// Option configures an Adapter.
type Option func(*options)

// WithName sets the name reported by the adapter.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithDialect sets the dialect used by the text entry points.
func WithDialect(d params.Dialect) Option {
	return func(o *options) {
		o.dialect = d
	}
}

// WithRegistry sets the registry the type bridges are looked up in.
func WithRegistry(r *types.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

func newOptions(opts []Option) options {
	o := options{
		dialect:  params.DefaultDialect,
		registry: types.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
