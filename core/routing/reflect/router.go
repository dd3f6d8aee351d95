package reflect

import (
	"errors"
	"fmt"
	"maps"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/logger"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/stringsx"
	"github.com/anoideaopen/invoker/core/types"
	"github.com/sirupsen/logrus"
)

type options struct {
	prefixes []string
	disabled []string
	dialect  params.Dialect
	registry *types.Registry
}

// Option configures a Router.
type Option func(*options)

// WithPrefix exposes only the methods starting with one of the prefixes. The prefix is
// removed from the function name, e.g. "QueryBalance" becomes "balance".
func WithPrefix(prefixes ...string) Option {
	return func(o *options) {
		o.prefixes = append(o.prefixes, prefixes...)
	}
}

// WithDisabled hides the methods with the given Go names.
func WithDisabled(methods ...string) Option {
	return func(o *options) {
		o.disabled = append(o.disabled, methods...)
	}
}

// WithDialect sets the text dialect of the arguments.
func WithDialect(d params.Dialect) Option {
	return func(o *options) {
		o.dialect = d
	}
}

// WithRegistry sets the registry the argument types are looked up in.
func WithRegistry(r *types.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// Router routes calls to the exported methods of a service value.
type Router struct {
	service any
	methods map[routing.Function]routing.Method
}

// NewRouter creates a new Router for service. Every exported method whose parameters
// and result have registered bridges is exposed under its name with the first letter
// lowered; other methods are skipped.
func NewRouter(service any, opts ...Option) (*Router, error) {
	o := options{
		dialect:  params.DefaultDialect,
		registry: types.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Router{
		service: service,
		methods: make(map[routing.Function]routing.Method),
	}

	for _, method := range Methods(service) {
		if stringsx.OneOf(method, o.disabled...) {
			continue
		}

		m, err := newMethod(service, method, o)
		if err != nil {
			if errors.Is(err, routing.ErrUnsupportedMethod) {
				logger.Logger().WithError(err).Debug("method skipped")
				continue
			}

			return nil, err
		}

		if _, ok := r.methods[m.Function]; ok {
			return nil, fmt.Errorf("%w, method: '%s'", routing.ErrMethodAlreadyDefined, m.Function)
		}

		r.methods[m.Function] = m

		logger.Logger().WithFields(logrus.Fields{
			"function":      m.Function,
			"method":        method,
			"signature":     m.Signature,
			"returns_error": MethodReturnsError(service, method),
		}).Debug("method registered")
	}

	return r, nil
}

// MustNewRouter creates a new Router and panics if an error occurs.
func MustNewRouter(service any, opts ...Option) *Router {
	r, err := NewRouter(service, opts...)
	if err != nil {
		panic(err)
	}

	return r
}

func newMethod(service any, method string, o options) (routing.Method, error) {
	function := method
	if len(o.prefixes) > 0 {
		if !stringsx.HasPrefix(method, o.prefixes...) {
			return routing.Method{}, fmt.Errorf("%w: %s", routing.ErrUnsupportedMethod, method)
		}
		function = stringsx.TrimFirstPrefix(method, o.prefixes...)
	}

	if len(function) == 0 {
		return routing.Method{}, fmt.Errorf("%w: %s", routing.ErrInvalidMethodName, method)
	}

	if n := InputParamCounts(service, method); n > signature.MaxParams {
		return routing.Method{}, fmt.Errorf("%w: %s: %d parameters", routing.ErrUnsupportedMethod, method, n)
	}

	adapter, err := callable.FromMethod(
		service,
		method,
		callable.WithDialect(o.dialect),
		callable.WithRegistry(o.registry),
	)
	if err != nil {
		return routing.Method{}, fmt.Errorf("%w: %w", routing.ErrUnsupportedMethod, err)
	}

	return routing.NewMethod(stringsx.LowerFirstChar(function), method, adapter), nil
}

// Service returns the value the router dispatches to.
func (r *Router) Service() any { return r.service }

func (r *Router) method(function string) (routing.Method, error) {
	m, ok := r.methods[function]
	if !ok {
		return routing.Method{}, fmt.Errorf("%w: %s", routing.ErrUnsupportedMethod, function)
	}

	return m, nil
}

// Check validates the provided arguments for the specified function.
func (r *Router) Check(function, args string) error {
	m, err := r.method(function)
	if err != nil {
		return err
	}

	return routing.Check(m, args)
}

// Invoke calls the specified function with arguments in text form.
func (r *Router) Invoke(function, args string) (string, error) {
	m, err := r.method(function)
	if err != nil {
		return "", err
	}

	return routing.Invoke(m, args)
}

// InvokeDocument calls the specified function with arguments read from node.
func (r *Router) InvokeDocument(function string, node params.Node) (string, error) {
	m, err := r.method(function)
	if err != nil {
		return "", err
	}

	return routing.InvokeDocument(m, node)
}

// Methods returns a snapshot of the available methods, keyed by their function names.
func (r *Router) Methods() map[routing.Function]routing.Method {
	return maps.Clone(r.methods)
}
