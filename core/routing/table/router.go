package table

import (
	"fmt"
	"maps"
	"sync"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/logger"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
)

// Router exposes callables registered by hand. Registration may happen at any time and
// is safe for concurrent use with lookups and calls.
type Router struct {
	mu      sync.RWMutex
	methods map[routing.Function]routing.Method
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		methods: make(map[routing.Function]routing.Method),
	}
}

// Register exposes c under function. The method name is taken from the adapter name
// when c has one.
func (r *Router) Register(function routing.Function, c callable.Callable) error {
	if function == "" {
		return routing.ErrInvalidMethodName
	}

	methodName := function
	if named, ok := c.(interface{ Name() string }); ok && named.Name() != "" {
		methodName = named.Name()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.methods[function]; ok {
		return fmt.Errorf("%w, method: '%s'", routing.ErrMethodAlreadyDefined, function)
	}
	r.methods[function] = routing.NewMethod(function, methodName, c)

	logger.Logger().
		WithField("function", function).
		WithField("signature", c.Signature()).
		Debug("callable registered")

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Router) MustRegister(function routing.Function, c callable.Callable) *Router {
	if err := r.Register(function, c); err != nil {
		panic(err)
	}

	return r
}

// Lookup returns the method registered under function.
func (r *Router) Lookup(function routing.Function) (routing.Method, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.methods[function]
	return m, ok
}

func (r *Router) method(function routing.Function) (routing.Method, error) {
	m, ok := r.Lookup(function)
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

// Methods returns a snapshot of the registered methods.
func (r *Router) Methods() map[routing.Function]routing.Method {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.methods)
}
