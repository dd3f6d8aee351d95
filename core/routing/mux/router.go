package mux

import (
	"fmt"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
)

// Router is a multiplexer that routes functions to the router defining them.
//
// Child routers are consulted in the order they were given, on every call, so methods
// registered with a child after the multiplexer was built are reachable through it.
type Router struct {
	routers []routing.Router
}

// NewRouter creates a new Router with the provided routing.Router instances.
// It returns an error if any function is defined more than once.
func NewRouter(router ...routing.Router) (*Router, error) {
	defined := make(map[routing.Function]struct{})

	for _, r := range router {
		for fn := range r.Methods() {
			if _, ok := defined[fn]; ok {
				return nil, fmt.Errorf("%w, method: '%s'", routing.ErrMethodAlreadyDefined, fn)
			}

			defined[fn] = struct{}{}
		}
	}

	return &Router{routers: router}, nil
}

// MustNewRouter is like NewRouter but panics on error.
func MustNewRouter(router ...routing.Router) *Router {
	r, err := NewRouter(router...)
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Router) route(function string) (routing.Router, error) {
	for _, m := range r.routers {
		if _, ok := m.Methods()[function]; ok {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", routing.ErrUnsupportedMethod, function)
}

// Check validates the provided arguments for the specified function.
func (r *Router) Check(function, args string) error {
	m, err := r.route(function)
	if err != nil {
		return err
	}

	return m.Check(function, args)
}

// Invoke calls the specified function with arguments in text form.
func (r *Router) Invoke(function, args string) (string, error) {
	m, err := r.route(function)
	if err != nil {
		return "", err
	}

	return m.Invoke(function, args)
}

// InvokeDocument calls the specified function with arguments read from node.
func (r *Router) InvokeDocument(function string, node params.Node) (string, error) {
	m, err := r.route(function)
	if err != nil {
		return "", err
	}

	return m.InvokeDocument(function, node)
}

// Methods retrieves a map of all available methods, keyed by their function names.
// When two children define the same function, the earlier child wins, as in routing.
func (r *Router) Methods() map[routing.Function]routing.Method {
	methods := make(map[routing.Function]routing.Method)

	for _, r := range r.routers {
		for fn, m := range r.Methods() {
			if _, ok := methods[fn]; !ok {
				methods[fn] = m
			}
		}
	}

	return methods
}
