package types

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// nextCustom hands out custom identifiers. It is shared by every registry so that two
// types registered in different registries never share an identifier, and therefore
// never share a signature.
var nextCustom atomic.Uint32

func init() {
	nextCustom.Store(uint32(FirstCustom))
}

// allocateID returns a fresh custom identifier.
func allocateID() TypeID {
	return TypeID(nextCustom.Add(1) - 1)
}

// reserveID moves the allocator past an identifier chosen by the caller.
func reserveID(id TypeID) {
	for {
		cur := nextCustom.Load()
		if uint32(id) < cur || nextCustom.CompareAndSwap(cur, uint32(id)+1) {
			return
		}
	}
}

// reassigner is implemented by bridges that accept an identifier chosen by the registry.
type reassigner interface {
	reassign(id TypeID) Bridge
}

func (c *Codec[T, S]) reassign(id TypeID) Bridge { return c.withID(id) }

// Registry maps Go types and type identifiers to their bridges.
// A type must be registered before it can appear in any signature.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]Bridge
	byID   map[TypeID]Bridge
}

// NewRegistry creates a registry preloaded with the built-in bridges.
func NewRegistry() *Registry {
	r := &Registry{
		byType: make(map[reflect.Type]Bridge),
		byID:   make(map[TypeID]Bridge),
	}

	for _, b := range builtinBridges() {
		if _, err := r.Register(b); err != nil {
			panic(err)
		}
	}

	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the generic helpers.
func Default() *Registry {
	return defaultRegistry
}

// Register adds b to the registry and returns the bridge as stored.
// A bridge carrying the Invalid identifier is given a custom identifier unique within the
// process, across all registries. Registering a Go type twice, or reusing an identifier,
// is an error.
func (r *Registry) Register(b Bridge) (Bridge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := b.RealType()
	if _, ok := r.byType[t]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, t)
	}

	if b.TypeID() == Invalid {
		ra, ok := b.(reassigner)
		if !ok {
			return nil, fmt.Errorf("%w: %s: bridge has no type id", ErrUnsupportedType, t)
		}
		b = ra.reassign(allocateID())
	}

	if prev, ok := r.byID[b.TypeID()]; ok {
		return nil, fmt.Errorf("%w: %d by %s", ErrIDAlreadyUsed, b.TypeID(), prev.RealType())
	}

	if b.TypeID() >= FirstCustom {
		reserveID(b.TypeID())
	}

	r.byType[t] = b
	r.byID[b.TypeID()] = b

	return b, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(b Bridge) Bridge {
	b, err := r.Register(b)
	if err != nil {
		panic(err)
	}

	return b
}

// Lookup returns the bridge registered for t.
func (r *Registry) Lookup(t reflect.Type) (Bridge, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byType[t]
	return b, ok
}

// ByID returns the bridge registered under id.
func (r *Registry) ByID(id TypeID) (Bridge, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	return b, ok
}

// NameOf returns the bridge name for id, falling back to TypeID.String.
func (r *Registry) NameOf(id TypeID) string {
	if b, ok := r.ByID(id); ok {
		return b.Name()
	}

	return id.String()
}

// Bridges returns all registered bridges ordered by identifier.
func (r *Registry) Bridges() []Bridge {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Bridge, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TypeID() < out[j].TypeID() })

	return out
}

// For returns the bridge of T from the default registry.
// It panics if T has not been registered.
func For[T any]() Bridge {
	return ForIn[T](defaultRegistry)
}

// ForIn returns the bridge of T from r.
// It panics if T has not been registered.
func ForIn[T any](r *Registry) Bridge {
	t := reflect.TypeFor[T]()

	b, ok := r.Lookup(t)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnsupportedType, t))
	}

	return b
}

// LookupType returns the bridge of T from r.
func LookupType[T any](r *Registry) (Bridge, bool) {
	return r.Lookup(reflect.TypeFor[T]())
}
