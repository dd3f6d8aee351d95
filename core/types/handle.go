package types

import (
	"strconv"
	"strings"
	"sync"
)

// Handle is the storage form of an object reference: an index into a HandleTable.
// The zero handle is the nil reference.
type Handle uint32

// HandleTable hands out stable handles for objects so that references can be carried
// by value inside parameter blocks and as text.
type HandleTable[T any] struct {
	mu    sync.RWMutex
	items map[Handle]*T
	index map[*T]Handle
	next  Handle
}

// NewHandleTable creates an empty table.
func NewHandleTable[T any]() *HandleTable[T] {
	return &HandleTable[T]{
		items: make(map[Handle]*T),
		index: make(map[*T]Handle),
		next:  1,
	}
}

// Put returns the handle of v, allocating one on first use.
func (t *HandleTable[T]) Put(v *T) Handle {
	if v == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.index[v]; ok {
		return h
	}

	h := t.next
	t.next++
	t.items[h] = v
	t.index[v] = h

	return h
}

// Get returns the object behind h, or nil for unknown handles.
func (t *HandleTable[T]) Get(h Handle) *T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.items[h]
}

// Release forgets h. Handles are never reused.
func (t *HandleTable[T]) Release(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, ok := t.items[h]; ok {
		delete(t.index, v)
		delete(t.items, h)
	}
}

// Len returns the number of live handles.
func (t *HandleTable[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.items)
}

// HandleCodec creates a bridge for *T references resolved through table.
func HandleCodec[T any](name string, table *HandleTable[T]) *Codec[*T, Handle] {
	return NewCodec(Invalid, name, CodecFuncs[*T, Handle]{
		ToStorage: table.Put,
		ToReal:    table.Get,
		Parse: func(in string) (Handle, error) {
			v, err := strconv.ParseUint(strings.TrimSpace(in), 10, 32)
			return Handle(v), err
		},
		Format: func(h Handle) string {
			return strconv.FormatUint(uint64(h), 10)
		},
	})
}

// RegisterHandle registers *T as a handle type in r under a fresh identifier.
func RegisterHandle[T any](r *Registry, name string, table *HandleTable[T]) (Bridge, error) {
	return r.Register(HandleCodec(name, table))
}
