package params

import (
	"reflect"

	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
)

// Block holds the storage values of one call: a slot per parameter and, unless the layout
// is void, a return slot. A block belongs to a single caller and is not safe for
// concurrent use.
type Block struct {
	layout *Layout
	slots  []any
	ret    any
}

func (b *Block) Layout() *Layout { return b.layout }

func (b *Block) Signature() signature.ID { return b.layout.sig }

func (b *Block) Len() int { return len(b.slots) }

// Slot returns the storage value of the i-th parameter, nil when i is out of range.
func (b *Block) Slot(i int) any {
	if i < 0 || i >= len(b.slots) {
		return nil
	}

	return b.slots[i]
}

// SetSlot stores a storage value into the i-th parameter slot. A value whose dynamic type
// is not the storage type of the slot is replaced by the default. It reports whether i
// is in range.
func (b *Block) SetSlot(i int, storage any) bool {
	if i < 0 || i >= len(b.slots) {
		return false
	}

	b.slots[i] = normalize(b.layout.params[i], storage)
	return true
}

// HasReturn reports whether the block has a return slot.
func (b *Block) HasReturn() bool { return b.layout.ret != nil }

// Return returns the storage value of the return slot, nil for void blocks.
func (b *Block) Return() any { return b.ret }

// SetReturn stores a storage value into the return slot. It is a no-op for void blocks.
func (b *Block) SetReturn(storage any) {
	if b.layout.ret == nil {
		return
	}

	b.ret = normalize(b.layout.ret, storage)
}

// TakeReturn returns the return slot and resets it to the default.
func (b *Block) TakeReturn() any {
	if b.layout.ret == nil {
		return nil
	}

	v := b.ret
	b.ret = b.layout.ret.DefaultStorage()

	return v
}

func normalize(bridge types.Bridge, storage any) any {
	if storage == nil || reflect.TypeOf(storage) != bridge.StorageType() {
		return bridge.DefaultStorage()
	}

	return storage
}

// Set converts v through the bridge of the i-th slot and stores it.
// It is a no-op when i is out of range.
func Set[T any](b *Block, i int, v T) {
	bridge := b.layout.Param(i)
	if bridge == nil {
		return
	}

	b.slots[i] = normalize(bridge, types.Store(bridge, v))
}

// Get returns the real value of the i-th slot. Out of range indexes and slots of a
// different type yield the zero value of T.
func Get[T any](b *Block, i int) T {
	bridge := b.layout.Param(i)
	if bridge == nil {
		var zero T
		return zero
	}

	return types.Real[T](bridge, b.slots[i])
}

// SetResult converts v through the return bridge and stores it in the return slot.
func SetResult[T any](b *Block, v T) {
	if b.layout.ret == nil {
		return
	}

	b.ret = normalize(b.layout.ret, types.Store(b.layout.ret, v))
}

// Result returns the real value of the return slot.
func Result[T any](b *Block) T {
	if b.layout.ret == nil {
		var zero T
		return zero
	}

	return types.Real[T](b.layout.ret, b.ret)
}
