package types

import "reflect"

// Bridge describes one type that may appear in a signature. It converts values between
// the real shape used by callers, the storage shape kept inside a parameter block, and text.
//
// All conversions are total: a value of the wrong dynamic type, or text that does not
// parse, is replaced by the type default instead of failing.
type Bridge interface {
	TypeID() TypeID
	Name() string
	RealType() reflect.Type
	StorageType() reflect.Type

	ToStorage(real any) any
	ToReal(storage any) any

	// Parse converts text to storage, falling back to DefaultStorage on malformed input.
	Parse(text string) any
	// ParseStrict converts text to storage and reports malformed input as a ValueError.
	ParseStrict(text string) (any, error)
	Format(storage any) string

	Default() any
	DefaultStorage() any
}

// Typed is implemented by bridges that can convert without boxing the real value.
type Typed[T any] interface {
	Bridge
	Load(storage any) T
	Store(real T) any
}

// CodecFuncs is the set of conversions backing a Codec.
// Default may be nil, in which case the zero value of T is used.
type CodecFuncs[T, S any] struct {
	ToStorage func(T) S
	ToReal    func(S) T
	Parse     func(string) (S, error)
	Format    func(S) string
	Default   func() T
}

// Codec is the generic Bridge implementation for a real type T stored as S.
type Codec[T, S any] struct {
	id   TypeID
	name string
	fn   CodecFuncs[T, S]
}

// NewCodec creates a Codec. ToStorage, ToReal, Parse and Format are required.
func NewCodec[T, S any](id TypeID, name string, fn CodecFuncs[T, S]) *Codec[T, S] {
	if fn.ToStorage == nil || fn.ToReal == nil || fn.Parse == nil || fn.Format == nil {
		panic("types: incomplete codec for " + name)
	}

	return &Codec[T, S]{id: id, name: name, fn: fn}
}

func identity[T any](v T) T { return v }

func (c *Codec[T, S]) TypeID() TypeID { return c.id }

func (c *Codec[T, S]) Name() string { return c.name }

func (c *Codec[T, S]) RealType() reflect.Type { return reflect.TypeFor[T]() }

func (c *Codec[T, S]) StorageType() reflect.Type { return reflect.TypeFor[S]() }

// withID returns a copy of the codec carrying a different identifier.
func (c *Codec[T, S]) withID(id TypeID) *Codec[T, S] {
	cp := *c
	cp.id = id
	return &cp
}

func (c *Codec[T, S]) defaultReal() T {
	if c.fn.Default != nil {
		return c.fn.Default()
	}

	var zero T
	return zero
}

func (c *Codec[T, S]) Default() any { return c.defaultReal() }

func (c *Codec[T, S]) DefaultStorage() any { return c.fn.ToStorage(c.defaultReal()) }

func (c *Codec[T, S]) Store(real T) any { return c.fn.ToStorage(real) }

func (c *Codec[T, S]) Load(storage any) T {
	s, ok := storage.(S)
	if !ok {
		return c.defaultReal()
	}

	return c.fn.ToReal(s)
}

func (c *Codec[T, S]) ToStorage(real any) any {
	v, ok := real.(T)
	if !ok {
		v = c.defaultReal()
	}

	return c.fn.ToStorage(v)
}

func (c *Codec[T, S]) ToReal(storage any) any { return c.Load(storage) }

func (c *Codec[T, S]) Parse(text string) any {
	s, err := c.fn.Parse(text)
	if err != nil {
		return c.DefaultStorage()
	}

	return s
}

func (c *Codec[T, S]) ParseStrict(text string) (any, error) {
	s, err := c.fn.Parse(text)
	if err != nil {
		return c.DefaultStorage(), NewValueError(text, c.RealType(), err)
	}

	return s, nil
}

func (c *Codec[T, S]) Format(storage any) string {
	s, ok := storage.(S)
	if !ok {
		s = c.fn.ToStorage(c.defaultReal())
	}

	return c.fn.Format(s)
}

// Real converts storage to T through b.
func Real[T any](b Bridge, storage any) T {
	if tb, ok := b.(Typed[T]); ok {
		return tb.Load(storage)
	}

	v, _ := b.ToReal(storage).(T)
	return v
}

// Store converts a real value to storage through b.
func Store[T any](b Bridge, v T) any {
	if tb, ok := b.(Typed[T]); ok {
		return tb.Store(v)
	}

	return b.ToStorage(v)
}
