package params

import (
	"errors"
	"fmt"

	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
)

// Error types.
var (
	ErrTooManyParams          = errors.New("too many parameters")
	ErrNilBridge              = errors.New("nil type bridge")
	ErrIncorrectArgumentCount = errors.New("incorrect number of arguments")
)

// Layout is the fixed shape of a parameter block: the bridges of the return value and of
// every parameter, and the signature derived from them. A layout is immutable and may be
// shared between goroutines.
type Layout struct {
	sig    signature.ID
	ret    types.Bridge
	params []types.Bridge
}

// NewLayout creates a layout. A nil ret describes a void signature.
func NewLayout(ret types.Bridge, params ...types.Bridge) (*Layout, error) {
	if len(params) > signature.MaxParams {
		return nil, fmt.Errorf(
			"%w: found %d but at most %d are supported",
			ErrTooManyParams,
			len(params),
			signature.MaxParams,
		)
	}

	retID := types.Void
	if ret != nil {
		retID = ret.TypeID()
	}

	ids := make([]types.TypeID, len(params))
	for i, p := range params {
		if p == nil {
			return nil, fmt.Errorf("%w: parameter %d", ErrNilBridge, i)
		}
		ids[i] = p.TypeID()
	}

	return &Layout{
		sig:    signature.Encode(retID, ids...),
		ret:    ret,
		params: append([]types.Bridge(nil), params...),
	}, nil
}

// MustLayout is like NewLayout but panics on error.
func MustLayout(ret types.Bridge, params ...types.Bridge) *Layout {
	l, err := NewLayout(ret, params...)
	if err != nil {
		panic(err)
	}

	return l
}

func (l *Layout) Signature() signature.ID { return l.sig }

// ReturnBridge returns the bridge of the return value, nil for void layouts.
func (l *Layout) ReturnBridge() types.Bridge { return l.ret }

// Params returns a copy of the parameter bridges.
func (l *Layout) Params() []types.Bridge {
	return append([]types.Bridge(nil), l.params...)
}

// Param returns the i-th parameter bridge or nil when i is out of range.
func (l *Layout) Param(i int) types.Bridge {
	if i < 0 || i >= len(l.params) {
		return nil
	}

	return l.params[i]
}

func (l *Layout) Len() int { return len(l.params) }

func (l *Layout) IsVoid() bool { return l.ret == nil }

// ReturnTypeID returns the type of the return value, Void for void layouts.
func (l *Layout) ReturnTypeID() types.TypeID {
	if l.ret == nil {
		return types.Void
	}

	return l.ret.TypeID()
}

// ParamTypeID returns the type of the i-th parameter, Invalid when i is out of range.
func (l *Layout) ParamTypeID(i int) types.TypeID {
	if i < 0 || i >= len(l.params) {
		return types.Invalid
	}

	return l.params[i].TypeID()
}

// New returns a block with every slot, the return slot included, set to its default.
func (l *Layout) New() *Block {
	b := &Block{
		layout: l,
		slots:  make([]any, len(l.params)),
	}
	for i, p := range l.params {
		b.slots[i] = p.DefaultStorage()
	}
	if l.ret != nil {
		b.ret = l.ret.DefaultStorage()
	}

	return b
}

// FromText builds a block from text in the default dialect.
func (l *Layout) FromText(s string) *Block {
	return l.FromTextDialect(s, DefaultDialect)
}

// FromTextDialect builds a block from delimited text. Missing trailing fields keep their
// defaults, extra fields are ignored and malformed fields are replaced by defaults.
func (l *Layout) FromTextDialect(s string, d Dialect) *Block {
	return l.fromFields(d.Split(s))
}

// FromDocument builds a block from the children of n in document order, each child's
// text being parsed like a text field.
func (l *Layout) FromDocument(n Node) *Block {
	if n == nil {
		return l.New()
	}

	children := n.Children()
	fields := make([]string, 0, min(len(children), len(l.params)))
	for _, c := range children {
		if len(fields) == len(l.params) {
			break
		}
		fields = append(fields, c.Text())
	}

	return l.fromFields(fields)
}

func (l *Layout) fromFields(fields []string) *Block {
	b := l.New()
	for i := range min(len(fields), len(l.params)) {
		b.slots[i] = l.params[i].Parse(fields[i])
	}

	return b
}

// ParseFields parses fields strictly. Every malformed field and a field count that differs
// from the layout length are reported; the returned block holds defaults in their place.
func (l *Layout) ParseFields(fields []string) (*Block, error) {
	b := l.New()

	var errs []error
	if len(fields) != len(l.params) {
		errs = append(errs, fmt.Errorf(
			"%w: found %d but expected %d",
			ErrIncorrectArgumentCount,
			len(fields),
			len(l.params),
		))
	}

	for i := range min(len(fields), len(l.params)) {
		storage, err := l.params[i].ParseStrict(fields[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: argument %d", err, i))
		}
		b.slots[i] = storage
	}

	return b, errors.Join(errs...)
}

// Format renders the parameter slots of b in the default dialect.
func (l *Layout) Format(b *Block) string {
	return l.FormatDialect(b, DefaultDialect)
}

// FormatDialect renders the parameter slots of b so that FromTextDialect restores them.
func (l *Layout) FormatDialect(b *Block, d Dialect) string {
	fields := make([]string, len(l.params))
	for i, p := range l.params {
		fields[i] = p.Format(b.Slot(i))
	}

	return d.Join(fields)
}

// FormatReturn renders the return slot of b, the empty string for void layouts.
func (l *Layout) FormatReturn(b *Block) string {
	if l.ret == nil {
		return ""
	}

	return l.ret.Format(b.Return())
}
