package callable

import (
	"fmt"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
)

// InvokeFunc runs a bound function over a block whose signature has already been
// checked. It returns the result in storage form, nil for void functions.
type InvokeFunc func(b *params.Block) (any, error)

// Adapter binds a function of one concrete signature to the Callable interface.
// It is immutable after construction and safe for concurrent use when the bound
// function is.
type Adapter struct {
	name     string
	layout   *params.Layout
	dialect  params.Dialect
	registry *types.Registry
	invoke   InvokeFunc
}

var _ Callable = (*Adapter)(nil)

// New creates an adapter running fn over blocks of the given layout.
func New(layout *params.Layout, fn InvokeFunc, opts ...Option) *Adapter {
	return newAdapter(layout, newOptions(opts), fn)
}

func newAdapter(layout *params.Layout, o options, fn InvokeFunc) *Adapter {
	return &Adapter{
		name:     o.name,
		layout:   layout,
		dialect:  o.dialect,
		registry: o.registry,
		invoke:   fn,
	}
}

// Null returns a placeholder adapter for layout. It never runs anything and always
// produces the default of the return type.
func Null(layout *params.Layout, opts ...Option) *Adapter {
	return New(layout, func(*params.Block) (any, error) {
		if layout.IsVoid() {
			return nil, nil
		}

		return layout.ReturnBridge().DefaultStorage(), nil
	}, opts...)
}

func (a *Adapter) Name() string { return a.name }

func (a *Adapter) Layout() *params.Layout { return a.layout }

func (a *Adapter) Signature() signature.ID { return a.layout.Signature() }

func (a *Adapter) ReturnTypeID() types.TypeID { return a.layout.ReturnTypeID() }

func (a *Adapter) ParamCount() int { return a.layout.Len() }

func (a *Adapter) ParamTypeID(i int) types.TypeID { return a.layout.ParamTypeID(i) }

// String returns the name and the readable signature, e.g. "sum int32(int32, int32)".
func (a *Adapter) String() string {
	desc := signature.Describe(a.Signature(), a.registry)
	if a.name == "" {
		return desc
	}

	return a.name + " " + desc
}

// NewBlock returns a block of the adapter's layout holding defaults.
func (a *Adapter) NewBlock() *params.Block { return a.layout.New() }

// BlockFromText builds a block from text in the adapter's dialect.
func (a *Adapter) BlockFromText(s string) *params.Block {
	return a.layout.FromTextDialect(s, a.dialect)
}

func (a *Adapter) BlockFromDocument(n params.Node) *params.Block {
	return a.layout.FromDocument(n)
}

func (a *Adapter) matches(b *params.Block) bool {
	return b != nil && b.Signature() == a.layout.Signature()
}

// result runs the function and substitutes the default result when it fails.
func (a *Adapter) result(b *params.Block) any {
	res, err := a.invoke(b)
	if err != nil && !a.layout.IsVoid() {
		return a.layout.ReturnBridge().DefaultStorage()
	}

	return res
}

func (a *Adapter) Call(b *params.Block) {
	if !a.matches(b) {
		return
	}

	b.SetReturn(a.result(b))
}

func (a *Adapter) CallConst(b *params.Block) {
	if !a.matches(b) {
		return
	}

	_, _ = a.invoke(b)
}

func (a *Adapter) CallText(s string) string {
	return a.format(a.result(a.BlockFromText(s)))
}

func (a *Adapter) CallDocument(n params.Node) string {
	return a.format(a.result(a.BlockFromDocument(n)))
}

func (a *Adapter) format(storage any) string {
	if a.layout.IsVoid() {
		return ""
	}

	return a.layout.ReturnBridge().Format(storage)
}

// TryCall is the checked form of Call. It reports a block of another signature, an error
// returned by the function and a recovered panic. The return slot is only written on
// success.
func (a *Adapter) TryCall(b *params.Block) error {
	if !a.matches(b) {
		return a.mismatch(b)
	}

	res, err := a.safeInvoke(b)
	if err != nil {
		return err
	}
	b.SetReturn(res)

	return nil
}

// TryCallText is the checked form of CallText. Arguments are parsed strictly and
// validated as by Validate before the function runs.
func (a *Adapter) TryCallText(s string) (string, error) {
	return a.tryFields(a.dialect.Split(s))
}

// TryCallDocument is the checked form of CallDocument.
func (a *Adapter) TryCallDocument(n params.Node) (string, error) {
	return a.tryFields(documentFields(n))
}

func (a *Adapter) tryFields(fields []string) (string, error) {
	b, err := a.parse(fields)
	if err != nil {
		return "", err
	}

	res, err := a.safeInvoke(b)
	if err != nil {
		return "", err
	}

	return a.format(res), nil
}

func (a *Adapter) mismatch(b *params.Block) error {
	if b == nil {
		return fmt.Errorf("%w: nil block for %s", ErrSignatureMismatch, a.Signature())
	}

	return fmt.Errorf(
		"%w: block %s, callable %s",
		ErrSignatureMismatch,
		b.Signature(),
		a.Signature(),
	)
}

func (a *Adapter) safeInvoke(b *params.Block) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("%w: %s: %v", ErrPanicked, a, r)
		}
	}()

	return a.invoke(b)
}

// Validate parses s strictly and checks every argument implementing types.Checker.
func (a *Adapter) Validate(s string) error {
	_, err := a.parse(a.dialect.Split(s))
	return err
}

// ValidateDocument is like Validate but reads the arguments from the children of n.
func (a *Adapter) ValidateDocument(n params.Node) error {
	_, err := a.parse(documentFields(n))
	return err
}

func (a *Adapter) parse(fields []string) (*params.Block, error) {
	b, err := a.layout.ParseFields(fields)
	if err != nil {
		return nil, err
	}

	for i := range b.Len() {
		v := a.layout.Param(i).ToReal(b.Slot(i))

		checker, ok := v.(types.Checker)
		if !ok {
			continue
		}
		if err := checker.Check(); err != nil {
			return nil, fmt.Errorf(
				"%w: '%s': validation failed: '%v': argument %d",
				types.ErrInvalidArgumentValue,
				fields[i],
				err,
				i,
			)
		}
	}

	return b, nil
}

func documentFields(n params.Node) []string {
	if n == nil {
		return nil
	}

	children := n.Children()
	fields := make([]string, len(children))
	for i, c := range children {
		fields[i] = c.Text()
	}

	return fields
}
