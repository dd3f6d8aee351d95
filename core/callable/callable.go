package callable

import (
	"errors"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
)

// Error types.
var (
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrPanicked          = errors.New("callable panicked")
	ErrNotAFunction      = errors.New("not a function")
	ErrMethodNotFound    = errors.New("method not found")
	ErrUnsupportedResult = errors.New("unsupported result list")
)

// Callable is a function of an arbitrary signature reached through one uniform interface.
//
// The four call entry points never fail: a block built for another signature leaves the
// block untouched and the bound function is not run, and text or document input that
// does not parse is replaced by defaults.
type Callable interface {
	Signature() signature.ID
	// ReturnTypeID returns types.Void for functions without a result.
	ReturnTypeID() types.TypeID
	ParamCount() int
	// ParamTypeID returns types.Invalid when i is out of range.
	ParamTypeID(i int) types.TypeID

	// Call runs the function over b and stores the result in its return slot.
	Call(b *params.Block)
	// CallConst runs the function over b and discards the result.
	CallConst(b *params.Block)
	// CallText parses s into arguments and returns the formatted result,
	// the empty string for void functions.
	CallText(s string) string
	// CallDocument is like CallText but reads the arguments from the children of n.
	CallDocument(n params.Node) string
}
