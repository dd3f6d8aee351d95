package routing

import (
	"context"
	"errors"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
)

var (
	// ErrMethodAlreadyDefined is returned when a function name is registered twice.
	ErrMethodAlreadyDefined = errors.New("method has already been defined")

	// ErrUnsupportedMethod is returned when a function is not known to the router.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrInvalidMethodName is returned when a function name is empty.
	ErrInvalidMethodName = errors.New("invalid method name")
)

// Function represents the name under which a callable is exposed.
type Function = string

// Method represents an endpoint of a router.
type Method struct {
	Function   Function          // The name the method is called by.
	MethodName string            // The name of the bound Go method or function.
	NumArgs    int               // Number of arguments the method takes.
	Signature  signature.ID      // Signature of the callable.
	ReturnType types.TypeID      // types.Void for methods without a result.
	ParamTypes []types.TypeID    // Parameter types in order.
	Callable   callable.Callable // The callable invoked for this method.
}

// NewMethod describes c exposed as function.
func NewMethod(function Function, methodName string, c callable.Callable) Method {
	paramTypes := make([]types.TypeID, c.ParamCount())
	for i := range paramTypes {
		paramTypes[i] = c.ParamTypeID(i)
	}

	return Method{
		Function:   function,
		MethodName: methodName,
		NumArgs:    c.ParamCount(),
		Signature:  c.Signature(),
		ReturnType: c.ReturnTypeID(),
		ParamTypes: paramTypes,
		Callable:   c,
	}
}

// Router defines the interface for looking up callables by name and invoking them.
type Router interface {
	// Check validates the provided arguments for the specified function.
	// It returns an error if the validation fails.
	Check(function, args string) error

	// Invoke calls the specified function with arguments in text form.
	// It returns the formatted result, the empty string for functions without one.
	Invoke(function, args string) (string, error)

	// InvokeDocument calls the specified function with arguments read from the
	// children of node.
	InvokeDocument(function string, node params.Node) (string, error)

	// Methods retrieves a map of all available methods, keyed by their function names.
	Methods() map[Function]Method
}

// ContextBinder is implemented by routers that carry request scoped values, such as a
// trace span, into the calls they dispatch.
type ContextBinder interface {
	WithContext(ctx context.Context) Router
}

// BindContext returns r bound to ctx when r implements ContextBinder, and r itself
// otherwise.
func BindContext(ctx context.Context, r Router) Router {
	if b, ok := r.(ContextBinder); ok {
		return b.WithContext(ctx)
	}

	return r
}
