// Package routing defines the Router interface, the registry through which callables
// are exposed by name.
//
// A router maps a function name to a [Method] holding a [callable.Callable] together
// with its signature and parameter types for introspection. Calls arrive as text or as
// a document node; routers use the checked entry points of callables when they have
// them so that failures are reported instead of being absorbed.
//
// Router interface implementations include:
//   - [github.com/anoideaopen/invoker/core/routing/table]: Callables registered by hand.
//   - [github.com/anoideaopen/invoker/core/routing/reflect]: Exported methods of a
//     service value, discovered by reflection.
//   - [github.com/anoideaopen/invoker/core/routing/mux]: Combines multiple routers.
//
// [github.com/anoideaopen/invoker/core/routing/grpc] serves any Router over gRPC and
// [github.com/anoideaopen/invoker/core/telemetry] wraps one with tracing.
//
// # Example
//
//	calc := reflect.MustNewRouter(&Calculator{})
//
//	tbl := table.NewRouter()
//	tbl.MustRegister("concat", callable.Func2(func(a, b string) string { return a + b }))
//
//	r, err := mux.NewRouter(calc, tbl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := r.Invoke("add", "3,4") // "7"
package routing
