// Package callable binds Go functions of arbitrary signatures to the [Callable] interface.
//
// An [Adapter] owns a [params.Layout] computed once at construction and a function that
// unpacks the slots of a matching [params.Block]. Adapters are built in three ways:
//
//   - FuncN and ActionN, N from 0 to 16, generated by internal/gen/adapters, for
//     functions with and without a result;
//   - [FromFunc] and [FromMethod], which inspect a function value by reflection and
//     also accept functions returning an error last;
//   - [New] with a hand-written [InvokeFunc].
//
// Every type in the signature must have a bridge in the registry the adapter is built
// with, otherwise construction fails (FuncN and ActionN panic).
//
// # Silent and checked calls
//
// Call, CallConst, CallText and CallDocument never report a failure. A block of another
// signature is left alone and the function is not run, malformed text becomes defaults,
// and an error returned by the function becomes the default result. TryCall,
// TryCallText and TryCallDocument report the same situations as errors:
// [ErrSignatureMismatch], a strict parse or [types.Checker] failure, the function's own
// error, or [ErrPanicked].
//
// # Example
//
//	sum := callable.Func2(func(a, b int32) int32 { return a + b })
//	sum.CallText("3,4") // "7"
//
//	b := sum.NewBlock()
//	params.Set(b, 0, int32(3))
//	params.Set(b, 1, int32(4))
//	sum.Call(b)
//	params.Result[int32](b) // 7
package callable
