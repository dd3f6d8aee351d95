// Package mux provides a multiplexer that allows multiple
// [github.com/anoideaopen/invoker/core/routing.Router] instances to be used together.
// This is useful when some functions are discovered by reflection on a service while
// others are registered by hand. The `mux.Router` delegates each call to the router
// defining the function.
//
// Example usage:
//
//	// Initialize individual routers
//	reflectRouter := reflect.MustNewRouter(&Calculator{})
//	tableRouter := table.NewRouter().
//	    MustRegister("concat", callable.Func2(func(a, b string) string { return a + b }))
//
//	// Create a multiplexer router
//	muxRouter, err := mux.NewRouter(reflectRouter, tableRouter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Serve it over gRPC
//	server := grpc.NewServer()
//	invokergrpc.RegisterInvokerServer(server, invokergrpc.NewService(muxRouter))
//
// # Error Handling
//
// If a function is defined more than once across the provided routers, NewRouter
// returns an error wrapping [routing.ErrMethodAlreadyDefined] to avoid ambiguity in
// routing.
//
// Additionally, if a function is not supported by any of the provided routers,
// the multiplexer returns an error wrapping [routing.ErrUnsupportedMethod].
package mux
