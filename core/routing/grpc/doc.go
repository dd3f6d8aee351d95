// Package grpc serves a [routing.Router] over gRPC.
//
// The service "invoker.v1.Invoker" is declared in proto/invoker/v1/invoker.proto:
//
//	rpc Invoke(InvokeRequest) returns (InvokeResponse);
//	rpc InvokeDocument(InvokeDocumentRequest) returns (InvokeResponse);
//	rpc Check(InvokeRequest) returns (CheckResponse);
//	rpc Describe(DescribeRequest) returns (Description);
//	rpc List(ListRequest) returns (ListResponse);
//
// [InvokerServiceDesc] binds it to a [routing.Router] by hand. Every request is checked
// against the validate rules of its message before it is dispatched: the function name
// must be 1 to 256 characters long and a document format must be empty, "yaml" or "xml".
//
// Serving a router:
//
//	server := grpc.NewServer(grpc.ChainUnaryInterceptor(invokergrpc.UnaryServerLogger()))
//	invokergrpc.RegisterInvokerServer(server, invokergrpc.NewService(router))
//
// Calling it:
//
//	client := invokergrpc.NewClient(conn)
//	out, err := client.Invoke(ctx, "add", "3,4")
//
// # Status Codes
//
// Unknown functions are reported as codes.NotFound. Malformed requests, arguments that
// fail to parse or validate and wrong argument counts are reported as
// codes.InvalidArgument. Everything else, including errors returned by the bound
// function and recovered panics, is reported as codes.Internal.
package grpc
