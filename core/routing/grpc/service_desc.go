package grpc

import (
	"context"

	invokerv1 "github.com/anoideaopen/invoker/proto/invoker/v1"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

// ServiceName is the fully qualified name of the invoker service.
const ServiceName = "invoker.v1.Invoker"

// InvokerServer is the server API for the invoker service.
type InvokerServer interface {
	// Invoke calls a function with arguments in text form.
	Invoke(context.Context, *invokerv1.InvokeRequest) (*invokerv1.InvokeResponse, error)
	// InvokeDocument calls a function with arguments read from a YAML or XML document.
	InvokeDocument(context.Context, *invokerv1.InvokeDocumentRequest) (*invokerv1.InvokeResponse, error)
	// Check validates arguments without calling the function.
	Check(context.Context, *invokerv1.InvokeRequest) (*invokerv1.CheckResponse, error)
	// Describe reports the signature of a function.
	Describe(context.Context, *invokerv1.DescribeRequest) (*invokerv1.Description, error)
	// List returns the sorted function names.
	List(context.Context, *invokerv1.ListRequest) (*invokerv1.ListResponse, error)
}

// InvokerServiceDesc is the grpc.ServiceDesc for the invoker service declared in
// proto/invoker/v1/invoker.proto. Requests are checked against their validate rules
// before they reach the server.
var InvokerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InvokerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Invoke", InvokerServer.Invoke),
		unary("InvokeDocument", InvokerServer.InvokeDocument),
		unary("Check", InvokerServer.Check),
		unary("Describe", InvokerServer.Describe),
		unary("List", InvokerServer.List),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoker/v1/invoker.proto",
}

// RegisterInvokerServer registers srv on s.
func RegisterInvokerServer(s grpc.ServiceRegistrar, srv InvokerServer) {
	s.RegisterService(&InvokerServiceDesc, srv)
}

func unary[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](
	name string,
	call func(InvokerServer, context.Context, PReq) (Resp, error),
) grpc.MethodDesc {
	fullMethod := methodURL(name)

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}

			handler := func(ctx context.Context, req any) (any, error) {
				if err := validate(req); err != nil {
					return nil, err
				}

				return call(srv.(InvokerServer), ctx, req.(PReq))
			}

			if interceptor == nil {
				return handler(ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}

			return interceptor(ctx, in, info, handler)
		},
	}
}
