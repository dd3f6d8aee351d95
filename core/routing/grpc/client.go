package grpc

import (
	"context"
	"slices"

	"github.com/anoideaopen/invoker/core/routing"
	"github.com/anoideaopen/invoker/core/signature"
	invokerv1 "github.com/anoideaopen/invoker/proto/invoker/v1"
	"google.golang.org/grpc"
)

// Client calls a remote invoker service.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a Client over cc.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Invoke calls function with args in text form and returns the formatted result.
func (c *Client) Invoke(ctx context.Context, function, args string, opts ...grpc.CallOption) (string, error) {
	in := &invokerv1.InvokeRequest{Function: function, Args: args}

	out := new(invokerv1.InvokeResponse)
	if err := c.cc.Invoke(ctx, methodURL("Invoke"), in, out, opts...); err != nil {
		return "", err
	}

	return out.GetResult(), nil
}

// InvokeDocument calls function with the arguments read from document. An empty format
// means yaml.
func (c *Client) InvokeDocument(
	ctx context.Context,
	function, format, document string,
	opts ...grpc.CallOption,
) (string, error) {
	in := &invokerv1.InvokeDocumentRequest{
		Function: function,
		Document: document,
		Format:   format,
	}

	out := new(invokerv1.InvokeResponse)
	if err := c.cc.Invoke(ctx, methodURL("InvokeDocument"), in, out, opts...); err != nil {
		return "", err
	}

	return out.GetResult(), nil
}

// Check validates args against function.
func (c *Client) Check(ctx context.Context, function, args string, opts ...grpc.CallOption) error {
	in := &invokerv1.InvokeRequest{Function: function, Args: args}

	return c.cc.Invoke(ctx, methodURL("Check"), in, new(invokerv1.CheckResponse), opts...)
}

// Describe reports the signature of function.
func (c *Client) Describe(ctx context.Context, function string, opts ...grpc.CallOption) (routing.Description, error) {
	in := &invokerv1.DescribeRequest{Function: function}

	out := new(invokerv1.Description)
	if err := c.cc.Invoke(ctx, methodURL("Describe"), in, out, opts...); err != nil {
		return routing.Description{}, err
	}

	return ProtoToDescription(out), nil
}

// List returns the sorted function names served by the remote router.
func (c *Client) List(ctx context.Context, opts ...grpc.CallOption) ([]string, error) {
	out := new(invokerv1.ListResponse)
	if err := c.cc.Invoke(ctx, methodURL("List"), new(invokerv1.ListRequest), out, opts...); err != nil {
		return nil, err
	}

	return out.GetFunctions(), nil
}

// ProtoToDescription is the inverse of DescriptionToProto.
func ProtoToDescription(d *invokerv1.Description) routing.Description {
	return routing.Description{
		Function:    d.GetFunction(),
		MethodName:  d.GetMethod(),
		Signature:   signature.ID(d.GetSignature()),
		Fingerprint: d.GetFingerprint(),
		Text:        d.GetText(),
		ReturnType:  d.GetReturnType(),
		ParamTypes:  slices.Clone(d.GetParamTypes()),
	}
}
