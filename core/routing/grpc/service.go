package grpc

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
	"github.com/anoideaopen/invoker/core/types"
	invokerv1 "github.com/anoideaopen/invoker/proto/invoker/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Document formats accepted by InvokeDocument.
const (
	FormatYAML = "yaml"
	FormatXML  = "xml"
)

var (
	// ErrInvalidRequest is returned when a request breaks the rules of its message or
	// carries a document that does not parse.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedFormat is returned for an unknown document format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

var _ InvokerServer = (*Service)(nil)

// Service serves a routing.Router over gRPC.
type Service struct {
	router   routing.Router
	registry *types.Registry
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRegistry sets the registry used to name types in Describe. The default registry
// is used otherwise.
func WithRegistry(reg *types.Registry) ServiceOption {
	return func(s *Service) {
		s.registry = reg
	}
}

// NewService creates a Service dispatching to r.
func NewService(r routing.Router, opts ...ServiceOption) *Service {
	s := &Service{
		router:   r,
		registry: types.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Invoke calls the requested function with arguments in text form.
func (s *Service) Invoke(ctx context.Context, req *invokerv1.InvokeRequest) (*invokerv1.InvokeResponse, error) {
	out, err := routing.BindContext(ctx, s.router).Invoke(req.GetFunction(), req.GetArgs())
	if err != nil {
		return nil, toStatus(err)
	}

	return &invokerv1.InvokeResponse{Result: out}, nil
}

// InvokeDocument calls the requested function with the arguments read from the
// document. The format selects yaml (default) or xml.
func (s *Service) InvokeDocument(
	ctx context.Context,
	req *invokerv1.InvokeDocumentRequest,
) (*invokerv1.InvokeResponse, error) {
	node, err := document(req)
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := routing.BindContext(ctx, s.router).InvokeDocument(req.GetFunction(), node)
	if err != nil {
		return nil, toStatus(err)
	}

	return &invokerv1.InvokeResponse{Result: out}, nil
}

// Check validates the arguments against the requested function.
func (s *Service) Check(ctx context.Context, req *invokerv1.InvokeRequest) (*invokerv1.CheckResponse, error) {
	if err := routing.BindContext(ctx, s.router).Check(req.GetFunction(), req.GetArgs()); err != nil {
		return nil, toStatus(err)
	}

	return &invokerv1.CheckResponse{}, nil
}

// Describe reports the signature of the named function.
func (s *Service) Describe(_ context.Context, req *invokerv1.DescribeRequest) (*invokerv1.Description, error) {
	for _, d := range routing.Describe(s.router, s.registry) {
		if d.Function == req.GetFunction() {
			return DescriptionToProto(d), nil
		}
	}

	return nil, toStatus(fmt.Errorf("%w: %s", routing.ErrUnsupportedMethod, req.GetFunction()))
}

// List returns the sorted function names.
func (s *Service) List(context.Context, *invokerv1.ListRequest) (*invokerv1.ListResponse, error) {
	descriptions := routing.Describe(s.router, s.registry)

	names := make([]string, len(descriptions))
	for i, d := range descriptions {
		names[i] = d.Function
	}

	return &invokerv1.ListResponse{Functions: names}, nil
}

// DescriptionToProto converts d to the message returned by Describe.
func DescriptionToProto(d routing.Description) *invokerv1.Description {
	return &invokerv1.Description{
		Function:    d.Function,
		Method:      d.MethodName,
		Signature:   string(d.Signature),
		Fingerprint: d.Fingerprint,
		Text:        d.Text,
		ReturnType:  d.ReturnType,
		ParamTypes:  slices.Clone(d.ParamTypes),
	}
}

func document(req *invokerv1.InvokeDocumentRequest) (params.Node, error) {
	doc := req.GetDocument()
	if strings.TrimSpace(doc) == "" {
		return nil, nil
	}

	switch format := req.GetFormat(); format {
	case "", FormatYAML:
		node, err := params.ParseYAML([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return node, nil

	case FormatXML:
		node, err := params.ParseXML([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return node, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func toStatus(err error) error {
	var code codes.Code

	switch {
	case errors.Is(err, routing.ErrUnsupportedMethod):
		code = codes.NotFound

	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, types.ErrInvalidArgumentValue),
		errors.Is(err, params.ErrIncorrectArgumentCount),
		errors.Is(err, callable.ErrSignatureMismatch):
		code = codes.InvalidArgument

	default:
		code = codes.Internal
	}

	return status.Error(code, err.Error())
}
