package telemetry

import (
	"github.com/anoideaopen/invoker/core/signature"
	"go.opentelemetry.io/otel/attribute"
)

// Operation is the kind of router call a span covers.
type Operation int

func (op Operation) String() string {
	switch op {
	case OpInvoke:
		return "invoke"
	case OpInvokeDocument:
		return "invoke_document"
	case OpCheck:
		return "check"
	case OpUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

const (
	OpUnknown Operation = iota
	OpInvoke
	OpInvokeDocument
	OpCheck
)

// Attribute keys.
const (
	KeyOperation = attribute.Key("invoker.operation")
	KeyFunction  = attribute.Key("invoker.function")
	KeySignature = attribute.Key("invoker.signature")
	KeyRPCMethod = attribute.Key("rpc.method")
)

func OperationAttr(op Operation) attribute.KeyValue {
	return KeyOperation.String(op.String())
}

func Function(name string) attribute.KeyValue {
	return KeyFunction.String(name)
}

func Signature(id signature.ID) attribute.KeyValue {
	return KeySignature.String(string(id))
}

func RPCMethod(fullMethod string) attribute.KeyValue {
	return KeyRPCMethod.String(fullMethod)
}
