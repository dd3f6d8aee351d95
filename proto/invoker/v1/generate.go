// Package invokerv1 holds the wire messages of the invoker.v1.Invoker gRPC service.
package invokerv1

// validate.proto is resolved from the protoc-gen-validate module in the module cache.
//go:generate sh -c "protoc -I=../.. -I=$(go list -m -f '{{.Dir}}' github.com/envoyproxy/protoc-gen-validate) --go_out=paths=source_relative:../.. --validate_out=lang=go,paths=source_relative:../.. invoker/v1/invoker.proto"
