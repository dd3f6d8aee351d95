package types

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var deterministic = proto.MarshalOptions{Deterministic: true}

func newMessage[M proto.Message]() M {
	var zero M
	m, _ := zero.ProtoReflect().New().Interface().(M)
	return m
}

// ProtoCodec creates a bridge for a protobuf message type. Messages are stored in
// wire format and use protojson as their text form.
func ProtoCodec[M proto.Message](name string) *Codec[M, []byte] {
	return NewCodec(Invalid, name, CodecFuncs[M, []byte]{
		ToStorage: func(m M) []byte {
			raw, err := deterministic.Marshal(m)
			if err != nil {
				return nil
			}
			return raw
		},
		ToReal: func(raw []byte) M {
			m := newMessage[M]()
			if err := proto.Unmarshal(raw, m); err != nil {
				return newMessage[M]()
			}
			return m
		},
		Parse: func(in string) ([]byte, error) {
			m := newMessage[M]()
			if err := protojson.Unmarshal([]byte(in), m); err != nil {
				return nil, err
			}
			return deterministic.Marshal(m)
		},
		Format: func(raw []byte) string {
			m := newMessage[M]()
			if err := proto.Unmarshal(raw, m); err != nil {
				return "{}"
			}
			out, err := protojson.Marshal(m)
			if err != nil {
				return "{}"
			}
			return string(out)
		},
		Default: newMessage[M],
	})
}

// RegisterProto registers the message type M in r under a fresh identifier.
func RegisterProto[M proto.Message](r *Registry, name string) (Bridge, error) {
	return r.Register(ProtoCodec[M](name))
}
