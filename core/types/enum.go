package types

import (
	"strconv"
	"strings"
)

// Integer is the set of underlying types an enumeration may have.
type Integer interface {
	signed | unsigned
}

// EnumCodec creates a bridge for an integer enumeration stored as int64.
// Text uses the symbolic name when one is known and the number otherwise;
// both forms are accepted when parsing.
func EnumCodec[E Integer](name string, names map[E]string) *Codec[E, int64] {
	byName := make(map[string]E, len(names))
	for v, n := range names {
		byName[n] = v
	}

	return NewCodec(Invalid, name, CodecFuncs[E, int64]{
		ToStorage: func(v E) int64 { return int64(v) },
		ToReal:    func(s int64) E { return E(s) },
		Parse: func(in string) (int64, error) {
			in = strings.TrimSpace(in)
			if v, ok := byName[in]; ok {
				return int64(v), nil
			}
			return strconv.ParseInt(in, 10, 64)
		},
		Format: func(s int64) string {
			if n, ok := names[E(s)]; ok {
				return n
			}
			return strconv.FormatInt(s, 10)
		},
	})
}

// RegisterEnum registers an enumeration type in r under a fresh identifier.
func RegisterEnum[E Integer](r *Registry, name string, names map[E]string) (Bridge, error) {
	return r.Register(EnumCodec(name, names))
}
