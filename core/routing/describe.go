package routing

import (
	"sort"

	"github.com/anoideaopen/invoker/core/signature"
	"github.com/anoideaopen/invoker/core/types"
)

// Description is a readable summary of one method, used by tooling.
type Description struct {
	Function    Function
	MethodName  string
	Signature   signature.ID
	Fingerprint string
	Text        string // e.g. "int32(int32, int32)"
	ReturnType  string
	ParamTypes  []string
}

// Describe lists the methods of r sorted by function name. Type names are resolved
// through reg.
func Describe(r Router, reg *types.Registry) []Description {
	methods := r.Methods()

	out := make([]Description, 0, len(methods))
	for fn, m := range methods {
		d := Description{
			Function:    fn,
			MethodName:  m.MethodName,
			Signature:   m.Signature,
			Fingerprint: m.Signature.Hex(),
			Text:        signature.Describe(m.Signature, reg),
			ReturnType:  reg.NameOf(m.ReturnType),
			ParamTypes:  make([]string, len(m.ParamTypes)),
		}
		for i, p := range m.ParamTypes {
			d.ParamTypes[i] = reg.NameOf(p)
		}
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Function < out[j].Function })

	return out
}
