// Command adapters writes the arity specialised adapter constructors of package callable.
//
//	go run ./internal/gen/adapters -o core/callable/zz_generated_adapters.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxParams = 16

type shape struct {
	N      int
	Params []string
}

// TypeParams renders the type parameter list, e.g. "[R, A1, A2 any]".
func (s shape) TypeParams(withResult bool) string {
	names := append([]string(nil), s.Params...)
	if withResult {
		names = append([]string{"R"}, names...)
	}
	if len(names) == 0 {
		return ""
	}

	return "[" + strings.Join(names, ", ") + " any]"
}

func (s shape) FuncArgs() string {
	return strings.Join(s.Params, ", ")
}

var tmpl = template.Must(template.New("adapters").Parse(`// Code generated by internal/gen/adapters. DO NOT EDIT.

package callable

import (
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/types"
)
{{range .}}
// Func{{.N}} adapts a function of {{.N}} parameters returning R.
func Func{{.N}}{{.TypeParams true}}(fn func({{.FuncArgs}}) R, opts ...Option) *Adapter {
	o := newOptions(opts)
	ret := types.ForIn[R](o.registry)
	layout := params.MustLayout(ret{{if .Params}},{{range .Params}}
		types.ForIn[{{.}}](o.registry),{{end}}
	{{end}})

	return newAdapter(layout, o, func(b *params.Block) (any, error) {
		return types.Store(ret, fn({{if .Params}}{{range $i, $p := .Params}}
			params.Get[{{$p}}](b, {{$i}}),{{end}}
		{{end}})), nil
	})
}

// Action{{.N}} adapts a function of {{.N}} parameters without a result.
func Action{{.N}}{{.TypeParams false}}(fn func({{.FuncArgs}}), opts ...Option) *Adapter {
	o := newOptions(opts)
	layout := params.MustLayout(nil{{if .Params}},{{range .Params}}
		types.ForIn[{{.}}](o.registry),{{end}}
	{{end}})

	return newAdapter(layout, o, func(b *params.Block) (any, error) {
		fn({{if .Params}}{{range $i, $p := .Params}}
			params.Get[{{$p}}](b, {{$i}}),{{end}}
		{{end}})
		return nil, nil
	})
}
{{end}}`))

func main() {
	out := flag.String("o", "zz_generated_adapters.go", "output file")
	flag.Parse()

	shapes := make([]shape, 0, maxParams+1)
	for n := 0; n <= maxParams; n++ {
		s := shape{N: n}
		for i := 1; i <= n; i++ {
			s.Params = append(s.Params, fmt.Sprintf("A%d", i))
		}
		shapes = append(shapes, s)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, shapes); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format source: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o600); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
