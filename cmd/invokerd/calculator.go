package main

import (
	"errors"
	"math"
	"time"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
	"github.com/anoideaopen/invoker/core/routing/mux"
	"github.com/anoideaopen/invoker/core/routing/reflect"
	"github.com/anoideaopen/invoker/core/routing/table"
	"github.com/google/uuid"
)

var (
	errDivisionByZero = errors.New("division by zero")
	errOverflow       = errors.New("integer overflow")
)

// calculator is the demo service exposed by reflection. Only methods starting with
// "Calc" are routed.
type calculator struct{}

func (calculator) CalcAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errOverflow
	}
	return a + b, nil
}

func (calculator) CalcSub(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, errOverflow
	}
	return a - b, nil
}

func (calculator) CalcMul(a, b float64) float64 { return a * b }

func (calculator) CalcDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivisionByZero
	}
	return a / b, nil
}

// Describe is not routed.
func (calculator) Describe() string { return "calculator" }

func newRouter(d params.Dialect) (routing.Router, error) {
	calc, err := reflect.NewRouter(calculator{},
		reflect.WithPrefix("Calc"),
		reflect.WithDialect(d),
	)
	if err != nil {
		return nil, err
	}

	tbl := table.NewRouter()
	for name, c := range map[string]callable.Callable{
		"concat": callable.Func2(func(a, b string) string { return a + b }, callable.WithDialect(d)),
		"newID":  callable.Func0(uuid.New, callable.WithDialect(d)),
		"after": callable.Func2(func(t time.Time, dur time.Duration) time.Time {
			return t.Add(dur)
		}, callable.WithDialect(d)),
	} {
		if err = tbl.Register(name, c); err != nil {
			return nil, err
		}
	}

	r, err := mux.NewRouter(calc, tbl)
	if err != nil {
		return nil, err
	}

	return r, nil
}
