package transform

import (
	"github.com/signadot/toxml/ir"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("absent", func(params ...any) (any, error) {
			return ir.Undefined, nil
		},
			new(func() any)),
		expr.Function("isabsent", func(params ...any) (any, error) {
			_, ok := params[0].(ir.UndefinedType)
			return ok, nil
		},
			new(func(any) bool)),
	}
}
