package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// newExpr compiles a user expression over the string variables a and b.
// The expression must evaluate to an int: negative when a sorts first,
// zero when equal and positive otherwise. Whether it is a total order is
// the caller's responsibility.
func newExpr(opts Options) (*Strategy, error) {
	if strings.TrimSpace(opts.Expr) == "" {
		return nil, errors.New("empty expression")
	}

	program, err := expr.Compile(
		opts.Expr,
		expr.Env(map[string]any{"a": "", "b": ""}),
		expr.AsInt(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", opts.Expr, err)
	}

	s := &Strategy{Name: NameExpr}
	s.Compare = func(a, b string) int {
		out, err := expr.Run(program, map[string]any{"a": a, "b": b})
		if err != nil {
			s.fail(fmt.Errorf("evaluate %q: %w", opts.Expr, err))
			return strings.Compare(a, b)
		}

		return out.(int)
	}

	return s, nil
}
