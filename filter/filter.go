// Package filter compiles boolean expressions and evaluates them
// against standings rows and scheduled games, so command-line users
// can narrow output with expressions like
// "Points > 90 && contains(Division, \"atl\")".
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// CompilationError describes an expression that failed to compile.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compile %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compile %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Compile compiles an expression into a reusable filter. The
// expression must evaluate to a boolean.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

// Matches evaluates the filter against an environment built by
// StandingEnv or GameEnv.
func (f *Filter) Matches(env map[string]any) (bool, error) {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", f.expression, err)
	}
	// AsBool at compile time guarantees the assertion holds.
	return result.(bool), nil
}
