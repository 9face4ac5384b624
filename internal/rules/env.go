// Package rules evaluates game-design rule expressions against the dice
// engine, e.g. `avg("2d6+3") > avg("1d12+2")`.
package rules

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/Erawpalassalg/GDTools/internal/notation"
)

// RollFunc is a function that evaluates a dice expression (e.g. "1d20") and
// returns the total. It is injected to allow deterministic testing.
type RollFunc func(expr string) int

// Registry manages the CEL environment and provides helper methods for
// evaluation.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the dice functions.
// A nil rollFunc rolls through the notation parser.
func NewRegistry(rollFunc RollFunc) (*Registry, error) {
	env, err := cel.NewEnv(
		// Variable declarations
		cel.Variable("globals", cel.MapType(cel.StringType, cel.AnyType)),

		// Dice functions
		cel.Function("roll",
			cel.Overload("roll_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					expr := arg.Value().(string)
					if rollFunc != nil {
						return types.Int(rollFunc(expr))
					}
					pool, err := notation.Parse(expr)
					if err != nil {
						return types.NewErr("roll(%q): %v", expr, err)
					}
					return types.Int(pool.Roll())
				}),
			),
		),
		cel.Function("avg",
			cel.Overload("avg_string",
				[]*cel.Type{cel.StringType},
				cel.DoubleType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					expr := arg.Value().(string)
					pool, err := notation.Parse(expr)
					if err != nil {
						return types.NewErr("avg(%q): %v", expr, err)
					}
					return types.Double(pool.Average())
				}),
			),
		),
		cel.Function("chance",
			cel.Overload("chance_string_string_int",
				[]*cel.Type{cel.StringType, cel.StringType, cel.IntType},
				cel.DoubleType,
				cel.FunctionBinding(func(args ...ref.Val) ref.Val {
					expr := args[0].Value().(string)
					op := args[1].Value().(string)
					threshold := int(args[2].Value().(int64))

					pool, err := notation.Parse(expr)
					if err != nil {
						return types.NewErr("chance(%q): %v", expr, err)
					}
					switch op {
					case ">":
						return types.Double(pool.RGT(threshold))
					case ">=":
						return types.Double(pool.RGE(threshold))
					case "<":
						return types.Double(pool.RLT(threshold))
					case "<=":
						return types.Double(pool.RLE(threshold))
					}
					return types.NewErr("chance: unknown comparator %q", op)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	if context == nil {
		context = map[string]any{}
	}
	if _, ok := context["globals"]; !ok {
		context["globals"] = map[string]any{}
	}

	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}
