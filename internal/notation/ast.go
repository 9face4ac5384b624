// Package notation parses dice notation such as "2d6 + 1d4 - 1" into pools.
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Erawpalassalg/GDTools/internal/dice"
)

// ErrNegativeDice signals a "-KdN" term; the pool algebra has no negative
// dice, only flat modifiers may be subtracted.
var ErrNegativeDice = errors.New("dice terms cannot be subtracted in notation")

// Expr represents a full dice expression: a first term with an optional
// leading sign followed by any number of signed terms, so a lone negative
// modifier such as "-3" parses too.
type Expr struct {
	First *FirstTerm `parser:"@@"`
	Rest  []*OpTerm  `parser:"@@*"`
}

// FirstTerm is the leading term; its sign may be omitted.
type FirstTerm struct {
	Op   string `parser:"@Operator?"`
	Term *Term  `parser:"@@"`
}

// OpTerm is a term with its leading + or - sign.
type OpTerm struct {
	Op   string `parser:"@Operator"`
	Term *Term  `parser:"@@"`
}

// Term is either a dice chunk such as "2d6" or a flat integer modifier.
type Term struct {
	Dice *string `parser:"@Dice"`
	Flat *int    `parser:"| @Int"`
}

var diceRegex = regexp.MustCompile(`^(\d*)[dD](\d+)$`)

// components appends the term's contribution under the given sign.
func (t *Term) components(sign string, out []dice.Component) ([]dice.Component, error) {
	if t.Flat != nil {
		n := *t.Flat
		if sign == "-" {
			n = -n
		}
		return append(out, dice.Modifier(n)), nil
	}

	if sign == "-" {
		return nil, fmt.Errorf("%q: %w", *t.Dice, ErrNegativeDice)
	}

	matches := diceRegex.FindStringSubmatch(*t.Dice)
	count := 1
	if matches[1] != "" {
		count, _ = strconv.Atoi(matches[1])
	}
	sides, _ := strconv.Atoi(matches[2])

	d, err := dice.New(sides)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", *t.Dice, err)
	}
	for i := 0; i < count; i++ {
		out = append(out, dice.Faces(d))
	}
	return out, nil
}

// Pool compiles the parsed expression into a dice pool.
func (e *Expr) Pool() (dice.Pool, error) {
	var components []dice.Component
	var err error

	sign := e.First.Op
	if sign == "" {
		sign = "+"
	}
	components, err = e.First.Term.components(sign, components)
	if err != nil {
		return dice.Pool{}, err
	}
	for _, ot := range e.Rest {
		components, err = ot.Term.components(ot.Op, components)
		if err != nil {
			return dice.Pool{}, err
		}
	}
	return dice.NewPool(components...)
}

var parser = Build()

// Parse turns dice notation into a pool in one step.
func Parse(input string) (dice.Pool, error) {
	expr, err := parser.ParseString("", input)
	if err != nil {
		return dice.Pool{}, MapError(input, err)
	}
	return expr.Pool()
}
