package dice

import (
	"fmt"
	"io"
	"strings"
)

type componentKind int

const (
	modifierComponent componentKind = iota
	dieComponent
	spanComponent
)

// Component is one typed input to a pool: a flat modifier, a die, or a raw
// face span. Build them with Modifier, Faces and Span.
type Component struct {
	kind componentKind
	mod  int
	die  Die
	lo   int
	hi   int
}

// Modifier wraps a flat integer added to every outcome of the pool.
func Modifier(n int) Component {
	return Component{kind: modifierComponent, mod: n}
}

// Faces wraps a die as a pool component.
func Faces(d Die) Component {
	return Component{kind: dieComponent, die: d}
}

// Span wraps a raw inclusive face span lo..hi; it is normalized on pool
// construction, so Span(1, 6) contributes a plain d6 and Span(4, 12) a
// d9 plus 3 on the pool modifier.
func Span(lo, hi int) Component {
	return Component{kind: spanComponent, lo: lo, hi: hi}
}

// Pool is an immutable additive combination of dice and a flat modifier,
// such as 2d6 + 1d4 - 1. Its exact outcome distribution is enumerated once
// at construction.
type Pool struct {
	sides []int
	mod   int
	dist  Distribution
}

// NewPool builds a pool from typed components. Range order is kept for
// rendering but has no effect on the distribution. An empty component list
// is valid and yields a pool whose only outcome is its modifier.
func NewPool(components ...Component) (Pool, error) {
	var sides []int
	mod := 0
	for _, c := range components {
		switch c.kind {
		case modifierComponent:
			mod += c.mod
		case dieComponent:
			if c.die.sides < 1 {
				return Pool{}, fmt.Errorf("d%d: %w", c.die.sides, ErrInvalidDie)
			}
			sides = append(sides, c.die.sides)
			mod += c.die.mod
		case spanComponent:
			d, err := NewSpan(c.lo, c.hi)
			if err != nil {
				return Pool{}, err
			}
			sides = append(sides, d.sides)
			mod += d.mod
		}
	}
	return newPool(sides, mod), nil
}

// mustPool is NewPool for components known not to carry invalid spans.
func mustPool(components ...Component) Pool {
	p, err := NewPool(components...)
	if err != nil {
		panic(err)
	}
	return p
}

func newPool(sides []int, mod int) Pool {
	return Pool{sides: sides, mod: mod, dist: enumerate(sides, mod)}
}

// Mod returns the pool's accumulated flat modifier.
func (p Pool) Mod() int { return p.mod }

// Size returns the number of dice in the pool.
func (p Pool) Size() int { return len(p.sides) }

// Dist returns the pool's exact outcome distribution.
func (p Pool) Dist() Distribution { return p.dist }

// Min returns the lowest achievable total, modifier included.
func (p Pool) Min() int { return p.dist.Min() }

// Max returns the highest achievable total, modifier included.
func (p Pool) Max() int { return p.dist.Max() }

// Average returns the pool's mean total.
func (p Pool) Average() float64 { return p.dist.Average() }

// Plus returns a new pool with the die's range appended and its modifier
// merged in.
func (p Pool) Plus(d Die) Pool {
	sides := append(append([]int{}, p.sides...), d.sides)
	return newPool(sides, p.mod+d.mod)
}

// PlusMod returns a new pool with the modifier increased by n.
func (p Pool) PlusMod(n int) Pool {
	return newPool(append([]int{}, p.sides...), p.mod+n)
}

// PlusPool returns a new pool concatenating both range sequences and
// summing both modifiers.
func (p Pool) PlusPool(other Pool) Pool {
	sides := append(append([]int{}, p.sides...), other.sides...)
	return newPool(sides, p.mod+other.mod)
}

// MinusMod returns a new pool with the modifier decreased by n.
func (p Pool) MinusMod(n int) Pool {
	return newPool(append([]int{}, p.sides...), p.mod-n)
}

// MinusDie removes the first range matching the die's canonical range and
// takes the die's own modifier back out. It fails with ErrDieNotInPool when
// the pool holds no such range.
func (p Pool) MinusDie(d Die) (Pool, error) {
	for i, s := range p.sides {
		if s == d.sides {
			sides := make([]int, 0, len(p.sides)-1)
			sides = append(sides, p.sides[:i]...)
			sides = append(sides, p.sides[i+1:]...)
			return newPool(sides, p.mod-d.mod), nil
		}
	}
	return Pool{}, fmt.Errorf("pool %s holds no %s: %w", p, d, ErrDieNotInPool)
}

// RGT returns the chance of a total strictly greater than the threshold,
// as a rate in [0, 1].
func (p Pool) RGT(threshold int) float64 {
	return p.dist.chances(threshold, func(a, b int) bool { return a > b })
}

// RGE returns the chance of a total greater than or equal to the threshold.
func (p Pool) RGE(threshold int) float64 {
	return p.dist.chances(threshold, func(a, b int) bool { return a >= b })
}

// RLT returns the chance of a total strictly lower than the threshold.
func (p Pool) RLT(threshold int) float64 {
	return p.dist.chances(threshold, func(a, b int) bool { return a < b })
}

// RLE returns the chance of a total lower than or equal to the threshold.
func (p Pool) RLE(threshold int) float64 {
	return p.dist.chances(threshold, func(a, b int) bool { return a <= b })
}

// Roll draws one total from the raw outcome space. Each die is rolled
// independently, so totals with more contributing tuples come up
// proportionally more often, and the modifier is always included.
func (p Pool) Roll() int {
	total := p.mod
	for _, s := range p.sides {
		total += safeRand(s)
	}
	return total
}

// Equal reports whether both pools share the same distribution and the
// same modifier.
func (p Pool) Equal(other Pool) bool {
	return p.mod == other.mod && p.dist.Equal(other.dist)
}

// EqualDie reports whether the pool consists of exactly the given die's
// canonical range with a matching modifier.
func (p Pool) EqualDie(d Die) bool {
	return len(p.sides) == 1 && p.sides[0] == d.sides && p.mod == d.mod
}

// Show writes the distribution one row per total with a tally of dots,
// handy for eyeballing small distributions.
func (p Pool) Show(w io.Writer) {
	for _, total := range p.dist.Totals() {
		fmt.Fprintf(w, "%d\t%s\n", total, strings.Repeat(". ", p.dist.Count(total)))
	}
}

// String renders the pool in dice notation, grouping identical ranges in
// first-seen order, e.g. "2d6 + 1d4 - 1".
func (p Pool) String() string {
	counts := make(map[int]int)
	var order []int
	for _, s := range p.sides {
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	terms := make([]string, 0, len(order))
	for _, s := range order {
		terms = append(terms, fmt.Sprintf("%dd%d", counts[s], s))
	}
	expr := strings.Join(terms, " + ")
	if p.mod > 0 {
		if expr != "" {
			expr += " + "
		}
		expr += fmt.Sprintf("%d", p.mod)
	} else if p.mod < 0 {
		if expr != "" {
			expr += " - "
			expr += fmt.Sprintf("%d", -p.mod)
		} else {
			expr = fmt.Sprintf("%d", p.mod)
		}
	}
	return expr
}
