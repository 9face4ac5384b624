// Package dice models single dice and dice pools as immutable values.
//
// Every die is stored in canonical form: faces 1..N plus a flat modifier,
// so that a die spanning 4..12 is the same object as a d9 + 3. Pools carry
// an ordered list of face counts, one accumulated modifier, and an exact
// outcome distribution built by enumerating every combination of faces.
package dice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDie signals a die constructed with an empty face range.
	ErrInvalidDie = errors.New("die must have at least one face")
	// ErrDieNotInPool signals removal of a die whose range the pool does not hold.
	ErrDieNotInPool = errors.New("die not present in pool")
)

// Die is an immutable single die such as a d6 or a d13.
type Die struct {
	sides int
	mod   int
}

// normalize folds an arbitrary face span into canonical 1..N form.
// The span's value set equals {face + mod : face in 1..sides}, and a span
// already starting at 1 yields mod 0.
func normalize(lo, hi int) (sides, mod int) {
	return hi - lo + 1, lo - 1
}

// New builds a die with faces 1..n, the usual "dN".
func New(n int) (Die, error) {
	if n < 1 {
		return Die{}, fmt.Errorf("d%d: %w", n, ErrInvalidDie)
	}
	return Die{sides: n}, nil
}

// NewSpan builds a die whose outcomes are the integers lo..hi inclusive.
// NewSpan(4, 12) is canonicalized to a d9 + 3.
func NewSpan(lo, hi int) (Die, error) {
	if hi < lo {
		return Die{}, fmt.Errorf("span [%d, %d]: %w", lo, hi, ErrInvalidDie)
	}
	sides, mod := normalize(lo, hi)
	return Die{sides: sides, mod: mod}, nil
}

// MustNew is New for known-good face counts, panicking on invalid input.
// Intended for literals such as MustNew(20).
func MustNew(n int) Die {
	d, err := New(n)
	if err != nil {
		panic(err)
	}
	return d
}

// Sides returns the number of distinct faces.
func (d Die) Sides() int { return d.sides }

// Mod returns the die's own flat modifier (non-zero only for spanned dice).
func (d Die) Mod() int { return d.mod }

// Min returns the lowest achievable result, modifier included.
func (d Die) Min() int { return 1 + d.mod }

// Max returns the highest achievable result, modifier included.
func (d Die) Max() int { return d.sides + d.mod }

// Avg returns the mean result of the die.
func (d Die) Avg() float64 {
	return float64(d.Min()+d.Max()) / 2
}

// Less reports whether d averages lower than other. Ordering between dice
// considers averages only; two dice of different shapes but equal average
// compare as neither Less nor Greater.
func (d Die) Less(other Die) bool { return d.Avg() < other.Avg() }

// LessEq reports whether d averages no higher than other.
func (d Die) LessEq(other Die) bool { return d.Avg() <= other.Avg() }

// Greater reports whether d averages higher than other.
func (d Die) Greater(other Die) bool { return d.Avg() > other.Avg() }

// GreaterEq reports whether d averages no lower than other.
func (d Die) GreaterEq(other Die) bool { return d.Avg() >= other.Avg() }

// chances counts the faces whose effective value compares favorably
// against the threshold.
func (d Die) chances(threshold int, cmp func(a, b int) bool) float64 {
	hits := 0
	for face := 1; face <= d.sides; face++ {
		if cmp(face+d.mod, threshold) {
			hits++
		}
	}
	return float64(hits) / float64(d.sides)
}

// RGT returns the chance of a roll strictly greater than the threshold,
// as a rate in [0, 1].
func (d Die) RGT(threshold int) float64 {
	return d.chances(threshold, func(a, b int) bool { return a > b })
}

// RGE returns the chance of a roll greater than or equal to the threshold.
func (d Die) RGE(threshold int) float64 {
	return d.chances(threshold, func(a, b int) bool { return a >= b })
}

// RLT returns the chance of a roll strictly lower than the threshold.
func (d Die) RLT(threshold int) float64 {
	return d.chances(threshold, func(a, b int) bool { return a < b })
}

// RLE returns the chance of a roll lower than or equal to the threshold.
func (d Die) RLE(threshold int) float64 {
	return d.chances(threshold, func(a, b int) bool { return a <= b })
}

// Roll draws one result uniformly. The die's own modifier is included, so
// the result always lands in [Min, Max] and agrees with Avg over many rolls.
func (d Die) Roll() int {
	return safeRand(d.sides) + d.mod
}

// Plus combines two dice into a pool.
func (d Die) Plus(other Die) Pool {
	return mustPool(Faces(d), Faces(other))
}

// PlusMod returns a pool of this die plus a flat modifier.
func (d Die) PlusMod(n int) Pool {
	return mustPool(Faces(d), Modifier(n))
}

// PlusPool returns a pool with this die prepended to p's components.
func (d Die) PlusPool(p Pool) Pool {
	sides := make([]int, 0, len(p.sides)+1)
	sides = append(sides, d.sides)
	sides = append(sides, p.sides...)
	return newPool(sides, d.mod+p.mod)
}

// Times returns a pool of n independent dice equivalent to this one.
// n below one yields an empty pool.
func (d Die) Times(n int) Pool {
	if n < 1 {
		return mustPool()
	}
	components := make([]Component, n)
	for i := range components {
		components[i] = Faces(d)
	}
	return mustPool(components...)
}

// String renders the die in dice notation, e.g. "d6" or "d9 + 3".
func (d Die) String() string {
	expr := fmt.Sprintf("d%d", d.sides)
	if d.mod > 0 {
		expr += fmt.Sprintf(" + %d", d.mod)
	} else if d.mod < 0 {
		expr += fmt.Sprintf(" - %d", -d.mod)
	}
	return expr
}
