package dice

import "sort"

// Distribution is an exact mapping from achievable total to the number of
// outcome tuples producing it. Counts are raw frequencies, not probabilities;
// divide by Mass to get a rate.
type Distribution struct {
	counts map[int]int
	totals []int
	mass   int
}

func newDistribution(counts map[int]int) Distribution {
	totals := make([]int, 0, len(counts))
	mass := 0
	for total, count := range counts {
		totals = append(totals, total)
		mass += count
	}
	sort.Ints(totals)
	return Distribution{counts: counts, totals: totals, mass: mass}
}

// Count returns the multiplicity of the given total, zero when unreachable.
func (d Distribution) Count(total int) int {
	return d.counts[total]
}

// Totals returns every achievable total in ascending order.
func (d Distribution) Totals() []int {
	out := make([]int, len(d.totals))
	copy(out, d.totals)
	return out
}

// Mass returns the sum of all multiplicities, i.e. the size of the raw
// outcome space.
func (d Distribution) Mass() int {
	return d.mass
}

// Min returns the lowest achievable total.
func (d Distribution) Min() int {
	return d.totals[0]
}

// Max returns the highest achievable total.
func (d Distribution) Max() int {
	return d.totals[len(d.totals)-1]
}

// Average returns the multiplicity-weighted mean of all totals.
func (d Distribution) Average() float64 {
	sum := 0
	for total, count := range d.counts {
		sum += total * count
	}
	return float64(sum) / float64(d.mass)
}

// Equal reports whether both distributions hold exactly the same totals
// with the same multiplicities.
func (d Distribution) Equal(other Distribution) bool {
	if len(d.counts) != len(other.counts) {
		return false
	}
	for total, count := range d.counts {
		if other.counts[total] != count {
			return false
		}
	}
	return true
}

// chances returns the weight of totals comparing favorably against the
// threshold, over the full mass.
func (d Distribution) chances(threshold int, cmp func(a, b int) bool) float64 {
	hits := 0
	for total, count := range d.counts {
		if cmp(total, threshold) {
			hits += count
		}
	}
	return float64(hits) / float64(d.mass)
}

// Convolve combines two distributions into the distribution of their sum.
// Equivalent to enumerating the cross product of both outcome spaces, in
// time proportional to the product of the distinct-total counts instead.
func Convolve(a, b Distribution) Distribution {
	counts := make(map[int]int, len(a.counts)+len(b.counts))
	for ta, ca := range a.counts {
		for tb, cb := range b.counts {
			counts[ta+tb] += ca * cb
		}
	}
	return newDistribution(counts)
}

// enumerate builds the exact distribution of one draw per face count plus a
// flat modifier, walking the full Cartesian product with an odometer over
// the component faces. An empty component list yields {mod: 1}.
func enumerate(sides []int, mod int) Distribution {
	counts := make(map[int]int)
	if len(sides) == 0 {
		counts[mod] = 1
		return newDistribution(counts)
	}

	faces := make([]int, len(sides))
	for i := range faces {
		faces[i] = 1
	}
	for {
		sum := mod
		for _, face := range faces {
			sum += face
		}
		counts[sum]++

		pos := len(faces) - 1
		for pos >= 0 {
			faces[pos]++
			if faces[pos] <= sides[pos] {
				break
			}
			faces[pos] = 1
			pos--
		}
		if pos < 0 {
			break
		}
	}
	return newDistribution(counts)
}
