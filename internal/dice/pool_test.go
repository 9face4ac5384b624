package dice

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestPoolKnownDistribution(t *testing.T) {
	p := MustNew(6).Plus(MustNew(6))

	if p.Min() != 2 {
		t.Errorf("2d6 min should be 2, got %d", p.Min())
	}
	if p.Max() != 12 {
		t.Errorf("2d6 max should be 12, got %d", p.Max())
	}

	dist := p.Dist()
	if dist.Mass() != 36 {
		t.Errorf("2d6 should have 36 outcomes, got %d", dist.Mass())
	}
	if dist.Count(7) != 6 {
		t.Errorf("2d6 should reach 7 in 6 ways, got %d", dist.Count(7))
	}
	if dist.Count(2) != 1 {
		t.Errorf("2d6 should reach 2 in 1 way, got %d", dist.Count(2))
	}
	if p.Average() != 7.0 {
		t.Errorf("2d6 average should be 7.0, got %f", p.Average())
	}
}

func TestPoolCommutative(t *testing.T) {
	a := mustPool(Faces(MustNew(6)), Faces(MustNew(4)))
	b := mustPool(Faces(MustNew(4)), Faces(MustNew(6)))

	if !a.Equal(b) {
		t.Errorf("d6+d4 and d4+d6 should have identical distributions")
	}
}

func TestPoolMass(t *testing.T) {
	p := mustPool(Faces(MustNew(6)), Faces(MustNew(4)), Faces(MustNew(8)))
	if got := p.Dist().Mass(); got != 6*4*8 {
		t.Errorf("mass should be the product of face counts, got %d", got)
	}
}

func TestPoolEmpty(t *testing.T) {
	p := mustPool(Modifier(5))

	if p.Size() != 0 {
		t.Fatalf("expected no dice, got %d", p.Size())
	}
	if p.Min() != 5 || p.Max() != 5 {
		t.Errorf("empty pool with modifier 5 should range 5..5, got %d..%d", p.Min(), p.Max())
	}
	if p.Dist().Count(5) != 1 || p.Dist().Mass() != 1 {
		t.Errorf("empty pool distribution should be {5: 1}")
	}
}

func TestPoolSpanComponent(t *testing.T) {
	p, err := NewPool(Span(1, 6))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !p.EqualDie(MustNew(6)) {
		t.Errorf("pool of span 1..6 should equal a d6")
	}

	shifted, err := NewPool(Span(4, 12))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if shifted.Mod() != 3 || shifted.Size() != 1 {
		t.Errorf("span 4..12 should contribute one d9 and modifier 3, got %d dice mod %d", shifted.Size(), shifted.Mod())
	}

	if _, err := NewPool(Span(6, 1)); !errors.Is(err, ErrInvalidDie) {
		t.Errorf("expected ErrInvalidDie for reversed span, got %v", err)
	}
}

func TestPoolRejectsZeroDie(t *testing.T) {
	// A zero-value Die has no faces and must not slip into a pool
	if _, err := NewPool(Faces(Die{})); !errors.Is(err, ErrInvalidDie) {
		t.Errorf("expected ErrInvalidDie for a zero-value die, got %v", err)
	}
	if _, err := NewPool(Faces(MustNew(6)), Faces(Die{})); !errors.Is(err, ErrInvalidDie) {
		t.Errorf("expected ErrInvalidDie for a mixed pool with a zero-value die, got %v", err)
	}
}

func TestPoolModifierArithmetic(t *testing.T) {
	p := MustNew(6).PlusMod(3)

	up := p.PlusMod(2)
	if up.Mod() != 5 || up.Min() != 6 || up.Max() != 11 {
		t.Errorf("d6+5 should range 6..11, got mod %d range %d..%d", up.Mod(), up.Min(), up.Max())
	}

	down := p.MinusMod(4)
	if down.Mod() != -1 || down.Min() != 0 || down.Max() != 5 {
		t.Errorf("d6-1 should range 0..5, got mod %d range %d..%d", down.Mod(), down.Min(), down.Max())
	}
}

func TestPoolPlusPool(t *testing.T) {
	a := MustNew(6).PlusMod(1)
	b := MustNew(4).PlusMod(2)

	sum := a.PlusPool(b)
	if sum.Size() != 2 || sum.Mod() != 3 {
		t.Fatalf("expected two dice and modifier 3, got %d dice mod %d", sum.Size(), sum.Mod())
	}
	if sum.Min() != 5 || sum.Max() != 13 {
		t.Errorf("d6+d4+3 should range 5..13, got %d..%d", sum.Min(), sum.Max())
	}
}

func TestPoolMinusDie(t *testing.T) {
	d6 := MustNew(6)
	d4 := MustNew(4)
	q := d6.Plus(d6)
	p := q.Plus(d4)

	back, err := p.MinusDie(d4)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !back.Equal(q) {
		t.Errorf("(2d6+1d4) - 1d4 should reproduce 2d6")
	}

	// The die's own modifier goes back out with it
	span, _ := NewSpan(4, 12)
	withSpan := q.Plus(span)
	if withSpan.Mod() != 3 {
		t.Fatalf("adding a 4..12 span should leave modifier 3, got %d", withSpan.Mod())
	}
	removed, err := withSpan.MinusDie(span)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !removed.Equal(q) {
		t.Errorf("removing the span should reproduce the original pool")
	}
}

func TestPoolMinusDieMissing(t *testing.T) {
	p := MustNew(6).Plus(MustNew(6))

	_, err := p.MinusDie(MustNew(8))
	if !errors.Is(err, ErrDieNotInPool) {
		t.Errorf("expected ErrDieNotInPool, got %v", err)
	}
}

func TestPoolChancesComplement(t *testing.T) {
	p := mustPool(Faces(MustNew(6)), Faces(MustNew(4)), Modifier(-2))

	for threshold := p.Min() - 2; threshold <= p.Max()+2; threshold++ {
		if sum := p.RGT(threshold) + p.RLE(threshold); math.Abs(sum-1) > 1e-9 {
			t.Errorf("RGT(%d)+RLE(%d) = %f, want 1", threshold, threshold, sum)
		}
		if sum := p.RGE(threshold) + p.RLT(threshold); math.Abs(sum-1) > 1e-9 {
			t.Errorf("RGE(%d)+RLT(%d) = %f, want 1", threshold, threshold, sum)
		}
	}
}

func TestPoolKnownChances(t *testing.T) {
	p := MustNew(6).Plus(MustNew(6))

	// 21 of 36 tuples beat 6, 15 of 36 beat 7
	if got := p.RGT(6); math.Abs(got-21.0/36.0) > 1e-9 {
		t.Errorf("P(2d6 > 6) should be 21/36, got %f", got)
	}
	if got := p.RGE(7); math.Abs(got-21.0/36.0) > 1e-9 {
		t.Errorf("P(2d6 >= 7) should be 21/36, got %f", got)
	}
}

func TestPoolEquality(t *testing.T) {
	d6 := MustNew(6)

	single, _ := NewPool(Span(1, 6))
	if !single.EqualDie(d6) {
		t.Errorf("a pool of one 1..6 span should equal a d6")
	}

	double := d6.Plus(d6)
	if double.EqualDie(d6) {
		t.Errorf("2d6 should not equal a single d6")
	}

	// Same average, different shape: not equal
	d2d6 := d6.Plus(d6)
	flat, _ := NewSpan(2, 12)
	flatPool := mustPool(Faces(flat))
	if d2d6.Equal(flatPool) {
		t.Errorf("2d6 and a flat 2..12 span differ in distribution shape")
	}
}

func TestPoolRollBounds(t *testing.T) {
	p := mustPool(Faces(MustNew(6)), Modifier(3))
	for i := 0; i < 100; i++ {
		if v := p.Roll(); v < 4 || v > 9 {
			t.Errorf("roll out of bounds for d6+3: %d", v)
		}
	}
}

func TestPoolRollMocked(t *testing.T) {
	defer ResetMockRolls()

	p := mustPool(Faces(MustNew(6)), Faces(MustNew(4)), Modifier(-2))
	MockRolls([]int{6, 4})
	if v := p.Roll(); v != 8 {
		t.Errorf("mocked faces 6 and 4 with modifier -2 should total 8, got %d", v)
	}
}

func TestPoolString(t *testing.T) {
	p := mustPool(Faces(MustNew(6)), Faces(MustNew(4)), Faces(MustNew(6)), Modifier(-1))
	if s := p.String(); s != "2d6 + 1d4 - 1" {
		t.Errorf("expected \"2d6 + 1d4 - 1\", got %q", s)
	}

	plus := mustPool(Faces(MustNew(8)), Modifier(2))
	if s := plus.String(); s != "1d8 + 2" {
		t.Errorf("expected \"1d8 + 2\", got %q", s)
	}

	flat := mustPool(Modifier(-3))
	if s := flat.String(); s != "-3" {
		t.Errorf("expected \"-3\", got %q", s)
	}
}

func TestPoolShow(t *testing.T) {
	p := MustNew(2).Plus(MustNew(2))

	var sb strings.Builder
	p.Show(&sb)

	want := "2\t. \n3\t. . \n4\t. \n"
	if sb.String() != want {
		t.Errorf("Show output mismatch:\ngot  %q\nwant %q", sb.String(), want)
	}
}
