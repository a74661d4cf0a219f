package rng

import (
	"math"
	"testing"
)

func TestBelowBounds(t *testing.T) {
	g := New([]byte("below"))
	for _, n := range []uint32{1, 2, 1000, math.MaxUint32} {
		for i := 0; i < 100000; i++ {
			if v := g.Below(n); v >= n {
				t.Fatalf("Below(%d) returned %d at sample %d", n, v, i)
			}
		}
	}
}

func TestBelowZero(t *testing.T) {
	g := New([]byte("below zero"))
	for i := 0; i < 1000; i++ {
		if v := g.Below(0); v != 0 {
			t.Fatalf("Below(0) returned %d at sample %d", v, i)
		}
	}
}

func TestUpToBounds(t *testing.T) {
	g := New([]byte("upto"))
	for _, n := range []uint32{0, 1, 2, 1000} {
		for i := 0; i < 100000; i++ {
			if v := g.UpTo(n); v > n {
				t.Fatalf("UpTo(%d) returned %d at sample %d", n, v, i)
			}
		}
	}
}

// UpTo(MaxUint32) must fall back to the raw full-width draw rather
// than computing n+1, which would wrap to zero.
func TestUpToMaxIsRaw(t *testing.T) {
	g1 := New([]byte("upto max"))
	g2 := New([]byte("upto max"))
	for i := 0; i < 1000; i++ {
		bounded, raw := g1.UpTo(math.MaxUint32), g2.Uint32()
		if bounded != raw {
			t.Fatalf("UpTo(MaxUint32) diverged from raw at step %d: %#x vs %#x", i, bounded, raw)
		}
	}
}

func TestRangeOrderInsensitive(t *testing.T) {
	g1 := New([]byte("range"))
	g2 := New([]byte("range"))
	for i := 0; i < 10000; i++ {
		v1, v2 := g1.Range(-50, 200), g2.Range(200, -50)
		if v1 != v2 {
			t.Fatalf("Range(i,j) != Range(j,i) at step %d: %d vs %d", i, v1, v2)
		}
		if v1 < -50 || v1 > 200 {
			t.Fatalf("Range(-50, 200) returned %d at step %d", v1, i)
		}
	}
}

func TestRangeDegenerate(t *testing.T) {
	g := New([]byte("range degenerate"))
	for i := 0; i < 100; i++ {
		if v := g.Range(7, 7); v != 7 {
			t.Fatalf("Range(7, 7) returned %d", v)
		}
	}
}

func TestRangeCoversSmallSpan(t *testing.T) {
	g := New([]byte("range coverage"))
	seen := make(map[int32]bool)
	for i := 0; i < 10000; i++ {
		v := g.Range(-2, 3)
		if v < -2 || v > 3 {
			t.Fatalf("Range(-2, 3) returned %d", v)
		}
		seen[v] = true
	}
	for want := int32(-2); want <= 3; want++ {
		if !seen[want] {
			t.Errorf("Range(-2, 3) never produced %d in 10000 draws", want)
		}
	}
}

// The full int32 span has an unsigned difference of MaxUint32; the
// wrapping arithmetic must hold up without trapping or truncating.
func TestRangeFullSpan(t *testing.T) {
	g1 := New([]byte("range full"))
	g2 := New([]byte("range full"))
	for i := 0; i < 10000; i++ {
		v := g1.Range(math.MinInt32, math.MaxInt32)
		raw := g2.Uint32()
		lo := int32(math.MinInt32)
		if want := int32(uint32(lo) + raw); v != want {
			t.Fatalf("full-span Range at step %d: got %d, want %d", i, v, want)
		}
	}
}

func TestRealBounds(t *testing.T) {
	g := New([]byte("real"))
	for i := 0; i < 100000; i++ {
		if v := g.Real(); v < 0.0 || v > 1.0 {
			t.Fatalf("Real() returned %v at sample %d", v, i)
		}
	}
}

// Real scales by 1/(2^32-1), so the endpoints are exact: a raw draw
// of 0 maps to 0.0 and a raw draw of MaxUint32 maps to 1.0.
func TestRealEndpointsExact(t *testing.T) {
	g := FromState(State{})
	if v := g.Real(); v != 0.0 {
		t.Fatalf("zero draw must map to 0.0, got %v", v)
	}
	if v := float64(uint32(math.MaxUint32)) / float64(math.MaxUint32); v != 1.0 {
		t.Fatalf("max draw must map to 1.0, got %v", v)
	}
}
