package corner

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name                        string
		center, neighbor, threshold uint8
		want                        classification
	}{
		{"well below", 128, 100, 10, darker},
		{"well above", 128, 156, 10, brighter},
		{"equal", 128, 128, 10, similar},
		{"just inside low", 128, 118, 10, similar},
		{"just outside low", 128, 117, 10, darker},
		{"just inside high", 128, 138, 10, similar},
		{"just outside high", 128, 139, 10, brighter},
		{"zero threshold below", 100, 99, 0, darker},
		{"zero threshold above", 100, 101, 0, brighter},
		{"zero threshold equal", 100, 100, 0, similar},
		{"max threshold", 255, 0, 255, similar},
		{"extremes darker", 255, 0, 254, darker},
		{"extremes brighter", 0, 255, 254, brighter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.center, tt.neighbor, tt.threshold); got != tt.want {
				t.Errorf("classify(%d, %d, %d) = %v, want %v", tt.center, tt.neighbor, tt.threshold, got, tt.want)
			}
		})
	}
}

// Every triple must land in exactly one class; sweeping all centers and
// neighbors at a few thresholds covers the boundary arithmetic.
func TestClassifyExhaustive(t *testing.T) {
	for _, threshold := range []uint8{0, 1, 10, 128, 255} {
		for c := 0; c < 256; c++ {
			for n := 0; n < 256; n++ {
				got := classify(uint8(c), uint8(n), threshold)
				if got != darker && got != brighter && got != similar {
					t.Fatalf("classify(%d, %d, %d) = %v, not a valid classification", c, n, threshold, got)
				}
			}
		}
	}
}

// Raising the threshold can only move a neighbor toward similar: a similar
// classification must never become darker or brighter, and darker/brighter
// must never flip to the opposite side.
func TestClassifyThresholdMonotonic(t *testing.T) {
	for _, c := range []uint8{0, 1, 50, 128, 200, 254, 255} {
		for _, n := range []uint8{0, 1, 50, 128, 200, 254, 255} {
			prev := classify(c, n, 0)
			for th := 1; th <= 255; th++ {
				cur := classify(c, n, uint8(th))
				if prev == similar && cur != similar {
					t.Fatalf("center %d neighbor %d: similar at threshold %d became %v at %d", c, n, th-1, cur, th)
				}
				if (prev == darker && cur == brighter) || (prev == brighter && cur == darker) {
					t.Fatalf("center %d neighbor %d: %v at threshold %d became %v at %d", c, n, prev, th-1, cur, th)
				}
				prev = cur
			}
		}
	}
}

func TestRingOffsetsFormRadius3Circle(t *testing.T) {
	if len(ringOffsets) != ringSize {
		t.Fatalf("ring has %d offsets, want %d", len(ringOffsets), ringSize)
	}
	seen := make(map[[2]int]bool)
	for i, off := range ringOffsets {
		dx, dy := off[0], off[1]
		if dx < -3 || dx > 3 || dy < -3 || dy > 3 {
			t.Errorf("offset %d (%d,%d) outside radius 3 box", i, dx, dy)
		}
		if dx == 0 && dy == 0 {
			t.Errorf("offset %d is the center", i)
		}
		if seen[off] {
			t.Errorf("offset %d (%d,%d) duplicated", i, dx, dy)
		}
		seen[off] = true
	}

	// Consecutive ring positions are adjacent pixels.
	for i := range ringOffsets {
		a := ringOffsets[i]
		b := ringOffsets[(i+1)%ringSize]
		dx, dy := a[0]-b[0], a[1]-b[1]
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Errorf("ring positions %d and %d are not adjacent", i, (i+1)%ringSize)
		}
	}

	// Compass positions point straight up, right, down, left.
	compass := map[int][2]int{
		ringUp:    {0, -3},
		ringRight: {3, 0},
		ringDown:  {0, 3},
		ringLeft:  {-3, 0},
	}
	for idx, want := range compass {
		if ringOffsets[idx] != want {
			t.Errorf("ringOffsets[%d] = %v, want %v", idx, ringOffsets[idx], want)
		}
	}
}
