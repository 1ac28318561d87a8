package corner

// suppressNonMax removes the weaker of every pair of adjacent detections
// (Chebyshev distance <= 1, i.e. 8-connected) from feats, in place, and
// returns the surviving features in their original relative order.
//
// The pass is quadratic over the raster-ordered feature list: each unmarked
// feature is compared against every later feature in its 8-neighborhood; the
// lower-scoring one of the pair is marked for removal, and on an exact score
// tie the later (second-encountered) one is marked. That tie rule is
// deliberately order-dependent: it keeps the result deterministic for a
// given input, at the cost of not being a pure local-maximum criterion. A
// feature marked for removal no longer initiates comparisons but remains a
// valid comparison target for earlier survivors.
//
// Postcondition: no two surviving features are within Chebyshev distance 1
// of each other, except when three or more mutually adjacent features carry
// exactly equal scores, in which case the cycle can leave one adjacent pair
// standing.
func suppressNonMax(img Image, feats []Point, threshold uint8) []Point {
	n := len(feats)
	if n < 2 {
		return feats
	}

	scores := make([]int, n)
	for i, f := range feats {
		scores[i] = score(img, f, threshold)
	}

	removed := make([]bool, n)
	for i := 0; i < n; i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !adjacent(feats[i], feats[j]) {
				continue
			}
			switch {
			case scores[i] < scores[j]:
				removed[i] = true
			default:
				// Lower score loses; on a tie the later feature loses.
				removed[j] = true
			}
			if removed[i] {
				break
			}
		}
	}

	out := feats[:0]
	for i, f := range feats {
		if !removed[i] {
			out = append(out, f)
		}
	}
	return out
}

// adjacent reports whether two points are within Chebyshev distance 1.
func adjacent(a, b Point) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1
}
