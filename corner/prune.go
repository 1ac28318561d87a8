package corner

// prune is the high-speed pre-test over the four compass neighbors (up,
// right, down, left) of (x, y). It returns false only for pixels that
// cannot pass the full 12-of-16 arc test, so a false result safely skips
// the arc test while a true result still requires it.
//
// The test is only sound for arcLength == 12: a qualifying 12-run must
// cover at least three of the four compass points, which is what the
// branches below check. The caller is responsible for that gate.
func prune(img Image, x, y int, threshold uint8) bool {
	center := img.GrayAt(x, y)

	up := classify(center, img.GrayAt(x+ringOffsets[ringUp][0], y+ringOffsets[ringUp][1]), threshold)
	right := classify(center, img.GrayAt(x+ringOffsets[ringRight][0], y+ringOffsets[ringRight][1]), threshold)
	down := classify(center, img.GrayAt(x+ringOffsets[ringDown][0], y+ringOffsets[ringDown][1]), threshold)
	left := classify(center, img.GrayAt(x+ringOffsets[ringLeft][0], y+ringOffsets[ringLeft][1]), threshold)

	switch {
	case up == similar && down == similar:
		// A 12-run cannot span both poles when neither pole differs.
		return false
	case up == darker && down == darker:
		return right == darker || left == darker
	case up == brighter && down == brighter:
		return right == brighter || left == brighter
	case up == darker || down == darker:
		return right == darker && left == darker
	case up == brighter || down == brighter:
		return right == brighter && left == brighter
	default:
		return false
	}
}
