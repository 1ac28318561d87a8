package corner

// score computes the corner strength of a pixel already confirmed by the
// arc test: the sum of |neighbor - center| - threshold over the darker ring
// neighbors, and the same sum over the brighter ones, whichever is larger
// (Eq. 8 of Rosten & Drummond, "Machine learning for high-speed corner
// detection"). Only used to rank adjacent detections during suppression.
func score(img Image, p Point, threshold uint8) int {
	center := int(img.GrayAt(p.X, p.Y))

	var sumDark, sumBright int
	for _, off := range ringOffsets {
		n := int(img.GrayAt(p.X+off[0], p.Y+off[1]))
		diff := n - center
		if diff < 0 {
			diff = -diff
		}
		switch classify(uint8(center), uint8(n), threshold) {
		case darker:
			sumDark += diff - int(threshold)
		case brighter:
			sumBright += diff - int(threshold)
		}
	}

	if sumDark > sumBright {
		return sumDark
	}
	return sumBright
}
