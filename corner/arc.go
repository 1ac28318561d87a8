package corner

// arcTest runs the full segment test at (x, y): it classifies all 16 ring
// neighbors and reports whether any circular run of at least arcLength
// consecutive neighbors is uniformly darker or uniformly brighter than the
// center.
//
// Wraparound is handled by appending a copy of the first arcLength-1 tags
// to the sequence, so every run starting at one of the 16 ring positions is
// a plain contiguous window of the extended slice. Cost is constant per
// pixel.
func arcTest(img Image, x, y int, threshold uint8, arcLength int) bool {
	var tags [ringSize]classification
	classifyRing(img, x, y, threshold, &tags)

	ext := make([]classification, 0, ringSize+arcLength-1)
	ext = append(ext, tags[:]...)
	ext = append(ext, tags[:arcLength-1]...)

	for start := 0; start < ringSize; start++ {
		if uniformRun(ext[start:start+arcLength], darker) || uniformRun(ext[start:start+arcLength], brighter) {
			return true
		}
	}
	return false
}

// uniformRun reports whether every tag in the window equals want.
func uniformRun(window []classification, want classification) bool {
	for _, t := range window {
		if t != want {
			return false
		}
	}
	return true
}
