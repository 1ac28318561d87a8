package corner

// classification is the relation of one ring neighbor to the center pixel
// under the configured threshold. Exactly one value applies to any
// center/neighbor/threshold triple.
type classification uint8

const (
	similar classification = iota
	darker
	brighter
)

// classify compares a neighbor intensity against the center.
//
// The comparison is done in int so that center, neighbor and threshold can
// never overflow the 8-bit pixel range: darker means neighbor + threshold is
// still below the center, brighter means neighbor - threshold is still above
// it, and everything else is similar.
func classify(center, neighbor, threshold uint8) classification {
	switch {
	case int(neighbor)+int(threshold) < int(center):
		return darker
	case int(neighbor)-int(threshold) > int(center):
		return brighter
	default:
		return similar
	}
}

// classifyRing fills tags with the classification of all 16 ring neighbors
// of (x, y), in ring order.
func classifyRing(img Image, x, y int, threshold uint8, tags *[ringSize]classification) {
	center := img.GrayAt(x, y)
	for i, off := range ringOffsets {
		tags[i] = classify(center, img.GrayAt(x+off[0], y+off[1]), threshold)
	}
}
