package imaging

import (
	"fmt"
	"image"
)

// ParseRegion parses a detection region given as "x1,y1,x2,y2" with (x1,y1)
// the inclusive top-left corner and (x2,y2) the exclusive bottom-right
// corner.
//
// The region must be well-formed (x1 < x2, y1 < y2, no negative
// coordinates) but is allowed to extend past the image: the detector clamps
// it to the valid interior.
func ParseRegion(s string) (image.Rectangle, error) {
	var x1, y1, x2, y2 int
	if _, err := fmt.Sscanf(s, "%d,%d,%d,%d", &x1, &y1, &x2, &y2); err != nil {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: want x1,y1,x2,y2: %w", s, err)
	}
	if x1 < 0 || y1 < 0 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: negative coordinates", s)
	}
	if x1 >= x2 || y1 >= y2 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: x1 must be < x2, y1 must be < y2", s)
	}
	return image.Rect(x1, y1, x2, y2), nil
}
