package corner

// ringSize is the number of samples on the detection circle.
const ringSize = 16

// ringOffsets lists the 16 pixel offsets of a discretized circle of radius 3,
// ordered consecutively clockwise starting from the topmost pixel. Both the
// full arc test and the 4-point compass pre-test index into this one table.
var ringOffsets = [ringSize][2]int{
	{0, -3},
	{1, -3},
	{2, -2},
	{3, -1},
	{3, 0},
	{3, 1},
	{2, 2},
	{1, 3},
	{0, 3},
	{-1, 3},
	{-2, 2},
	{-3, 1},
	{-3, 0},
	{-3, -1},
	{-2, -2},
	{-1, -3},
}

// Compass positions within ringOffsets used by the high-speed pre-test.
const (
	ringUp    = 0  // (0, -3)
	ringRight = 4  // (3, 0)
	ringDown  = 8  // (0, 3)
	ringLeft  = 12 // (-3, 0)
)
