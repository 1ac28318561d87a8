package corner

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// Errors reported by New and the Detect methods. Both are wrapped with
// detail, so test with errors.Is.
var (
	// ErrInvalidParameter indicates a Config value outside its valid range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrImageTooSmall indicates an input image narrower or shorter than 7
	// pixels, which leaves no pixel with the 3-pixel margin the ring needs.
	ErrImageTooSmall = errors.New("image too small")
)

// margin is the border excluded from the scan so the radius-3 ring always
// stays inside the image.
const margin = 3

// minImageDim is the smallest width/height with at least one testable pixel.
const minImageDim = 2*margin + 1

// Config holds the detection parameters. It is read once by New; mutating a
// Config after constructing a Detector from it has no effect on that
// Detector.
type Config struct {
	// Threshold is the intensity delta (0-255) a neighbor must exceed to
	// count as distinctly brighter or darker than the center.
	Threshold uint8

	// ArcLength is the minimum number of contiguous same-class ring
	// neighbors required for a corner. Valid range 1-16.
	ArcLength uint8

	// Prune enables the 4-point high-speed pre-test. It only applies with
	// the classic ArcLength of 12; for other arc lengths the full test
	// always runs.
	Prune bool

	// Suppress enables non-maximum suppression of adjacent detections.
	Suppress bool

	// Workers is the number of goroutines scanning row bands. Values <= 1
	// scan single-threaded. The output is identical for any worker count.
	Workers int
}

// DefaultConfig returns the classic FAST-12 parameters: threshold 10, arc
// length 12, pruning and suppression enabled, single-threaded scan.
func DefaultConfig() Config {
	return Config{
		Threshold: 10,
		ArcLength: 12,
		Prune:     true,
		Suppress:  true,
		Workers:   1,
	}
}

// Detector runs FAST corner detection with a fixed configuration.
//
// A Detector is immutable once constructed and safe for concurrent use by
// multiple goroutines, including concurrent Detect calls sharing one input
// image.
type Detector struct {
	threshold uint8
	arcLength int
	prune     bool
	suppress  bool
	workers   int
}

// New validates cfg and returns a Detector for it.
//
// Returns ErrInvalidParameter if cfg.ArcLength is 0 or exceeds 16.
func New(cfg Config) (*Detector, error) {
	if cfg.ArcLength < 1 || cfg.ArcLength > ringSize {
		return nil, fmt.Errorf("%w: arc length %d outside 1-%d", ErrInvalidParameter, cfg.ArcLength, ringSize)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Detector{
		threshold: cfg.Threshold,
		arcLength: int(cfg.ArcLength),
		prune:     cfg.Prune,
		suppress:  cfg.Suppress,
		workers:   workers,
	}, nil
}

// Detect scans img and returns all detected corners.
//
// Corners are produced in raster order (increasing Y, then increasing X)
// before suppression; after suppression the result is a subset of that list
// with relative order preserved. Returns ErrImageTooSmall if img is smaller
// than 7x7 in either dimension.
func (d *Detector) Detect(img Image) ([]Point, error) {
	return d.DetectAppend(img, nil)
}

// DetectAppend is like Detect but appends the detected corners to feats and
// returns the extended slice. Entries already in feats are never inspected,
// reordered or removed; suppression considers only the corners found by this
// call.
func (d *Detector) DetectAppend(img Image, feats []Point) ([]Point, error) {
	if err := checkSize(img); err != nil {
		return feats, err
	}
	found := d.scan(img, interior(img))
	if d.suppress {
		found = suppressNonMax(img, found, d.threshold)
	}
	return append(feats, found...), nil
}

// DetectRegion detects corners within the part of region that has the
// required 3-pixel margin inside img. An empty intersection yields an empty
// result; an undersized image is still an error. Suppression, when enabled,
// runs over the region's detections only.
func (d *Detector) DetectRegion(img Image, region image.Rectangle) ([]Point, error) {
	if err := checkSize(img); err != nil {
		return nil, err
	}
	r := region.Intersect(interior(img))
	if r.Empty() {
		return nil, nil
	}
	found := d.scan(img, r)
	if d.suppress {
		found = suppressNonMax(img, found, d.threshold)
	}
	return found, nil
}

// interior is the rectangle of pixels whose full ring lies inside img.
// Max is exclusive, following image.Rectangle convention.
func interior(img Image) image.Rectangle {
	return image.Rect(margin, margin, img.Width()-margin, img.Height()-margin)
}

func checkSize(img Image) error {
	if w, h := img.Width(), img.Height(); w < minImageDim || h < minImageDim {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrImageTooSmall, w, h, minImageDim, minImageDim)
	}
	return nil
}

// scan tests every pixel of r in raster order and collects the accepted
// ones. With multiple workers the row range is split into contiguous bands
// whose results are concatenated in band order, so the combined list is
// identical to a single-threaded scan.
func (d *Detector) scan(img Image, r image.Rectangle) []Point {
	rows := r.Dy()
	workers := d.workers
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		return d.scanRows(img, r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
	}

	bands := make([][]Point, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := r.Min.Y + w*rows/workers
		y1 := r.Min.Y + (w+1)*rows/workers
		wg.Add(1)
		go func(w, y0, y1 int) {
			defer wg.Done()
			bands[w] = d.scanRows(img, r.Min.X, r.Max.X, y0, y1)
		}(w, y0, y1)
	}
	wg.Wait()

	var out []Point
	for _, band := range bands {
		out = append(out, band...)
	}
	return out
}

// scanRows scans rows [y0, y1) over columns [x0, x1).
func (d *Detector) scanRows(img Image, x0, x1, y0, y1 int) []Point {
	var out []Point
	usePrune := d.prune && d.arcLength == 12
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if usePrune && !prune(img, x, y, d.threshold) {
				continue
			}
			if arcTest(img, x, y, d.threshold, d.arcLength) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}
