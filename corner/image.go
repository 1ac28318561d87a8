package corner

import "image"

// Image is the read-only grayscale view the detector consumes.
//
// Implementations must return stable intensities for the duration of a
// Detect call. The detector only calls GrayAt for coordinates within
// [3, Width()-4] x [3, Height()-4] plus the radius-3 ring offsets around
// them, all of which stay in bounds given that margin.
type Image interface {
	Width() int
	Height() int

	// GrayAt returns the 8-bit intensity of the pixel at (x, y).
	GrayAt(x, y int) uint8
}

// Point is a detected corner location in pixel coordinates.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Plane is a packed 8-bit luminance buffer implementing Image.
//
// Pix holds one byte per pixel in row-major order; Stride is the byte
// distance between vertically adjacent pixels and must be >= W.
type Plane struct {
	Pix    []uint8
	Stride int
	W, H   int
}

// NewPlane allocates a zeroed w x h plane with Stride == w.
func NewPlane(w, h int) *Plane {
	return &Plane{
		Pix:    make([]uint8, w*h),
		Stride: w,
		W:      w,
		H:      h,
	}
}

// PlaneFromGray wraps a *image.Gray as a Plane without copying pixels.
//
// The plane addresses the image's own buffer, so mutating the image after
// detection starts violates the read-only contract of Image.
func PlaneFromGray(g *image.Gray) *Plane {
	b := g.Bounds()
	return &Plane{
		Pix:    g.Pix[g.PixOffset(b.Min.X, b.Min.Y):],
		Stride: g.Stride,
		W:      b.Dx(),
		H:      b.Dy(),
	}
}

// Width returns the plane width in pixels.
func (p *Plane) Width() int { return p.W }

// Height returns the plane height in pixels.
func (p *Plane) Height() int { return p.H }

// GrayAt returns the intensity at (x, y). No bounds checking is performed;
// the detector guarantees in-range coordinates.
func (p *Plane) GrayAt(x, y int) uint8 {
	return p.Pix[y*p.Stride+x]
}

// Set assigns the intensity at (x, y). Intended for building test fixtures
// and synthetic inputs; Detect never mutates a plane.
func (p *Plane) Set(x, y int, v uint8) {
	p.Pix[y*p.Stride+x] = v
}
