// Package corner implements the FAST (Features from Accelerated Segment Test)
// corner detector for grayscale images.
//
// A pixel is reported as a corner when a long enough contiguous arc of the 16
// pixels on a discretized circle of radius 3 around it is uniformly brighter
// or uniformly darker than the pixel itself, by more than a configurable
// threshold. Detected corners can optionally be thinned by non-maximum
// suppression so that no two adjacent pixels are both reported.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Because every test reads a radius-3 ring around the candidate pixel, only
// pixels with a full 3-pixel margin are ever examined: reported coordinates
// always lie within [3, width-4] x [3, height-4], and images smaller than 7x7
// are rejected with ErrImageTooSmall before any pixel is read.
//
// # Pipeline
//
// Detect runs two phases:
//
//  1. Scan: every interior pixel is checked in raster order (increasing Y,
//     then increasing X). With the default 12-of-16 arc length a cheap
//     4-point compass pre-test skips most non-corners before the full
//     16-point arc test runs.
//  2. Suppression: adjacent detections (Chebyshev distance <= 1) are compared
//     by a corner strength score and the weaker of each pair is dropped.
//
// The scan depends only on a fixed 7x7 neighborhood per pixel, so it can be
// partitioned across workers (see Config.Workers) without changing the
// output.
//
// # Thread Safety
//
// A Detector is immutable after New and safe for concurrent use. The input
// Image is only read, never written, and may be shared between concurrent
// Detect calls without synchronization.
//
// # Error Handling
//
// Errors are structural and surface immediately:
//   - ErrInvalidParameter from New for an arc length outside 1..16
//   - ErrImageTooSmall from Detect for images narrower or shorter than 7
//
// Per-pixel classification itself never fails; all arithmetic is performed in
// widened integer types so overflow is impossible by construction.
package corner
