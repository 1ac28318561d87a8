// Package imaging bridges image files on disk and the corner detector.
//
// It loads and caches decoded images, converts them to the packed luminance
// planes the detector consumes, renders detected corners back onto a copy of
// the source image, and validates user-supplied detection regions.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward, matching package corner.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The conversion and annotation
// functions are stateless and may be called concurrently on different
// images.
package imaging
