package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/fast-corners/corner"
)

// ImageCache provides thread-safe caching of loaded images to avoid
// redundant disk reads when the same file is detected more than once
// (different configurations, regions, or annotation passes).
//
// Cached images remain in memory until explicitly removed via Evict() or
// Clear(); the cache key is the exact path string passed to Load.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty cache ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Decoding goes through disintegration/imaging, so PNG, JPEG, GIF, TIFF and
// BMP files are accepted and EXIF orientation is applied. Returns an error
// if the file cannot be opened or decoded.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes a single cached image by its load path.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all cached images, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// ToPlane converts any image to the packed luminance plane the detector
// consumes.
//
// Grayscale images are wrapped without conversion. Color images are first
// converted with bild's luminance-weighted grayscale and then repacked to
// one byte per pixel. The returned plane never aliases a color source, but
// for *image.Gray inputs it shares the pixel buffer.
func ToPlane(img image.Image) *corner.Plane {
	if g, ok := img.(*image.Gray); ok {
		return corner.PlaneFromGray(g)
	}

	gray := effect.Grayscale(img)
	b := gray.Bounds()
	plane := corner.NewPlane(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			// Grayscale output stores luminance in every channel; take R.
			plane.Set(x, y, row[x*4])
		}
	}
	return plane
}
