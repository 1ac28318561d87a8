package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small gradient PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(x*16 + y)
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestImageCacheLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "test.png")

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("loaded image is %dx%d, want 16x12", b.Dx(), b.Dy())
	}

	// A second load must come from the cache even if the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	again, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if again != img {
		t.Error("second Load did not return the cached image")
	}

	// After eviction the deleted file cannot be loaded anymore.
	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Evict succeeded for a deleted file")
	}
}

func TestImageCacheLoadErrors(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of missing file succeeded")
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := cache.Load(bad); err == nil {
		t.Error("Load of invalid file succeeded")
	}
}

func TestImageCacheClear(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "test.png")

	cache := NewImageCache()
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("Load after Clear succeeded for a deleted file")
	}
}

func TestToPlaneGrayFastPath(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 10, 8))
	for i := range g.Pix {
		g.Pix[i] = uint8(i)
	}

	p := ToPlane(g)
	if p.Width() != 10 || p.Height() != 8 {
		t.Fatalf("plane is %dx%d, want 10x8", p.Width(), p.Height())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			if got, want := p.GrayAt(x, y), g.GrayAt(x, y).Y; got != want {
				t.Fatalf("GrayAt(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestToPlaneColorConversion(t *testing.T) {
	// Neutral gray pixels keep their value under any luminance weighting.
	img := image.NewRGBA(image.Rect(0, 0, 9, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			v := uint8(x * 28)
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	p := ToPlane(img)
	if p.Width() != 9 || p.Height() != 9 {
		t.Fatalf("plane is %dx%d, want 9x9", p.Width(), p.Height())
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			want := int(uint8(x * 28))
			got := int(p.GrayAt(x, y))
			if got < want-1 || got > want+1 {
				t.Fatalf("GrayAt(%d, %d) = %d, want ~%d", x, y, got, want)
			}
		}
	}
}
