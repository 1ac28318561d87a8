package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/fast-corners/corner"
)

// markerArm is the half-length of the cross drawn at each corner.
const markerArm = 3

// AnnotateResult contains a copy of the source image with detected corners
// marked, encoded as base64 PNG.
type AnnotateResult struct {
	// Width of the annotated image in pixels (same as input).
	Width int `json:"width"`

	// Height of the annotated image in pixels (same as input).
	Height int `json:"height"`

	// Count is the number of corners drawn.
	Count int `json:"count"`

	// ImageBase64 is the annotated image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Decode returns the annotated image decoded back from ImageBase64, for
// callers that want to re-encode or save it rather than ship the base64
// payload.
func (r *AnnotateResult) Decode() (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode annotated image: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode annotated image: %w", err)
	}
	return img, nil
}

// Annotate draws a cross marker at every detected corner over a copy of img
// and returns the result as base64 PNG.
//
// markerColorHex selects a single color for all markers ("#RRGGBB"). When it
// is empty or unparseable, each marker instead gets a color from an HSV ramp
// over the list order, which makes individual detections easier to tell
// apart in dense clusters. The source image is never modified.
func Annotate(img image.Image, points []corner.Point, markerColorHex string) (*AnnotateResult, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	fixed, haveFixed := parseMarkerColor(markerColorHex)
	for i, p := range points {
		c := fixed
		if !haveFixed {
			c = rampColor(i, len(points))
		}
		drawCross(result, bounds.Min.X+p.X, bounds.Min.Y+p.Y, c)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       width,
		Height:      height,
		Count:       len(points),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func parseMarkerColor(hex string) (color.RGBA, bool) {
	if hex == "" {
		return color.RGBA{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, true
}

// rampColor spreads marker hues from red through blue across the list.
func rampColor(i, n int) color.RGBA {
	if n <= 1 {
		n = 2
	}
	hue := 240 * float64(i) / float64(n-1)
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawCross draws a plus-shaped marker centered on (x, y), clipped to the
// image bounds.
func drawCross(dst *image.RGBA, x, y int, c color.RGBA) {
	b := dst.Bounds()
	for d := -markerArm; d <= markerArm; d++ {
		if p := (image.Point{X: x + d, Y: y}); p.In(b) {
			dst.SetRGBA(p.X, p.Y, c)
		}
		if p := (image.Point{X: x, Y: y + d}); p.In(b) {
			dst.SetRGBA(p.X, p.Y, c)
		}
	}
}
