package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"runtime"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/fast-corners/corner"
	imagingutil "github.com/ironsheep/fast-corners/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version before flag parsing so it works without arguments.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("fast-corners %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		threshold  = flag.Uint("threshold", 10, "intensity delta for a neighbor to count as brighter/darker (0-255)")
		arcLength  = flag.Uint("arc", 12, "minimum contiguous ring arc length (1-16)")
		noPrune    = flag.Bool("no-prune", false, "disable the 4-point high-speed pre-test")
		noSuppress = flag.Bool("no-suppress", false, "disable non-maximum suppression")
		workers    = flag.Int("workers", runtime.NumCPU(), "scan worker goroutines")
		blurRadius = flag.Float64("blur", 0, "Gaussian pre-smoothing radius, 0 disables")
		region     = flag.String("region", "", "restrict detection to x1,y1,x2,y2")
		out        = flag.String("out", "", "write an annotated copy of the last input here")
		markerHex  = flag.String("marker", "", "marker color as #RRGGBB, empty for a per-corner ramp")
		asJSON     = flag.Bool("json", false, "print corners as JSON instead of text")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: fast-corners [options] image [image...]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Detects FAST corners in the given images.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Log to stderr; stdout carries the detection results.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)
	debug := os.Getenv("FAST_CORNERS_LOG") == "debug"

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *threshold > 255 {
		log.Fatalf("threshold %d out of range 0-255", *threshold)
	}
	if *arcLength > 255 {
		log.Fatalf("arc length %d out of range 1-16", *arcLength)
	}

	detector, err := corner.New(corner.Config{
		Threshold: uint8(*threshold),
		ArcLength: uint8(*arcLength),
		Prune:     !*noPrune,
		Suppress:  !*noSuppress,
		Workers:   *workers,
	})
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var scanRegion image.Rectangle
	if *region != "" {
		scanRegion, err = imagingutil.ParseRegion(*region)
		if err != nil {
			log.Fatalf("invalid region: %v", err)
		}
	}

	cache := imagingutil.NewImageCache()
	for _, path := range flag.Args() {
		img, err := cache.Load(path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		if *blurRadius > 0 {
			img = blur.Gaussian(img, *blurRadius)
		}
		plane := imagingutil.ToPlane(img)
		if debug {
			log.Printf("%s: %dx%d, threshold %d, arc %d", path, plane.Width(), plane.Height(), *threshold, *arcLength)
		}

		var points []corner.Point
		if *region != "" {
			points, err = detector.DetectRegion(plane, scanRegion)
		} else {
			points, err = detector.Detect(plane)
		}
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}

		if *asJSON {
			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(struct {
				Path    string         `json:"path"`
				Count   int            `json:"count"`
				Corners []corner.Point `json:"corners"`
			}{Path: path, Count: len(points), Corners: points}); err != nil {
				log.Fatalf("encode results: %v", err)
			}
		} else {
			fmt.Printf("%s: %d corners\n", path, len(points))
			for _, p := range points {
				fmt.Printf("  %d,%d\n", p.X, p.Y)
			}
		}

		if *out != "" {
			res, err := imagingutil.Annotate(img, points, *markerHex)
			if err != nil {
				log.Fatalf("annotate %s: %v", path, err)
			}
			if err := saveAnnotated(res, *out); err != nil {
				log.Fatalf("save %s: %v", *out, err)
			}
			if debug {
				log.Printf("wrote annotated image to %s", *out)
			}
		}
	}
}

// saveAnnotated decodes the base64 PNG result and writes it through
// disintegration/imaging, so the output extension picks the format.
func saveAnnotated(res *imagingutil.AnnotateResult, path string) error {
	img, err := res.Decode()
	if err != nil {
		return err
	}
	return imaging.Save(img, path)
}
