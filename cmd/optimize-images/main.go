package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Zachkp/portfolio/internal/assets"
)

func main() {
	src := flag.String("src", "artwork", "Directory of source images")
	out := flag.String("out", "images", "Output directory for WebP files")
	maxWidth := flag.Int("max-width", 1600, "Maximum output width in pixels (0 keeps the size)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	flag.Parse()

	sources, err := assets.Sources(*src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(sources) == 0 {
		fmt.Fprintf(os.Stderr, "No images found in %s\n", *src)
		os.Exit(1)
	}

	fmt.Printf("Converting %d images from %s to %s\n", len(sources), *src, *out)
	start := time.Now()
	results := assets.Run(assets.Config{
		SourceDir: *src,
		OutputDir: *out,
		MaxWidth:  *maxWidth,
		Workers:   *workers,
		Progress: func(done, total int) {
			fmt.Printf("  [%d/%d]\n", done, total)
		},
	}, sources)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  FAIL %s: %v\n", r.Source, r.Err)
		}
	}

	if err := assets.WriteManifest(filepath.Join(*out, "manifest.json"), *out, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing manifest: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done in %s: %d converted, %d failed\n",
		time.Since(start).Round(time.Millisecond), len(results)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
