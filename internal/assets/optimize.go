// Package assets converts project screenshots and artwork into the WebP
// images served under /images.
package assets

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// Config holds the settings for one optimisation run.
type Config struct {
	SourceDir string
	OutputDir string
	// MaxWidth caps the output width. Narrower images keep their size.
	MaxWidth int
	Workers  int
	// Progress, when set, receives periodic counts while the run is busy.
	Progress func(done, total int)
}

// Result is the outcome for one source image.
type Result struct {
	Source string
	Output string
	Width  int
	Height int
	Err    error
}

// decoders is keyed by lower-case extension. TGA has no magic number and
// registers itself as a catch-all with the image package, so formats are
// never sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
	".webp": webp.Decode,
}

// Sources lists the convertible images under dir, sorted by path.
func Sources(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if _, ok := decoders[strings.ToLower(filepath.Ext(path))]; ok && !d.IsDir() {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(out)
	return out, nil
}

// Run converts every source in parallel. Results keep the order of sources.
func Run(cfg Config, sources []string) []Result {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	total := len(sources)
	results := make([]Result, total)
	var processed atomic.Int64

	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					cfg.Progress(int(processed.Load()), total)
				}
			}
		}()
	}

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = convert(cfg, sources[idx])
				processed.Add(1)
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)
	return results
}

func convert(cfg Config, src string) Result {
	res := Result{Source: src}
	rel, err := filepath.Rel(cfg.SourceDir, src)
	if err != nil {
		rel = filepath.Base(src)
	}
	res.Output = filepath.Join(cfg.OutputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".webp")

	img, err := decode(src)
	if err != nil {
		res.Err = err
		return res
	}
	img = Fit(img, cfg.MaxWidth)
	b := img.Bounds()
	res.Width, res.Height = b.Dx(), b.Dy()

	if err := os.MkdirAll(filepath.Dir(res.Output), 0755); err != nil {
		res.Err = err
		return res
	}
	f, err := os.Create(res.Output)
	if err != nil {
		res.Err = err
		return res
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Err = fmt.Errorf("webp encode %s: %w", src, err)
	}
	return res
}

func decode(path string) (image.Image, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("decode %s: unsupported format", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Fit scales img down to maxWidth keeping its aspect ratio. Images already
// narrow enough, and a maxWidth of zero, return img unchanged.
func Fit(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
