package assets

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
)

func writeImage(t *testing.T, path string, w, h int, encode func(io.Writer, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	writeImage(t, path, w, h, png.Encode)
}

func encodeJPEG(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }

func TestFit(t *testing.T) {
	tests := []struct {
		name         string
		w, h, max    int
		wantW, wantH int
	}{
		{"downscale", 400, 200, 100, 100, 50},
		{"already narrow", 80, 60, 100, 80, 60},
		{"no limit", 400, 200, 0, 400, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
			b := Fit(img, tt.max).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Fit() = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRunConvertsToWebP(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writePNG(t, filepath.Join(src, "projects", "mail.png"), 400, 200)
	writePNG(t, filepath.Join(src, "logo.png"), 64, 64)
	if err := os.WriteFile(filepath.Join(src, "broken.png"), []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatal(err)
	}

	sources, err := Sources(src)
	if err != nil {
		t.Fatalf("Sources() error: %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("Sources() = %v, want 3 images", sources)
	}

	results := Run(Config{SourceDir: src, OutputDir: out, MaxWidth: 100, Workers: 2}, sources)
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			if filepath.Base(r.Source) != "broken.png" {
				t.Errorf("%s: %v", r.Source, r.Err)
			}
		}
	}
	if failed != 1 {
		t.Errorf("%d failures, want 1", failed)
	}

	data, err := os.ReadFile(filepath.Join(out, "projects", "mail.webp"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	if string(data[:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Fatalf("output is not a WebP container: % x", data[:12])
	}
	cfg, err := webp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig() error: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("output is %dx%d, want 100x50", cfg.Width, cfg.Height)
	}

	manifest := filepath.Join(out, "manifest.json")
	if err := WriteManifest(manifest, out, results); err != nil {
		t.Fatalf("WriteManifest() error: %v", err)
	}
	raw, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		t.Fatal(err)
	}
	want := map[string]ManifestEntry{
		"logo.png": {Source: "logo.png", Image: "logo.webp", Width: 64, Height: 64},
		"mail.png": {Source: "mail.png", Image: "projects/mail.webp", Width: 100, Height: 50},
	}
	if len(entries) != len(want) {
		t.Fatalf("manifest = %+v", entries)
	}
	for _, e := range entries {
		if e != want[e.Source] {
			t.Errorf("entry %+v, want %+v", e, want[e.Source])
		}
	}
}

func TestRunDecodesEachFormat(t *testing.T) {
	src, out := t.TempDir(), t.TempDir()
	writeImage(t, filepath.Join(src, "a.tga"), 30, 20, tga.Encode)
	writeImage(t, filepath.Join(src, "b.png"), 10, 10, png.Encode)
	writeImage(t, filepath.Join(src, "c.jpg"), 40, 16, encodeJPEG)

	sources, err := Sources(src)
	if err != nil {
		t.Fatalf("Sources() error: %v", err)
	}
	results := Run(Config{SourceDir: src, OutputDir: out, Workers: 1}, sources)
	want := map[string][2]int{"a.tga": {30, 20}, "b.png": {10, 10}, "c.jpg": {40, 16}}
	if len(results) != len(want) {
		t.Fatalf("Run() = %d results, want %d", len(results), len(want))
	}
	for _, r := range results {
		name := filepath.Base(r.Source)
		if r.Err != nil {
			t.Errorf("%s: %v", name, r.Err)
			continue
		}
		if got := [2]int{r.Width, r.Height}; got != want[name] {
			t.Errorf("%s: %dx%d, want %dx%d", name, got[0], got[1], want[name][0], want[name][1])
		}
		if _, err := os.Stat(r.Output); err != nil {
			t.Errorf("%s: missing output: %v", name, err)
		}
	}
}

func TestDecodePicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	writePNG(t, path, 12, 8)

	img, err := decode(path)
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Errorf("decode() = %dx%d, want 12x8", b.Dx(), b.Dy())
	}
	if _, err := decode(filepath.Join(dir, "notes.txt")); err == nil {
		t.Error("decode() of an unsupported extension succeeded")
	}
}
