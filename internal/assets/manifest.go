package assets

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry describes one converted image.
type ManifestEntry struct {
	Source string `json:"source"`
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// WriteManifest writes the successful results to path as JSON. Image paths
// are relative to outputDir with forward slashes.
func WriteManifest(path, outputDir string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		rel, err := filepath.Rel(outputDir, r.Output)
		if err != nil {
			return err
		}
		entries = append(entries, ManifestEntry{
			Source: filepath.Base(r.Source),
			Image:  filepath.ToSlash(rel),
			Width:  r.Width,
			Height: r.Height,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
