package discimg

import (
	"path/filepath"
	"strings"
)

// Load dispatches to LoadSSD, LoadDSD, or LoadFSD based on the file
// extension alone; the file's contents are not inspected to choose the
// format.
func Load(path string) (*Disc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ssd":
		return LoadSSD(path)
	case ".dsd":
		return LoadDSD(path)
	case ".fsd":
		return LoadFSD(path)
	default:
		return nil, ErrUnrecognizedFormat
	}
}
