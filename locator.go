package vendordoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Template defaults.
const (
	DefaultTemplateDir      = "templates"
	DefaultTemplateFilename = "TEMPLATE 2026 GWFMOA_(Client)_(Vendor)_(mo,yr).docx"
	DefaultTemplateMarker   = "GWFMOA"
	DefaultTemplateExt      = ".docx"
)

// Locator decides which template file to open.
type Locator struct {
	Dir       string
	Filename  string
	Marker    string
	Extension string
	// Override is used when neither the configured file nor a marker match
	// exists in Dir.
	Override string
}

// NewLocator returns a Locator for dir with the default file name and marker.
func NewLocator(dir string) Locator {
	return Locator{
		Dir:       dir,
		Filename:  DefaultTemplateFilename,
		Marker:    DefaultTemplateMarker,
		Extension: DefaultTemplateExt,
	}
}

// Locate resolves the template path:
//  1. Dir/Filename when it exists;
//  2. the first file in Dir ending in Extension whose name contains Marker;
//  3. Override when set, else the path from step 1.
//
// The result is not checked for existence; Load does that.
func (l Locator) Locate() string {
	candidate := filepath.Join(l.Dir, l.Filename)
	if l.Filename != "" && fileExists(candidate) {
		return candidate
	}

	if entries, err := os.ReadDir(l.Dir); err == nil {
		ext := l.Extension
		if ext == "" {
			ext = DefaultTemplateExt
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ext) {
				continue
			}
			if l.Marker != "" && strings.Contains(name, l.Marker) {
				return filepath.Join(l.Dir, name)
			}
		}
	}

	if l.Override != "" {
		return l.Override
	}
	return candidate
}

// Load opens the located template.
func (l Locator) Load() (*Document, string, error) {
	path := l.Locate()
	doc, err := OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, path, fmt.Errorf("%w at %s", ErrTemplateNotFound, path)
		}
		return nil, path, fmt.Errorf("open template %s: %w", path, err)
	}
	return doc, path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
