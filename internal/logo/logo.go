// Package logo manages the single company logo file. The entity itself never
// stores the image; saving copies the chosen picture into a well-known file
// next to the database, downscaled to the size the header displays.
package logo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// FileName is the fixed name presentation code reads the logo from.
const FileName = "logo.png"

const maxSide = 128

// Path returns the logo location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Save decodes an uploaded image, fits it into 128×128 preserving aspect
// ratio, and writes it to Path(dir), replacing any previous logo.
func Save(r io.Reader, dir string) error {
	img, err := imaging.Decode(r)
	if err != nil {
		return fmt.Errorf("decode logo: %w", err)
	}
	img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	if err := imaging.Save(img, Path(dir)); err != nil {
		return fmt.Errorf("save logo: %w", err)
	}
	return nil
}

// CopyFrom saves the image at src as the company logo.
func CopyFrom(src, dir string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open logo source: %w", err)
	}
	defer f.Close()
	return Save(f, dir)
}

// Exists reports whether a logo was ever saved.
func Exists(dir string) bool {
	_, err := os.Stat(Path(dir))
	return err == nil
}
