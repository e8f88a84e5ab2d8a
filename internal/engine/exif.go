package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/roljohnt/chronosort/internal/config"
)

// CaptureDateReader extracts an embedded capture timestamp from a photo file.
// The interface allows tests to substitute metadata without crafting real
// image fixtures.
type CaptureDateReader interface {
	CaptureDate(path string) (time.Time, error)
}

// ExifReader implements CaptureDateReader using goexif.
type ExifReader struct{}

// captureTags lists the EXIF date tags in order of preference. The capture
// date (DateTimeOriginal) survives copying and syncing, unlike filesystem
// timestamps, so it is tried first.
var captureTags = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

// CaptureDate returns the first parseable date tag found in the file's EXIF
// block. It returns an error when the file has no EXIF data or no usable tag;
// callers are expected to fall back to filesystem timestamps.
func (ExifReader) CaptureDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer func() { _ = f.Close() }()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	for _, name := range captureTags {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		val, err := tag.StringVal()
		if err != nil {
			continue
		}
		if t, err := time.ParseInLocation(config.ExifDateFormat, val, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%s: %s", config.ErrNoCaptureDate, path)
}

// IsImage reports whether the lowercase extension belongs to the closed set
// of formats that may carry EXIF capture metadata.
func IsImage(ext string) bool {
	return config.ImageExtensions[ext]
}
