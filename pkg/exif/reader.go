package exif

import (
	"fmt"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

// Frame is the readback of the fields filmtag writes, used for verification.
type Frame struct {
	Path         string
	Make         string
	Model        string
	FNumber      float64
	ExposureTime string
	ISO          int64
	Taken        string
	Latitude     string
	Longitude    string
	Description  string
}

// ReadFrames extracts the written metadata from each image. Images that fail
// extraction are logged and skipped.
func ReadFrames(paths []string) ([]Frame, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	defer et.Close()

	frames := []Frame{}
	for _, fi := range et.ExtractMetadata(paths...) {
		if fi.Err != nil {
			klog.Warningf("extract fail for %q: %v", fi.File, fi.Err)
			continue
		}

		f := Frame{Path: fi.File}
		f.Make, _ = fi.GetString("Make")
		f.Model, _ = fi.GetString("Model")
		f.FNumber, _ = fi.GetFloat("FNumber")
		f.ExposureTime, _ = fi.GetString("ExposureTime")
		f.ISO, _ = fi.GetInt("ISO")
		f.Taken, _ = fi.GetString("DateTimeOriginal")
		f.Latitude, _ = fi.GetString("GPSLatitude")
		f.Longitude, _ = fi.GetString("GPSLongitude")
		f.Description, _ = fi.GetString("ImageDescription")

		frames = append(frames, f)
	}

	return frames, nil
}
