// Package exif maps exposure records to exiftool field assignments and shells
// out to exiftool to write and read them.
package exif

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"filmtag/pkg/config"
	"filmtag/pkg/roll"
)

var exifDate = "2006:01:02 15:04:05"

// Assignment is one metadata field to write.
type Assignment struct {
	Field string
	Value string
}

// Arg renders the assignment as an exiftool argument token.
func (a Assignment) Arg() string {
	return fmt.Sprintf("-%s=%s", a.Field, a.Value)
}

// Fields computes the assignments for one exposure. Fields whose value comes
// out empty are omitted entirely rather than written blank. An unparsable
// timestamp or aperture drops that field and nothing else.
func Fields(e roll.Exposure, fr roll.FilmRoll, cfg *config.Config) []Assignment {
	as := []Assignment{}
	add := func(field, value string) {
		if value != "" {
			as = append(as, Assignment{Field: field, Value: value})
		}
	}

	add("Make", cfg.Gear.Make)
	add("Model", cfg.Gear.Model)
	add("LensModel", cfg.Gear.LensModel)

	f, err := ParseAperture(e.Aperture)
	switch {
	case err != nil:
		klog.Warningf("exposure #%d: unusable aperture %q: %v", e.Number, e.Aperture, err)
	case f > 0:
		add("FNumber", strconv.FormatFloat(f, 'f', -1, 64))
	}

	add("ExposureTime", e.ShutterSpeed)

	iso := fr.ISO
	if iso == 0 {
		iso = cfg.Defaults.ISO
	}
	add("ISO", strconv.Itoa(iso))

	add("FocalLength", cfg.Gear.FocalLength)
	add("UserComment", e.AdditionalInfo)

	if t, err := ParseCaptureTime(e.CapturedAt); err == nil {
		add("DateTimeOriginal", t.Format(exifDate))
	} else {
		klog.V(1).Infof("exposure #%d: no usable capture time: %v", e.Number, err)
	}

	if l := e.Location; l != nil {
		add("GPSLatitude", strconv.FormatFloat(l.Latitude, 'f', -1, 64))
		// Hemisphere refs are fixed: this tool's rolls are all shot north of
		// the equator and east of Greenwich.
		add("GPSLatitudeRef", "N")
		add("GPSLongitude", strconv.FormatFloat(l.Longitude, 'f', -1, 64))
		add("GPSLongitudeRef", "E")
	}

	add("Country", cfg.Gear.Country)

	name := fr.Name
	if name == "" {
		name = "Unknown"
	}
	add("ImageDescription", "Film: "+name)

	return as
}

// ParseAperture converts a notation like "f/2,8" or "f/2.8" to its numeric
// f-number. An empty string parses to zero without error.
func ParseAperture(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	s = strings.ReplaceAll(s, "f/", "")
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse aperture: %w", err)
	}

	return f, nil
}

// ParseCaptureTime parses the sidecar's ISO-8601 timestamp, with or without a
// UTC offset ("Z" counts as +00:00).
func ParseCaptureTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}

	return t, nil
}
