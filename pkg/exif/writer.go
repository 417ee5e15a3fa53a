package exif

import (
	"fmt"
	"os/exec"
	"strings"

	"k8s.io/klog/v2"
)

// Writer invokes the exiftool binary, one process per image.
type Writer struct {
	Binary string
}

// NewWriter returns a Writer for the given binary, falling back to "exiftool"
// on PATH.
func NewWriter(binary string) *Writer {
	if binary == "" {
		binary = "exiftool"
	}
	return &Writer{Binary: binary}
}

// Args builds the full argument list for one image: overwrite in place, one
// token per assignment, image path last.
func (w *Writer) Args(as []Assignment, imagePath string) []string {
	args := make([]string, 0, len(as)+2)
	args = append(args, "-overwrite_original")
	for _, a := range as {
		args = append(args, a.Arg())
	}
	return append(args, imagePath)
}

// Apply writes the assignments into one image, mutating it in place. The
// tool's output is captured and only surfaced on failure; callers log the
// error and keep going, a bad frame never stops the rest of the roll.
func (w *Writer) Apply(as []Assignment, imagePath string) error {
	args := w.Args(as, imagePath)
	klog.V(1).Infof("running %s %s", w.Binary, strings.Join(args, " "))

	out, err := exec.Command(w.Binary, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s on %q: %w (output: %s)", w.Binary, imagePath, err, strings.TrimSpace(string(out)))
	}

	klog.V(2).Infof("%s output: %s", w.Binary, strings.TrimSpace(string(out)))
	return nil
}
