package roll

import (
	"fmt"
	"slices"
	"sort"

	"k8s.io/klog/v2"
)

// Align pairs images with exposures by position: exposures sorted ascending by
// their number, images already sorted by name. When there are more images than
// exposures the leading images are presumed to be test shots or scanner junk
// and dropped; surplus trailing exposures are never consumed. In strict mode
// any count mismatch is an error instead.
func Align(images []string, exposures []Exposure, strict bool) ([]Pair, error) {
	exps := slices.Clone(exposures)
	sort.Slice(exps, func(i, j int) bool {
		return exps[i].Number < exps[j].Number
	})

	if strict && len(images) != len(exps) {
		return nil, fmt.Errorf("%d images but %d exposures", len(images), len(exps))
	}

	if len(images) > len(exps) {
		diff := len(images) - len(exps)
		klog.Warningf("skipping first %d image files (more images than exposures)", diff)
		images = images[diff:]
	}

	n := min(len(images), len(exps))
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{Image: images[i], Exposure: exps[i]})
	}

	return pairs, nil
}
