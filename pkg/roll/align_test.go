package roll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignEqualCounts(t *testing.T) {
	images := []string{"a.tif", "b.tif", "c.tif"}
	exposures := []Exposure{{Number: 3}, {Number: 1}, {Number: 2}}

	pairs, err := Align(images, exposures, false)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	// Exposures pair in ascending number order regardless of sidecar order.
	assert.Equal(t, 1, pairs[0].Exposure.Number)
	assert.Equal(t, "a.tif", pairs[0].Image)
	assert.Equal(t, 2, pairs[1].Exposure.Number)
	assert.Equal(t, 3, pairs[2].Exposure.Number)
}

func TestAlignMoreImagesDropsLeading(t *testing.T) {
	images := []string{"a.tif", "b.tif", "c.tif", "d.tif"}
	exposures := []Exposure{{Number: 1}, {Number: 2}, {Number: 3}}

	pairs, err := Align(images, exposures, false)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	assert.Equal(t, "b.tif", pairs[0].Image)
	assert.Equal(t, 1, pairs[0].Exposure.Number)
	assert.Equal(t, "c.tif", pairs[1].Image)
	assert.Equal(t, 2, pairs[1].Exposure.Number)
	assert.Equal(t, "d.tif", pairs[2].Image)
	assert.Equal(t, 3, pairs[2].Exposure.Number)
}

func TestAlignMoreExposuresTruncates(t *testing.T) {
	images := []string{"a.tif", "b.tif"}
	exposures := []Exposure{{Number: 1}, {Number: 2}, {Number: 3}, {Number: 4}}

	pairs, err := Align(images, exposures, false)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, 1, pairs[0].Exposure.Number)
	assert.Equal(t, 2, pairs[1].Exposure.Number)
}

func TestAlignStrictMismatch(t *testing.T) {
	images := []string{"a.tif", "b.tif"}
	exposures := []Exposure{{Number: 1}}

	_, err := Align(images, exposures, true)
	assert.Error(t, err)

	pairs, err := Align(images, exposures, false)
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestAlignDoesNotMutateInput(t *testing.T) {
	exposures := []Exposure{{Number: 2}, {Number: 1}}

	_, err := Align([]string{"a.tif", "b.tif"}, exposures, false)
	require.NoError(t, err)

	assert.Equal(t, 2, exposures[0].Number)
}

func TestAlignEmpty(t *testing.T) {
	pairs, err := Align(nil, nil, false)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
