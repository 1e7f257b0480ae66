package imaging

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/ironsheep/collager/internal/colorlab"
)

// maxClusterSamples bounds the number of pixels fed to k-means.
const maxClusterSamples = 12000

// ErrNoClusters is returned when k-means produced no usable cluster.
var ErrNoClusters = errors.New("no color clusters found")

// LargestClusterLab partitions the pixels of target into k clusters in Lab
// space and returns the center of the most populated one.
//
// Unlike DominantLab, which works on the decoded RGB image, this clusters
// the exact values the collage is scored against. Large targets are
// subsampled on a regular stride. The initial centers are chosen by the
// k-means package itself, so the result can differ between calls.
func LargestClusterLab(target *LabGrid, k int) (colorlab.Lab, error) {
	if k <= 0 {
		return colorlab.Lab{}, fmt.Errorf("cluster count must be positive, got %d", k)
	}

	w, h := target.Width(), target.Height()
	step := 1
	if w*h > maxClusterSamples {
		step = int(math.Sqrt(float64(w*h)/maxClusterSamples)) + 1
	}

	pixels := target.Pixels()
	dataset := make(clusters.Observations, 0, min(w*h, maxClusterSamples))
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			px := pixels[y*w+x]
			dataset = append(dataset, clusters.Coordinates{float64(px.L), float64(px.A), float64(px.B)})
		}
	}

	cc, err := kmeans.New().Partition(dataset, min(k, len(dataset)))
	if err != nil {
		return colorlab.Lab{}, fmt.Errorf("failed to cluster colors: %w", err)
	}
	if len(cc) == 0 {
		return colorlab.Lab{}, ErrNoClusters
	}

	largest := slices.MaxFunc(cc, func(a, b clusters.Cluster) int {
		return len(a.Observations) - len(b.Observations)
	})
	if len(largest.Center) < 3 {
		return colorlab.Lab{}, ErrNoClusters
	}

	return colorlab.Lab{
		L: float32(largest.Center[0]),
		A: float32(largest.Center[1]),
		B: float32(largest.Center[2]),
	}, nil
}
