package kde

const (
	DefaultCut = 3.0

	// the grid never has fewer points than this
	MinGridSize = 100

	// Gauss-Legendre points per grid interval for the cdf
	QuadPoints = 50

	// the lower grid edge extends further than the upper one before it is
	// clipped at 0, failure times pile up near the origin
	LowerCutFactor = 1.5

	MinSampleSize = 2
)

func getMinSampleSize() int {
	return MinSampleSize
}
