package weibull

const (
	// below this sample size plotting positions use Bernard's approximation,
	// from it on mean ranks
	BernardSampleLimit = 100

	BernardRankOffset = 0.3
	BernardSizeOffset = 0.4

	// rank regression needs at least a line
	MinRegressionSampleSize = 2

	SummaryRound = 4

	KdeBandWidthAdjust = 1.0
	KdeCut             = 3.0
)

var (
	// B-lives reported by AnalyzeSample, as cumulative failure fractions
	AllReportBLives = []float64{0.01, 0.05, 0.1, 0.5}
)

func getBernardSampleLimit() int {
	return BernardSampleLimit
}

func getSummaryRound() int32 {
	return SummaryRound
}
