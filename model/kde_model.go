package model

type Density struct {
	X     float64 `json:"x"`
	Value float64 `json:"v"`
}

type Cdf struct {
	X     float64 `json:"x"`
	Value float64 `json:"v"`
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}
