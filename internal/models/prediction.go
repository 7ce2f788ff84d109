package models

// Outcome holds perspective-relative result probabilities.
type Outcome struct {
	Win  float64 `json:"win"`
	Tie  float64 `json:"tie"`
	Lose float64 `json:"lose"`
}

// Sum is Win+Tie+Lose; a well-formed classifier keeps it at 1.
func (o Outcome) Sum() float64 {
	return o.Win + o.Tie + o.Lose
}

type PredictionRequest struct {
	RatingDiff  int    `json:"rating_diff"`
	Perspective string `json:"perspective"`
}

type PredictionResult struct {
	RatingDiff  int     `json:"rating_diff"`
	Perspective string  `json:"perspective"`
	Outcome     Outcome `json:"outcome"`
}
