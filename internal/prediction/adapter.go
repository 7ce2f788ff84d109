// Package prediction maps outcome-classifier output to probabilities seen
// from the player's side of the board.
package prediction

import (
	"fmt"

	"github.com/vytor/chessdash/internal/models"
)

// Class-index contract of the trained outcome model. The positions come from
// the label encoding used at training time and must not be reordered.
const (
	ClassBlackWin = 0
	ClassTie      = 1
	ClassWhiteWin = 2

	NumClasses = 3
)

// ClassLabels names each class position of the contract.
var ClassLabels = [NumClasses]string{
	ClassBlackWin: "BlackWin",
	ClassTie:      "Tie",
	ClassWhiteWin: "WhiteWin",
}

// Rating differential bounds accepted from the user.
const (
	MinRatingDiff = -800
	MaxRatingDiff = 800
)

// Classifier is a trained model exposing class probabilities for a batch of
// feature rows, in the order of the class-index contract.
type Classifier interface {
	PredictProba(features [][]float64) ([][]float64, error)
}

// ValidateRatingDiff checks the user-entered differential against the accepted range.
func ValidateRatingDiff(diff int) error {
	if diff < MinRatingDiff || diff > MaxRatingDiff {
		return fmt.Errorf("rating difference %d out of range [%d, %d]", diff, MinRatingDiff, MaxRatingDiff)
	}
	return nil
}

// SignedDiff converts a user-entered differential (positive when the user is
// rated higher) into the White-relative differential the model was trained on.
func SignedDiff(ratingDiff int, p models.Perspective) int {
	if p == models.Black {
		return -ratingDiff
	}
	return ratingDiff
}

// Predict asks the classifier for the outcome distribution of a game in which
// the user, playing p, is ratingDiff points above the opponent.
// Classifier failures are returned as is; there is no retry.
func Predict(ratingDiff int, p models.Perspective, c Classifier) (models.Outcome, error) {
	diff := SignedDiff(ratingDiff, p)

	proba, err := c.PredictProba([][]float64{{float64(diff)}})
	if err != nil {
		return models.Outcome{}, fmt.Errorf("predict outcome: %w", err)
	}
	if len(proba) != 1 || len(proba[0]) != NumClasses {
		return models.Outcome{}, fmt.Errorf("predict outcome: classifier returned shape %s, want 1x%d", shape(proba), NumClasses)
	}

	return FromClassProba(proba[0], p), nil
}

// FromClassProba remaps one row of contract-ordered probabilities to the
// perspective's win, tie and lose probabilities.
func FromClassProba(row []float64, p models.Perspective) models.Outcome {
	out := models.Outcome{Tie: row[ClassTie]}
	if p == models.Black {
		out.Win = row[ClassBlackWin]
		out.Lose = row[ClassWhiteWin]
	} else {
		out.Win = row[ClassWhiteWin]
		out.Lose = row[ClassBlackWin]
	}
	return out
}

func shape(m [][]float64) string {
	if len(m) == 0 {
		return "0x0"
	}
	return fmt.Sprintf("%dx%d", len(m), len(m[0]))
}
