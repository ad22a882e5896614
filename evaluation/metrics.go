// SPDX-License-Identifier: MIT
// Package: evaluation
//
// Purpose:
//   - Binary-classifier metrics from true/false positive/negative counts.
//   - Label confusion matrices for multi-class classifiers.

package evaluation

const (
	opPrecision = "Precision"
	opRecall    = "Recall"
	opF1        = "F1"
	opAccuracy  = "Accuracy"
	opConfusion = "ConfusionMatrix"
	opCount     = "CountBinary"
)

// BinaryCounts are the four cells of a binary confusion matrix.
type BinaryCounts struct {
	TP, FP, FN, TN int
}

func (c BinaryCounts) validate() error {
	if c.TP < 0 || c.FP < 0 || c.FN < 0 || c.TN < 0 {
		return ErrNegativeCount
	}
	return nil
}

// Precision returns TP / (TP + FP).
//
// Errors:
//   - ErrNegativeCount for a negative cell.
//   - ErrUndefined if TP + FP == 0.
func Precision(c BinaryCounts) (float64, error) {
	if err := c.validate(); err != nil {
		return 0, evaluationErrorf(opPrecision, err)
	}
	if c.TP+c.FP == 0 {
		return 0, evaluationErrorf(opPrecision, ErrUndefined)
	}
	return float64(c.TP) / float64(c.TP+c.FP), nil
}

// Recall returns TP / (TP + FN).
//
// Errors:
//   - ErrNegativeCount for a negative cell.
//   - ErrUndefined if TP + FN == 0.
func Recall(c BinaryCounts) (float64, error) {
	if err := c.validate(); err != nil {
		return 0, evaluationErrorf(opRecall, err)
	}
	if c.TP+c.FN == 0 {
		return 0, evaluationErrorf(opRecall, ErrUndefined)
	}
	return float64(c.TP) / float64(c.TP+c.FN), nil
}

// F1 returns the harmonic mean of precision and recall, 2pr / (p + r).
//
// Errors:
//   - Precision and Recall errors.
//   - ErrUndefined if both precision and recall are 0.
func F1(c BinaryCounts) (float64, error) {
	p, err := Precision(c)
	if err != nil {
		return 0, evaluationErrorf(opF1, err)
	}
	r, err := Recall(c)
	if err != nil {
		return 0, evaluationErrorf(opF1, err)
	}
	if p+r == 0 {
		return 0, evaluationErrorf(opF1, ErrUndefined)
	}
	return 2 * p * r / (p + r), nil
}

// Accuracy returns (TP + TN) / total.
//
// Errors:
//   - ErrNegativeCount for a negative cell.
//   - ErrUndefined if all counts are zero.
func Accuracy(c BinaryCounts) (float64, error) {
	if err := c.validate(); err != nil {
		return 0, evaluationErrorf(opAccuracy, err)
	}
	total := c.TP + c.FP + c.FN + c.TN
	if total == 0 {
		return 0, evaluationErrorf(opAccuracy, ErrUndefined)
	}
	return float64(c.TP+c.TN) / float64(total), nil
}

// CountBinary tallies predicted vs actual booleans into BinaryCounts.
//
// Errors:
//   - ErrLengthMismatch if the slices differ in length.
func CountBinary(predicted, actual []bool) (BinaryCounts, error) {
	if len(predicted) != len(actual) {
		return BinaryCounts{}, evaluationErrorf(opCount, ErrLengthMismatch)
	}
	var c BinaryCounts
	for i := range predicted {
		switch {
		case predicted[i] && actual[i]:
			c.TP++
		case predicted[i]:
			c.FP++
		case actual[i]:
			c.FN++
		default:
			c.TN++
		}
	}
	return c, nil
}

// Outcome is one (predicted, actual) cell of a confusion matrix.
type Outcome[L comparable] struct {
	Predicted L
	Actual    L
}

// ConfusionMatrix counts how often each (predicted, actual) pair occurs.
//
// Errors:
//   - ErrLengthMismatch if the slices differ in length.
func ConfusionMatrix[L comparable](predicted, actual []L) (map[Outcome[L]]int, error) {
	if len(predicted) != len(actual) {
		return nil, evaluationErrorf(opConfusion, ErrLengthMismatch)
	}
	out := make(map[Outcome[L]]int)
	for i := range predicted {
		out[Outcome[L]{Predicted: predicted[i], Actual: actual[i]}]++
	}
	return out, nil
}

// MatrixAccuracy returns the fraction of a confusion matrix on its diagonal.
//
// Errors:
//   - ErrUndefined for an empty matrix.
func MatrixAccuracy[L comparable](m map[Outcome[L]]int) (float64, error) {
	var correct, total int
	for o, n := range m {
		total += n
		if o.Predicted == o.Actual {
			correct += n
		}
	}
	if total == 0 {
		return 0, evaluationErrorf(opAccuracy, ErrUndefined)
	}
	return float64(correct) / float64(total), nil
}
