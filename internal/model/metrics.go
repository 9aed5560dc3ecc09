package model

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"lol-predictor/internal/dataset"
)

// Metrics summarizes classifier performance on a labeled set. The confusion
// matrix is indexed [actual][predicted].
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
	ROCAUC    float64
	Confusion [2][2]int
}

// Evaluate scores predicted probabilities against the true labels, thresholding
// at 0.5.
func Evaluate(examples []dataset.Example, probs []float64) (Metrics, error) {
	if len(examples) != len(probs) {
		return Metrics{}, fmt.Errorf("got %d predictions for %d examples", len(probs), len(examples))
	}
	if len(examples) == 0 {
		return Metrics{}, fmt.Errorf("evaluation set is empty")
	}

	var m Metrics
	for i, ex := range examples {
		actual := int(ex.Label)
		predicted := 0
		if probs[i] >= 0.5 {
			predicted = 1
		}
		m.Confusion[actual][predicted]++
	}

	tn := m.Confusion[0][0]
	fp := m.Confusion[0][1]
	fn := m.Confusion[1][0]
	tp := m.Confusion[1][1]

	m.Accuracy = float64(tp+tn) / float64(len(examples))
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	auc, err := rocAUC(examples, probs)
	if err != nil {
		return Metrics{}, err
	}
	m.ROCAUC = auc
	return m, nil
}

// rocAUC computes the area under the ROC curve via the trapezoidal rule.
func rocAUC(examples []dataset.Example, probs []float64) (float64, error) {
	scores := make([]float64, len(probs))
	classes := make([]bool, len(examples))
	copy(scores, probs)
	for i, ex := range examples {
		classes[i] = ex.Label == 1
	}

	stat.SortWeightedLabeled(scores, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, scores, classes, nil)
	if len(tpr) == 0 {
		return 0, fmt.Errorf("ROC curve is empty")
	}
	return integrate.Trapezoidal(fpr, tpr), nil
}
