package model

import (
	"math"
	"math/rand"
	"testing"

	"lol-predictor/internal/dataset"
)

func TestEvaluateKnownConfusion(t *testing.T) {
	// 4 true positive, 1 false positive, 2 false negative, 3 true negative.
	labels := []float64{1, 1, 1, 1, 1, 1, 0, 0, 0, 0}
	probs := []float64{0.9, 0.8, 0.7, 0.6, 0.4, 0.3, 0.55, 0.2, 0.1, 0.05}

	examples := make([]dataset.Example, len(labels))
	for i, l := range labels {
		examples[i].Label = l
	}

	m, err := Evaluate(examples, probs)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if m.Confusion != [2][2]int{{3, 1}, {2, 4}} {
		t.Errorf("confusion = %v, want [[3 1] [2 4]]", m.Confusion)
	}
	if math.Abs(m.Accuracy-0.7) > 1e-9 {
		t.Errorf("accuracy = %v, want 0.7", m.Accuracy)
	}
	if math.Abs(m.Precision-0.8) > 1e-9 {
		t.Errorf("precision = %v, want 0.8", m.Precision)
	}
	if math.Abs(m.Recall-4.0/6.0) > 1e-9 {
		t.Errorf("recall = %v, want %v", m.Recall, 4.0/6.0)
	}
	wantF1 := 2 * 0.8 * (4.0 / 6.0) / (0.8 + 4.0/6.0)
	if math.Abs(m.F1-wantF1) > 1e-9 {
		t.Errorf("F1 = %v, want %v", m.F1, wantF1)
	}
}

func TestEvaluatePerfectClassifierAUC(t *testing.T) {
	examples := make([]dataset.Example, 10)
	probs := make([]float64, 10)
	for i := range examples {
		if i < 5 {
			examples[i].Label = 1
			probs[i] = 0.9
		} else {
			examples[i].Label = 0
			probs[i] = 0.1
		}
	}

	m, err := Evaluate(examples, probs)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if math.Abs(m.ROCAUC-1.0) > 1e-9 {
		t.Errorf("ROC-AUC = %v, want 1.0 for a perfect separation", m.ROCAUC)
	}
	if m.Accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", m.Accuracy)
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	if _, err := Evaluate(make([]dataset.Example, 3), make([]float64, 2)); err == nil {
		t.Error("Evaluate() accepted mismatched lengths")
	}
}

// separableExamples builds a noiseless dataset where the label follows the
// sign of a linear score, which logistic regression must fit near perfectly.
func separableExamples(n int, rng *rand.Rand) []dataset.Example {
	examples := make([]dataset.Example, n)
	for i := range examples {
		var ex dataset.Example
		for j := range ex.Features {
			ex.Features[j] = rng.NormFloat64()
		}
		score := 2*ex.Features[2] + ex.Features[8] - 0.5*ex.Features[4]
		if score > 0 {
			ex.Label = 1
		}
		examples[i] = ex
	}
	return examples
}

func TestTrainOnSeparableData(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	train := separableExamples(2000, rng)
	val := separableExamples(200, rng)
	test := separableExamples(500, rng)

	c := NewClassifier(Config{LearningRate: 0.5, Epochs: 500, L2: 0.0001})
	if err := c.Train(train, val, nil); err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	m, err := Evaluate(test, c.Predict(test))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if m.Accuracy < 0.95 {
		t.Errorf("accuracy = %v on separable data, want >= 0.95", m.Accuracy)
	}
	if m.ROCAUC < 0.98 {
		t.Errorf("ROC-AUC = %v on separable data, want >= 0.98", m.ROCAUC)
	}
}

func TestTrainEmptySet(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	if err := c.Train(nil, nil, nil); err == nil {
		t.Error("Train() accepted an empty training set")
	}
}
