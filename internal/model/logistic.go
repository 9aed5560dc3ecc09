package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"lol-predictor/internal/dataset"
)

// Config holds the training hyperparameters.
type Config struct {
	LearningRate float64
	Epochs       int
	L2           float64
}

// DefaultConfig returns hyperparameters that converge well on the win
// prediction features.
func DefaultConfig() Config {
	return Config{
		LearningRate: 0.1,
		Epochs:       300,
		L2:           0.001,
	}
}

// Classifier is a regularized logistic regression over standardized
// features.
type Classifier struct {
	cfg Config

	weights *mat.VecDense // one per feature
	bias    float64

	// Standardization parameters fitted on the training set.
	means   []float64
	stddevs []float64
}

// NewClassifier creates an untrained classifier.
func NewClassifier(cfg Config) *Classifier {
	if cfg.Epochs <= 0 {
		cfg = DefaultConfig()
	}
	return &Classifier{cfg: cfg}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// fitScaler computes per-feature mean and standard deviation over the
// training set. Constant features get a deviation of 1 so they scale to
// zero instead of dividing by zero.
func (c *Classifier) fitScaler(examples []dataset.Example) {
	n := dataset.NumFeatures
	c.means = make([]float64, n)
	c.stddevs = make([]float64, n)

	col := make([]float64, len(examples))
	for j := 0; j < n; j++ {
		for i, ex := range examples {
			col[i] = ex.Features[j]
		}
		mean, stddev := stat.MeanStdDev(col, nil)
		if stddev == 0 || math.IsNaN(stddev) {
			stddev = 1
		}
		c.means[j] = mean
		c.stddevs[j] = stddev
	}
}

// matrices builds the standardized design matrix and label vector.
func (c *Classifier) matrices(examples []dataset.Example) (*mat.Dense, *mat.VecDense) {
	rows := len(examples)
	x := mat.NewDense(rows, dataset.NumFeatures, nil)
	y := mat.NewVecDense(rows, nil)
	for i, ex := range examples {
		for j, v := range ex.Features {
			x.Set(i, j, (v-c.means[j])/c.stddevs[j])
		}
		y.SetVec(i, ex.Label)
	}
	return x, y
}

// Train fits the classifier with full-batch gradient descent. The validation
// set only reports loss during training; it does not influence the fit.
func (c *Classifier) Train(train, val []dataset.Example, progress func(epoch int, trainLoss, valLoss float64)) error {
	if len(train) == 0 {
		return fmt.Errorf("training set is empty")
	}

	c.fitScaler(train)
	x, y := c.matrices(train)
	rows, cols := x.Dims()

	c.weights = mat.NewVecDense(cols, nil)
	c.bias = 0

	preds := mat.NewVecDense(rows, nil)
	grad := mat.NewVecDense(cols, nil)

	for epoch := 1; epoch <= c.cfg.Epochs; epoch++ {
		// Forward pass.
		preds.MulVec(x, c.weights)
		var biasGrad float64
		for i := 0; i < rows; i++ {
			p := sigmoid(preds.AtVec(i) + c.bias)
			preds.SetVec(i, p-y.AtVec(i))
			biasGrad += p - y.AtVec(i)
		}

		// Gradient with L2 on the weights.
		grad.MulVec(x.T(), preds)
		for j := 0; j < cols; j++ {
			g := grad.AtVec(j)/float64(rows) + c.cfg.L2*c.weights.AtVec(j)
			c.weights.SetVec(j, c.weights.AtVec(j)-c.cfg.LearningRate*g)
		}
		c.bias -= c.cfg.LearningRate * biasGrad / float64(rows)

		if progress != nil && (epoch%50 == 0 || epoch == c.cfg.Epochs) {
			progress(epoch, c.loss(train), c.loss(val))
		}
	}
	return nil
}

// loss is the mean binary cross-entropy over a set, without regularization.
func (c *Classifier) loss(examples []dataset.Example) float64 {
	if len(examples) == 0 {
		return math.NaN()
	}
	const eps = 1e-12
	var sum float64
	for _, ex := range examples {
		p := c.PredictProba(ex.Features)
		if p < eps {
			p = eps
		} else if p > 1-eps {
			p = 1 - eps
		}
		sum += -(ex.Label*math.Log(p) + (1-ex.Label)*math.Log(1-p))
	}
	return sum / float64(len(examples))
}

// PredictProba returns the probability that the blue team wins.
func (c *Classifier) PredictProba(features [dataset.NumFeatures]float64) float64 {
	var z float64
	for j, v := range features {
		z += c.weights.AtVec(j) * (v - c.means[j]) / c.stddevs[j]
	}
	return sigmoid(z + c.bias)
}

// Predict returns win probabilities for a whole set.
func (c *Classifier) Predict(examples []dataset.Example) []float64 {
	probs := make([]float64, len(examples))
	for i, ex := range examples {
		probs[i] = c.PredictProba(ex.Features)
	}
	return probs
}
