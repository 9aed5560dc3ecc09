package dataset

import (
	"math"
	"math/rand"
)

// SplitSeed fixes the shuffle so reruns produce identical splits.
const SplitSeed = 777

const (
	trainValFraction = 0.9
	valFraction      = 0.15
)

// Split holds the three dataset partitions.
type Split struct {
	Train []Example
	Val   []Example
	Test  []Example
}

// SplitExamples partitions examples into train, validation and test sets:
// 90% train+val and 10% test, then 15% of train+val peeled off for
// validation. The shuffle is seeded, so the same input always produces the
// same partitions.
func SplitExamples(examples []Example) Split {
	rng := rand.New(rand.NewSource(SplitSeed))

	n := len(examples)
	perm := rng.Perm(n)
	kTrainVal := int(math.Round(trainValFraction * float64(n)))

	trainVal := make([]Example, 0, kTrainVal)
	test := make([]Example, 0, n-kTrainVal)
	for i, idx := range perm {
		if i < kTrainVal {
			trainVal = append(trainVal, examples[idx])
		} else {
			test = append(test, examples[idx])
		}
	}

	valPerm := rng.Perm(len(trainVal))
	kVal := int(math.Round(valFraction * float64(len(trainVal))))

	val := make([]Example, 0, kVal)
	train := make([]Example, 0, len(trainVal)-kVal)
	for i, idx := range valPerm {
		if i < kVal {
			val = append(val, trainVal[idx])
		} else {
			train = append(train, trainVal[idx])
		}
	}

	return Split{Train: train, Val: val, Test: test}
}
