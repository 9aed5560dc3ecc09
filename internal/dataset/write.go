package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// WriteExamples writes feature vectors as a headerless CSV, the layout the
// trainer loads. NaN ratios are written literally and filtered at load time.
func WriteExamples(path string, examples []Example) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	rec := make([]string, NumFeatures+1)
	for _, ex := range examples {
		for i, v := range ex.Features {
			rec[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		rec[NumFeatures] = strconv.FormatFloat(ex.Label, 'f', -1, 64)
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadExamples loads a headerless feature CSV. Rows containing NaN (zero
// wards placed upstream) are dropped.
func ReadExamples(path string) ([]Example, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	var examples []Example
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(rec) != NumFeatures+1 {
			return nil, fmt.Errorf("%s: record has %d fields, want %d", path, len(rec), NumFeatures+1)
		}

		var ex Example
		hasNaN := false
		for i := 0; i < NumFeatures; i++ {
			v, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: parsing field %d: %w", path, i, err)
			}
			if math.IsNaN(v) {
				hasNaN = true
			}
			ex.Features[i] = v
		}
		if hasNaN {
			continue
		}
		label, err := strconv.ParseFloat(rec[NumFeatures], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: parsing label: %w", path, err)
		}
		ex.Label = label
		examples = append(examples, ex)
	}
	return examples, nil
}
