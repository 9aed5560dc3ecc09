package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"lol-predictor/internal/timeline"
)

// CorpusWriter appends reduced match rows to the corpus CSV. Appending is
// serialized and flushed per row, so a killed run loses at most the row in
// flight.
type CorpusWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// OpenCorpus opens the corpus file for appending, creating it (with a header
// row) when it does not exist yet.
func OpenCorpus(path string) (*CorpusWriter, error) {
	info, err := os.Stat(path)
	newFile := os.IsNotExist(err)
	if err != nil && !newFile {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	if !newFile && info.Size() == 0 {
		newFile = true
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}

	w := &CorpusWriter{file: file, writer: csv.NewWriter(file)}
	if newFile {
		if err := w.writeRecord(timeline.Header()); err != nil {
			file.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *CorpusWriter) writeRecord(rec []string) error {
	if err := w.writer.Write(rec); err != nil {
		return fmt.Errorf("write corpus record: %w", err)
	}
	w.writer.Flush()
	return w.writer.Error()
}

// Append writes one match row to the corpus.
func (w *CorpusWriter) Append(row timeline.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeRecord(row.Record())
}

// Close syncs and closes the corpus file.
func (w *CorpusWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// ExportCorpus writes rows as a fresh corpus CSV with a header, replacing
// any existing file.
func ExportCorpus(path string, rows []timeline.Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(timeline.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Record()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCorpus loads all rows from a corpus CSV. A header row is skipped when
// present, and a truncated final record (a run killed mid-write) is dropped
// rather than failing the load.
func ReadCorpus(path string) ([]timeline.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows []timeline.Row
	first := true
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A torn final line shows up as a parse error at the tail.
			break
		}
		if first {
			first = false
			if len(rec) > 0 && rec[0] == timeline.Header()[0] {
				continue
			}
		}
		row, err := timeline.ParseRow(rec)
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
