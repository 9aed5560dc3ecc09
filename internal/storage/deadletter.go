package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// DeadLetter is one match the extractor gave up on, with enough context to
// retry it by hand later.
type DeadLetter struct {
	MatchID  string    `json:"matchId"`
	Reason   string    `json:"reason"`
	Attempts int       `json:"attempts"`
	At       time.Time `json:"at"`
}

// DeadLetterWriter appends dead letters to a JSONL file.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
}

// OpenDeadLetter opens the dead-letter log for appending.
func OpenDeadLetter(path string) (*DeadLetterWriter, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter log: %w", err)
	}
	return &DeadLetterWriter{file: file}, nil
}

// Record appends one dead letter, stamped with the current time.
func (w *DeadLetterWriter) Record(matchID, reason string, attempts int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := json.Marshal(DeadLetter{
		MatchID:  matchID,
		Reason:   reason,
		Attempts: attempts,
		At:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal dead letter: %w", err)
	}
	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write dead letter: %w", err)
	}
	return nil
}

// Close closes the log.
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadDeadLetters loads all entries from a dead-letter log.
func ReadDeadLetters(path string) ([]DeadLetter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter log: %w", err)
	}
	defer file.Close()

	var letters []DeadLetter
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var dl DeadLetter
		if err := json.Unmarshal(line, &dl); err != nil {
			continue
		}
		letters = append(letters, dl)
	}
	return letters, scanner.Err()
}
