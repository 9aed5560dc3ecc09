package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ReadLines loads a newline-delimited id file, skipping blank lines.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// WriteLines writes ids to a newline-delimited file, replacing any previous
// contents.
func WriteLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return w.Flush()
}

// Dedupe returns the lines with duplicates removed, first occurrence wins.
func Dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}

// ProgressLog is an append-only list of processed match ids, used to resume
// an interrupted extraction without refetching.
type ProgressLog struct {
	mu   sync.Mutex
	file *os.File
	seen map[string]struct{}
}

// OpenProgressLog opens (or creates) a progress log and loads the ids it
// already holds.
func OpenProgressLog(path string) (*ProgressLog, error) {
	seen := make(map[string]struct{})
	lines, err := ReadLines(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	for _, l := range lines {
		seen[l] = struct{}{}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open progress log: %w", err)
	}
	return &ProgressLog{file: file, seen: seen}, nil
}

// Seen reports whether an id was already processed.
func (p *ProgressLog) Seen(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.seen[id]
	return ok
}

// Mark records an id as processed.
func (p *ProgressLog) Mark(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.seen[id]; ok {
		return nil
	}
	if _, err := p.file.WriteString(id + "\n"); err != nil {
		return fmt.Errorf("write progress log: %w", err)
	}
	p.seen[id] = struct{}{}
	return nil
}

// Len returns the number of processed ids.
func (p *ProgressLog) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

// Close closes the log.
func (p *ProgressLog) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.file.Close()
}
