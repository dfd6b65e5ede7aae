// Package report renders a cleanup run as JSON or as a fixed-width text
// document and writes it to a file.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Darnix-a/cleanmypc/internal/clean"
)

// Report is one run's results plus the derived summary.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	RunID     string         `json:"runId"`
	DryRun    bool           `json:"dryRun"`
	Platform  string         `json:"-"`
	Summary   clean.Summary  `json:"summary"`
	Results   []clean.Result `json:"results"`
}

// New builds a report for results, stamped with now and a fresh run id.
func New(results []clean.Result, dryRun bool, platform string, now time.Time) *Report {
	if results == nil {
		results = []clean.Result{}
	}
	return &Report{
		Timestamp: now,
		RunID:     uuid.NewString(),
		DryRun:    dryRun,
		Platform:  platform,
		Summary:   clean.Summarize(results),
		Results:   results,
	}
}

// Writer renders a report.
type Writer interface {
	Write(r *Report) (int, error)
}

// WriterFor picks the format from path: a .json suffix (any case) selects
// JSON, anything else the text format.
func WriterFor(path string, out io.Writer) Writer {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONWriter(out)
	}
	return NewTextWriter(out)
}

// WriteFile renders r in the format chosen by path's suffix and writes it,
// creating the parent directory if needed.
func WriteFile(path string, r *Report) error {
	var buf bytes.Buffer
	if _, err := WriterFor(path, &buf).Write(r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
