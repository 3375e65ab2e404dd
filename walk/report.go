package walk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Report is the externally consumable artifact of a completed walk:
// the ordered answer mapping plus run metadata.
type Report struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Answers    *Results  `json:"answers"`
}

// NewReport creates a report for a completed walk with a fresh run id.
func NewReport(results *Results, started, finished time.Time) *Report {
	return &Report{
		RunID:      uuid.NewString(),
		StartedAt:  started,
		FinishedAt: finished,
		Answers:    results,
	}
}

// WriteFile writes the report as indented JSON, creating parent
// directories as needed.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
