// Package report aggregates extraction coverage and draws a reproducible
// random sample of dialogue lines for spot-checking.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ChapterCoverage records per-chapter extraction counts.
type ChapterCoverage struct {
	ID           string `json:"id"`
	Dialogues    int    `json:"dialogues"`
	MissingTexts int    `json:"missing_texts"`
}

// Totals summarizes counts across all extracted chapters.
type Totals struct {
	TotalChapters     int `json:"total_chapters"`
	TotalDialogues    int `json:"total_dialogues"`
	TotalMissingTexts int `json:"total_missing_texts"`
}

// Coverage is the structured validation summary for one extraction run.
type Coverage struct {
	GeneratedAt string            `json:"generated_at"`
	RunID       string            `json:"run_id"`
	OutputDir   string            `json:"output_dir"`
	Summary     Totals            `json:"summary"`
	Chapters    []ChapterCoverage `json:"chapters"`
}

// NewCoverage creates a Coverage stamped with the current UTC time.
func NewCoverage(runID, outputDir string) *Coverage {
	return &Coverage{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		RunID:       runID,
		OutputDir:   outputDir,
		Chapters:    []ChapterCoverage{},
	}
}

// AddChapter records one chapter's counts and folds them into the summary
// totals. Only chapters with non-empty output should be added.
func (c *Coverage) AddChapter(chapterID string, dialogues, missingTexts int) {
	c.Chapters = append(c.Chapters, ChapterCoverage{
		ID:           chapterID,
		Dialogues:    dialogues,
		MissingTexts: missingTexts,
	})
	c.Summary.TotalChapters++
	c.Summary.TotalDialogues += dialogues
	c.Summary.TotalMissingTexts += missingTexts
}

// Write writes the coverage report as indented JSON.
func (c *Coverage) Write(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling coverage report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing coverage report: %w", err)
	}
	return nil
}
