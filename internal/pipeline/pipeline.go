// Package pipeline drives a full extraction run: chapters to quests to
// transcripts, with coverage aggregation and validation sampling along the
// way.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"questscribe/internal/config"
	"questscribe/internal/util"
	"questscribe/pkg/corpus"
	"questscribe/pkg/extract"
	"questscribe/pkg/logger"
	"questscribe/pkg/report"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Pipeline runs the extraction end to end over a loaded corpus.
type Pipeline struct {
	cfg  config.Config
	corp *corpus.Corpus
	ext  *extract.Extractor
}

// NewPipelineParams contains configuration for creating a Pipeline.
type NewPipelineParams struct {
	Config    config.Config
	Corpus    *corpus.Corpus
	Extractor *extract.Extractor
}

// New creates a Pipeline.
func New(params NewPipelineParams) *Pipeline {
	return &Pipeline{
		cfg:  params.Config,
		corp: params.Corpus,
		ext:  params.Extractor,
	}
}

// Run extracts all selected chapters and writes transcripts, the coverage
// report and the validation sample file into the output directory.
//
// The per-chapter loop is strictly sequential: the reservoir sampler and the
// coverage totals see one ordered stream of dialogue lines, which is what
// makes a fixed seed reproduce the exact same sample.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	runID, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("generating run id: %w", err)
	}

	chapters := p.corp.ChaptersByType(p.cfg.QuestType)
	if subset := p.cfg.ChapterSet(); subset != nil {
		var filtered []corpus.Chapter
		for _, ch := range chapters {
			if _, ok := subset[ch.ID]; ok {
				filtered = append(filtered, ch)
			}
		}
		chapters = filtered
	}

	logger.Info("Starting extraction", "run_id", runID, "quest_type", p.cfg.QuestType, "chapters", len(chapters))

	seed := p.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	coverage := report.NewCoverage(runID, p.cfg.OutputDir)
	reservoir := report.NewReservoir(p.cfg.SampleCount, seed)

	writeTranscripts := p.cfg.WriteText && !p.cfg.ValidationOnly
	var combined []string

	for _, ch := range chapters {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		transcript, ok := p.extractChapter(ctx, ch)
		if !ok {
			continue
		}
		content := transcript.Render()

		chapterID := strconv.FormatInt(ch.ID, 10)
		dialogues, missing := 0, 0
		for _, line := range util.NonBlankLines(content) {
			if util.HasMissingMarker(line) {
				missing++
			}
			if util.IsDialogueLine(line) {
				reservoir.Offer(report.SampleRecord{
					ChapterID: chapterID,
					LineIndex: dialogues,
					Text:      line,
				})
				dialogues++
			}
		}
		coverage.AddChapter(chapterID, dialogues, missing)

		if writeTranscripts {
			path := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("Chapter_%d.txt", ch.ID))
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing chapter transcript: %w", err)
			}
			combined = append(combined, content)
		}

		logger.Info("Chapter extracted", "chapter", ch.ID, "quests", len(transcript.Quests), "dialogues", dialogues, "missing_texts", missing)
	}

	if err := coverage.Write(filepath.Join(p.cfg.OutputDir, "coverage_report.json")); err != nil {
		return err
	}
	if err := report.WriteSamples(filepath.Join(p.cfg.OutputDir, "validation_samples.jsonl"), reservoir.Records()); err != nil {
		return err
	}

	if writeTranscripts && p.cfg.MergeAll && len(combined) > 0 {
		path := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("AllChapters_%s.txt", p.cfg.Lang))
		if err := os.WriteFile(path, []byte(strings.Join(combined, "\n\n")), 0o644); err != nil {
			return fmt.Errorf("writing combined transcript: %w", err)
		}
	}

	logger.Info(
		"Extraction complete",
		"run_id", runID,
		"chapters", coverage.Summary.TotalChapters,
		"dialogues", coverage.Summary.TotalDialogues,
		"missing_texts", coverage.Summary.TotalMissingTexts,
		"samples", len(reservoir.Records()),
	)

	return nil
}

// extractChapter extracts every quest of one chapter. A quest whose nested
// artifact is corrupt is reported and skipped; the rest of the chapter is
// unaffected. Returns false when no quest yielded any dialogue.
func (p *Pipeline) extractChapter(ctx context.Context, ch corpus.Chapter) (ChapterTranscript, bool) {
	transcript := ChapterTranscript{
		Chapter: ch,
		Numeral: p.corp.Text.Resolve(ch.NumHash),
		Title:   p.corp.Text.Resolve(ch.TitleHash),
	}

	quests := p.corp.QuestsForChapter(ch.ID)
	logger.Debug("Processing chapter", "chapter", ch.ID, "title", transcript.Title, "quests", len(quests))

	for _, q := range quests {
		lines, method, err := p.ext.ExtractQuest(ctx, q.ID)
		if err != nil {
			logger.Error("Quest extraction failed, skipping", "quest", q.ID, "err", err)
			continue
		}
		if len(lines) == 0 {
			logger.Debug("No dialogue extracted", "quest", q.ID)
			continue
		}

		logger.Debug("Quest extracted", "quest", q.ID, "method", string(method), "lines", len(lines))
		transcript.Quests = append(transcript.Quests, QuestBlock{
			Quest:  q,
			Title:  p.corp.Text.Resolve(q.TitleHash),
			Desc:   p.corp.Text.Resolve(q.DescHash),
			Method: method,
			Lines:  lines,
		})
	}

	if len(transcript.Quests) == 0 {
		return ChapterTranscript{}, false
	}
	return transcript, true
}
