// Package extract turns corpus tables into ordered dialogue transcripts.
//
// Each quest is served by exactly one of two extraction paths: the
// nested-structure artifact of the newer data generation, or a depth-first
// walk of the legacy dialogue node graph. Data-quality problems (missing
// text, unresolvable identifiers, absent artifacts) degrade silently; only a
// corrupt artifact surfaces as an error, and it is scoped to its quest.
package extract

import (
	"context"

	"questscribe/pkg/corpus"
	"questscribe/pkg/loader"
)

// Method identifies which extraction path produced a quest's lines.
type Method string

const (
	MethodNested Method = "codex"
	MethodGraph  Method = "dialogue-graph"
	MethodNone   Method = "none"
)

// Line is one spoken line of a transcript. Lines are immutable once
// produced; their order is extraction order, not identifier order.
type Line struct {
	Speaker string
	Text    string
	NodeID  int64
}

// Extractor extracts quest dialogue from a loaded corpus.
type Extractor struct {
	corpus   *corpus.Corpus
	resolver *Resolver
	loader   loader.FileLoader
	codexDir string
}

// NewExtractorParams contains configuration for creating an Extractor.
type NewExtractorParams struct {
	Corpus *corpus.Corpus
	Loader loader.FileLoader
	// CodexDir holds the per-quest nested-structure artifacts
	// (<questID>.json files).
	CodexDir string
}

// NewExtractor creates an Extractor over the given corpus.
func NewExtractor(params NewExtractorParams) *Extractor {
	return &Extractor{
		corpus:   params.Corpus,
		resolver: NewResolver(params.Corpus),
		loader:   params.Loader,
		codexDir: params.CodexDir,
	}
}

// ExtractQuest extracts the dialogue lines of one quest. The nested path is
// attempted first; when no artifact exists (or it yields nothing) the legacy
// graph path runs instead, concatenating the traversals of the quest's talk
// entries in table order. A quest never mixes lines from both paths.
//
// A quest for which neither path yields lines returns MethodNone and no
// error. An unparseable artifact returns an error for this quest only.
func (e *Extractor) ExtractQuest(ctx context.Context, questID int64) ([]Line, Method, error) {
	lines, ok, err := e.extractNested(ctx, questID)
	if err != nil {
		return nil, MethodNested, err
	}
	if ok {
		return lines, MethodNested, nil
	}

	var out []Line
	for _, talk := range e.corpus.TalksForQuest(questID) {
		if talk.InitDialog == 0 {
			continue
		}
		out = append(out, e.Traverse(talk.InitDialog)...)
	}
	if len(out) == 0 {
		return nil, MethodNone, nil
	}
	return out, MethodGraph, nil
}
