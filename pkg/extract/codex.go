package extract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"questscribe/pkg/corpus"
	"questscribe/pkg/loader"

	"github.com/tidwall/gjson"
)

// Field keys in nested-structure artifacts are obfuscated by the data
// exporter. These aliases track the generation this extractor supports.
const (
	codexKeySections  = "GFLHMKOOHHA"
	codexKeyNodes     = "JKNIDKEDDMB"
	codexKeySpeaker   = "LKJMACGGCNI"
	codexKeyEntries   = "IINLCABCIDE"
	codexKeyEntryID   = "GEJLBGLBCOO"
	codexKeyEntryText = "GLMJHDNIGID"
	codexKeyTextHash  = "MANCOJCEIMH"
)

// extractNested extracts dialogue from the quest's nested-structure
// artifact. The second return value distinguishes "no newer-format data"
// (false) from "extracted lines" (true): an absent artifact, or one that
// yields zero lines, reports false so the caller falls back to the graph
// path. An artifact that exists but cannot be parsed returns an error.
//
// Document order is preserved: sections, then nodes, then entries. The
// node-level speaker hash is resolved once and reused for every entry under
// that node. Entries with a zero text hash are skipped entirely; they
// contribute no line and no missing-text record.
func (e *Extractor) extractNested(ctx context.Context, questID int64) ([]Line, bool, error) {
	path := filepath.Join(e.codexDir, strconv.FormatInt(questID, 10)+".json")

	data, err := e.loader.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading nested artifact for quest %d: %w", questID, err)
	}

	doc, err := loader.ParseJSON(data)
	if err != nil {
		return nil, false, fmt.Errorf("parsing nested artifact for quest %d: %w", questID, err)
	}

	var lines []Line
	doc.Get(codexKeySections).ForEach(func(_, section gjson.Result) bool {
		section.Get(codexKeyNodes).ForEach(func(_, node gjson.Result) bool {
			speaker := SpeakerNarrator
			if hash := node.Get(codexKeySpeaker + "." + codexKeyTextHash).Int(); hash != 0 {
				speaker = e.corpus.Text.Resolve(hash)
			}
			if speaker == "" || corpus.IsMissing(speaker) {
				speaker = SpeakerNarrator
			}

			node.Get(codexKeyEntries).ForEach(func(_, entry gjson.Result) bool {
				textHash := entry.Get(codexKeyEntryText + "." + codexKeyTextHash).Int()
				if textHash == 0 {
					return true
				}
				lines = append(lines, Line{
					Speaker: speaker,
					Text:    e.corpus.Text.Resolve(textHash),
					NodeID:  entry.Get(codexKeyEntryID).Int(),
				})
				return true
			})
			return true
		})
		return true
	})

	if len(lines) == 0 {
		return nil, false, nil
	}
	return lines, true, nil
}
