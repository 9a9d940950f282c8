package pipeline

import (
	"fmt"
	"strings"

	"questscribe/internal/util"
	"questscribe/pkg/corpus"
	"questscribe/pkg/extract"
)

const (
	bannerRule  = "============================================================"
	sectionRule = "────────────────────────────────────────────────────────────"
)

// QuestBlock is the extracted content of one quest within a chapter.
type QuestBlock struct {
	Quest  corpus.Quest
	Title  string
	Desc   string
	Method extract.Method
	Lines  []extract.Line
}

// ChapterTranscript is the extracted content of one chapter, ready for
// rendering. Quests holds only quests that yielded at least one line.
type ChapterTranscript struct {
	Chapter corpus.Chapter
	Numeral string
	Title   string
	Quests  []QuestBlock
}

// Render formats the chapter as a UTF-8 text document: a banner with the
// chapter numeral, title and identifier, then one block per quest with a
// header and one speaker/text line per dialogue line.
func (t ChapterTranscript) Render() string {
	var b strings.Builder

	b.WriteString(bannerRule + "\n")
	b.WriteString(t.Numeral + "\n")
	b.WriteString(t.Title + "\n")
	fmt.Fprintf(&b, "Chapter ID: %d\n", t.Chapter.ID)
	b.WriteString(bannerRule + "\n\n")

	for _, q := range t.Quests {
		b.WriteString(sectionRule + "\n")
		fmt.Fprintf(&b, "[Quest] %s (ID: %d)\n", q.Title, q.Quest.ID)
		if q.Desc != "" {
			fmt.Fprintf(&b, "Description: %s\n", q.Desc)
		}
		b.WriteString(sectionRule + "\n\n")

		for _, line := range q.Lines {
			b.WriteString(line.Speaker + util.SpeakerSeparator + line.Text + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
