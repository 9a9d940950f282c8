package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"questscribe/pkg/loader"
	"questscribe/pkg/logger"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

// Corpus holds the loaded corpus tables and the text table for one language
// variant. All lookups are in-memory; nothing here touches the filesystem
// after Load returns.
type Corpus struct {
	Text       TextMap
	Chapters   []Chapter
	Quests     []Quest
	Talks      []TalkEntry
	Nodes      map[int64]DialogueNode
	Characters map[int64]Character
}

// LoadParams contains configuration for loading a corpus from disk.
type LoadParams struct {
	// DataDir is the root of the extracted corpus (Excel/ and TextMap/).
	DataDir string
	// Lang selects the text table variant, e.g. "CHS" or "EN".
	Lang string
	// Loader reads the table files.
	Loader loader.FileLoader
}

// Load reads the text table and the five corpus tables. A table that fails
// to load or parse is reported and degrades to empty: downstream lookups
// miss and surface as missing-text or unresolved-identifier cases instead of
// aborting the run.
func Load(ctx context.Context, params LoadParams) *Corpus {
	excelDir := filepath.Join(params.DataDir, "Excel")
	textMapPath := filepath.Join(params.DataDir, "TextMap", fmt.Sprintf("TextMap%s.json", params.Lang))

	c := &Corpus{
		Text:       make(TextMap),
		Nodes:      make(map[int64]DialogueNode),
		Characters: make(map[int64]Character),
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if doc, ok := loadTable(egCtx, params.Loader, textMapPath); ok {
			c.Text = ParseTextMap(doc)
		}
		return nil
	})
	eg.Go(func() error {
		if doc, ok := loadTable(egCtx, params.Loader, filepath.Join(excelDir, "ChapterExcelConfigData.json")); ok {
			c.Chapters = ParseChapters(doc)
		}
		return nil
	})
	eg.Go(func() error {
		if doc, ok := loadTable(egCtx, params.Loader, filepath.Join(excelDir, "MainQuestExcelConfigData.json")); ok {
			c.Quests = ParseQuests(doc)
		}
		return nil
	})
	eg.Go(func() error {
		if doc, ok := loadTable(egCtx, params.Loader, filepath.Join(excelDir, "TalkExcelConfigData.json")); ok {
			c.Talks = ParseTalks(doc)
		}
		return nil
	})
	eg.Go(func() error {
		if doc, ok := loadTable(egCtx, params.Loader, filepath.Join(excelDir, "DialogExcelConfigData.json")); ok {
			c.Nodes = ParseDialogueNodes(doc)
		}
		return nil
	})
	eg.Go(func() error {
		if doc, ok := loadTable(egCtx, params.Loader, filepath.Join(excelDir, "NpcExcelConfigData.json")); ok {
			c.Characters = ParseCharacters(doc)
		}
		return nil
	})

	// Workers never return errors; failed tables stay empty.
	_ = eg.Wait()

	logger.Info(
		"Corpus loaded",
		"texts", len(c.Text),
		"chapters", len(c.Chapters),
		"quests", len(c.Quests),
		"talks", len(c.Talks),
		"nodes", len(c.Nodes),
		"characters", len(c.Characters),
	)

	return c
}

func loadTable(ctx context.Context, fl loader.FileLoader, path string) (gjson.Result, bool) {
	data, err := fl.ReadFile(ctx, path)
	if err != nil {
		logger.Error("Could not read corpus table, degrading to empty", "path", path, "err", err)
		return gjson.Result{}, false
	}
	doc, err := loader.ParseJSON(data)
	if err != nil {
		logger.Error("Could not parse corpus table, degrading to empty", "path", path, "err", err)
		return gjson.Result{}, false
	}
	return doc, true
}

// ChaptersByType returns the chapters carrying the given quest-type tag,
// sorted by identifier ascending.
func (c *Corpus) ChaptersByType(questType string) []Chapter {
	var chapters []Chapter
	for _, ch := range c.Chapters {
		if ch.QuestType == questType {
			chapters = append(chapters, ch)
		}
	}
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].ID < chapters[j].ID })
	return chapters
}

// QuestsForChapter returns the quests belonging to a chapter, sorted by
// identifier ascending.
func (c *Corpus) QuestsForChapter(chapterID int64) []Quest {
	var quests []Quest
	for _, q := range c.Quests {
		if q.ChapterRef() == chapterID {
			quests = append(quests, q)
		}
	}
	sort.Slice(quests, func(i, j int) bool { return quests[i].ID < quests[j].ID })
	return quests
}

// TalksForQuest returns the quest's talk entries in table order.
func (c *Corpus) TalksForQuest(questID int64) []TalkEntry {
	var talks []TalkEntry
	for _, t := range c.Talks {
		if t.QuestID == questID {
			talks = append(talks, t)
		}
	}
	return talks
}

// Node looks up a dialogue node by canonical identifier.
func (c *Corpus) Node(id int64) (DialogueNode, bool) {
	node, ok := c.Nodes[id]
	return node, ok
}
