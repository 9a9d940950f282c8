package corpus

import (
	"github.com/tidwall/gjson"
)

// dialogIDAlias is the obfuscated key some data generations use in place of
// "id" on dialogue node records.
const dialogIDAlias = "GFLDJMJKIKE"

// Chapter groups a set of quests under one story arc.
type Chapter struct {
	ID        int64
	QuestType string
	NumHash   int64
	TitleHash int64
}

// Quest is a single main quest. Its owning chapter may be recorded in either
// the explicit chapter field or the series field, depending on the data
// generation.
type Quest struct {
	ID        int64
	ChapterID int64
	Series    int64
	TitleHash int64
	DescHash  int64
}

// ChapterRef returns the chapter identifier this quest belongs to. The
// explicit chapter field takes precedence over the series grouping.
func (q Quest) ChapterRef() int64 {
	if q.ChapterID != 0 {
		return q.ChapterID
	}
	return q.Series
}

// TalkEntry links a quest to the entry dialogue node of one conversation.
// InitDialog is a legacy identifier and may need prefix resolution before it
// matches a node in the dialogue table.
type TalkEntry struct {
	ID         int64
	QuestID    int64
	InitDialog int64
}

// RoleKind tags who delivers a dialogue line.
type RoleKind string

const (
	RoleNPC      RoleKind = "TALK_ROLE_NPC"
	RolePlayer   RoleKind = "TALK_ROLE_PLAYER"
	RoleNarrator RoleKind = "TALK_ROLE_NARRATOR"
)

// TalkRole describes the speaker of a dialogue node. An empty Kind means the
// record carried no role descriptor.
type TalkRole struct {
	Kind        RoleKind
	CharacterID int64
}

// DialogueNode is one node of the branching dialogue graph. Next holds
// successor node identifiers in stored order; the graph may branch and may
// contain cycles.
type DialogueNode struct {
	ID          int64
	Role        TalkRole
	ContentHash int64
	Next        []int64
}

// Character is an NPC record carrying the hash of its display name.
type Character struct {
	ID       int64
	NameHash int64
}

// ParseChapters parses the chapter table.
func ParseChapters(doc gjson.Result) []Chapter {
	var chapters []Chapter
	doc.ForEach(func(_, row gjson.Result) bool {
		id := row.Get("id").Int()
		if id == 0 {
			return true
		}
		chapters = append(chapters, Chapter{
			ID:        id,
			QuestType: row.Get("questType").String(),
			NumHash:   row.Get("chapterNumTextMapHash").Int(),
			TitleHash: row.Get("chapterTitleTextMapHash").Int(),
		})
		return true
	})
	return chapters
}

// ParseQuests parses the main quest table.
func ParseQuests(doc gjson.Result) []Quest {
	var quests []Quest
	doc.ForEach(func(_, row gjson.Result) bool {
		id := row.Get("id").Int()
		if id == 0 {
			return true
		}
		quests = append(quests, Quest{
			ID:        id,
			ChapterID: row.Get("chapterId").Int(),
			Series:    row.Get("series").Int(),
			TitleHash: row.Get("titleTextMapHash").Int(),
			DescHash:  row.Get("descTextMapHash").Int(),
		})
		return true
	})
	return quests
}

// ParseTalks parses the talk table. Table order is preserved; it determines
// the concatenation order of conversations within a quest.
func ParseTalks(doc gjson.Result) []TalkEntry {
	var talks []TalkEntry
	doc.ForEach(func(_, row gjson.Result) bool {
		id := row.Get("id").Int()
		if id == 0 {
			return true
		}
		talks = append(talks, TalkEntry{
			ID:         id,
			QuestID:    row.Get("questId").Int(),
			InitDialog: row.Get("initDialog").Int(),
		})
		return true
	})
	return talks
}

// ParseDialogueNodes parses the dialogue node table into an identifier-keyed
// map. Node identifiers live under the obfuscated alias key in newer data
// generations, with "id" as the fallback.
func ParseDialogueNodes(doc gjson.Result) map[int64]DialogueNode {
	nodes := make(map[int64]DialogueNode)
	doc.ForEach(func(_, row gjson.Result) bool {
		id := row.Get(dialogIDAlias).Int()
		if id == 0 {
			id = row.Get("id").Int()
		}
		if id == 0 {
			return true
		}

		node := DialogueNode{
			ID:          id,
			ContentHash: row.Get("talkContentTextMapHash").Int(),
		}
		if role := row.Get("talkRole"); role.Exists() {
			node.Role = TalkRole{
				Kind:        RoleKind(role.Get("type").String()),
				CharacterID: role.Get("id").Int(),
			}
		}
		row.Get("nextDialogs").ForEach(func(_, next gjson.Result) bool {
			if nextID := next.Int(); nextID != 0 {
				node.Next = append(node.Next, nextID)
			}
			return true
		})

		nodes[id] = node
		return true
	})
	return nodes
}

// ParseCharacters parses the NPC table into an identifier-keyed map.
func ParseCharacters(doc gjson.Result) map[int64]Character {
	characters := make(map[int64]Character)
	doc.ForEach(func(_, row gjson.Result) bool {
		id := row.Get("id").Int()
		if id == 0 {
			return true
		}
		characters[id] = Character{
			ID:       id,
			NameHash: row.Get("nameTextMapHash").Int(),
		}
		return true
	})
	return characters
}
