package corpus

import (
	"reflect"
	"testing"

	"github.com/tidwall/gjson"
)

func TestParseDialogueNodes(t *testing.T) {
	doc := gjson.Parse(`[
		{"id": 10, "talkContentTextMapHash": 100, "nextDialogs": [11, 12]},
		{"GFLDJMJKIKE": 11, "talkRole": {"type": "TALK_ROLE_NPC", "id": "1005"}, "talkContentTextMapHash": 101},
		{"talkContentTextMapHash": 102},
		{"id": 12, "nextDialogs": [0, 13]}
	]`)

	nodes := ParseDialogueNodes(doc)

	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}

	if got := nodes[10]; !reflect.DeepEqual(got.Next, []int64{11, 12}) || got.ContentHash != 100 {
		t.Errorf("node 10 = %+v", got)
	}

	aliased := nodes[11]
	if aliased.ID != 11 {
		t.Fatalf("aliased id key not picked up: %+v", aliased)
	}
	if aliased.Role.Kind != RoleNPC || aliased.Role.CharacterID != 1005 {
		t.Errorf("role not parsed from string id: %+v", aliased.Role)
	}

	// Zero successors are dropped.
	if got := nodes[12]; !reflect.DeepEqual(got.Next, []int64{13}) {
		t.Errorf("node 12 next = %v, want [13]", got.Next)
	}
}

func TestQuestChapterRef(t *testing.T) {
	tests := []struct {
		name  string
		quest Quest
		want  int64
	}{
		{name: "explicit chapter field wins", quest: Quest{ID: 1, ChapterID: 7, Series: 9}, want: 7},
		{name: "series fallback", quest: Quest{ID: 2, Series: 9}, want: 9},
		{name: "neither populated", quest: Quest{ID: 3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.quest.ChapterRef(); got != tt.want {
				t.Errorf("ChapterRef() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCorpusAccessors(t *testing.T) {
	c := &Corpus{
		Chapters: []Chapter{
			{ID: 3, QuestType: "AQ"},
			{ID: 1, QuestType: "AQ"},
			{ID: 2, QuestType: "WQ"},
		},
		Quests: []Quest{
			{ID: 20, ChapterID: 1},
			{ID: 10, Series: 1},
			{ID: 30, ChapterID: 2},
		},
		Talks: []TalkEntry{
			{ID: 1, QuestID: 10, InitDialog: 100},
			{ID: 2, QuestID: 20, InitDialog: 200},
			{ID: 3, QuestID: 10, InitDialog: 300},
		},
	}

	chapters := c.ChaptersByType("AQ")
	if len(chapters) != 2 || chapters[0].ID != 1 || chapters[1].ID != 3 {
		t.Errorf("ChaptersByType = %+v, want chapters 1 and 3 ascending", chapters)
	}

	quests := c.QuestsForChapter(1)
	if len(quests) != 2 || quests[0].ID != 10 || quests[1].ID != 20 {
		t.Errorf("QuestsForChapter(1) = %+v, want quests 10 and 20 ascending", quests)
	}

	talks := c.TalksForQuest(10)
	if len(talks) != 2 || talks[0].InitDialog != 100 || talks[1].InitDialog != 300 {
		t.Errorf("TalksForQuest(10) = %+v, want table order preserved", talks)
	}
}
