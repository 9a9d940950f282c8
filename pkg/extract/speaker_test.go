package extract

import (
	"testing"

	"questscribe/pkg/corpus"
)

func TestSpeakerName(t *testing.T) {
	e := NewExtractor(NewExtractorParams{
		Corpus: &corpus.Corpus{
			Text: corpus.TextMap{"110": "Paimon"},
			Characters: map[int64]corpus.Character{
				1005: {ID: 1005, NameHash: 110},
				1006: {ID: 1006},
			},
		},
		Loader: memLoader{},
	})

	tests := []struct {
		name string
		role corpus.TalkRole
		want string
	}{
		{name: "absent descriptor defaults to narrator", role: corpus.TalkRole{}, want: SpeakerNarrator},
		{name: "narrator kind", role: corpus.TalkRole{Kind: corpus.RoleNarrator}, want: SpeakerNarrator},
		{name: "player kind", role: corpus.TalkRole{Kind: corpus.RolePlayer}, want: SpeakerPlayer},
		{name: "npc with registered character", role: corpus.TalkRole{Kind: corpus.RoleNPC, CharacterID: 1005}, want: "Paimon"},
		{name: "npc with unregistered character", role: corpus.TalkRole{Kind: corpus.RoleNPC, CharacterID: 9999}, want: SpeakerUnknown},
		{name: "npc without display name", role: corpus.TalkRole{Kind: corpus.RoleNPC, CharacterID: 1006}, want: SpeakerUnknown},
		{name: "unrecognized kind", role: corpus.TalkRole{Kind: "TALK_ROLE_GADGET"}, want: SpeakerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := corpus.DialogueNode{ID: 1, Role: tt.role}
			if got := e.speakerName(node); got != tt.want {
				t.Errorf("speakerName = %q, want %q", got, tt.want)
			}
		})
	}
}
