package extract

import (
	"questscribe/pkg/corpus"
)

// Fixed speaker labels for lines not attributed to a named character.
const (
	SpeakerNarrator = "narrator"
	SpeakerPlayer   = "traveler"
	SpeakerUnknown  = "unknown"
)

// speakerName derives the display name for a dialogue node. It is total:
// every node gets a label.
func (e *Extractor) speakerName(node corpus.DialogueNode) string {
	switch node.Role.Kind {
	case "", corpus.RoleNarrator:
		return SpeakerNarrator
	case corpus.RolePlayer:
		return SpeakerPlayer
	case corpus.RoleNPC:
		if ch, ok := e.corpus.Characters[node.Role.CharacterID]; ok && ch.NameHash != 0 {
			return e.corpus.Text.Resolve(ch.NameHash)
		}
	}
	return SpeakerUnknown
}
