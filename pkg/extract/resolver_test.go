package extract

import (
	"testing"

	"questscribe/pkg/corpus"
)

func newTestResolver(ids ...int64) *Resolver {
	nodes := make(map[int64]corpus.DialogueNode, len(ids))
	for _, id := range ids {
		nodes[id] = corpus.DialogueNode{ID: id}
	}
	return NewResolver(&corpus.Corpus{Nodes: nodes})
}

func TestResolverResolve(t *testing.T) {
	tests := []struct {
		name   string
		known  []int64
		rawID  int64
		want   int64
		wantOK bool
	}{
		{
			name:   "known identifier returned unchanged",
			known:  []int64{55, 655},
			rawID:  55,
			want:   55,
			wantOK: true,
		},
		{
			name:   "legacy identifier resolved via prefix",
			known:  []int64{655},
			rawID:  55,
			want:   655,
			wantOK: true,
		},
		{
			name:   "ascending trial order, first match wins",
			known:  []int64{155, 655},
			rawID:  55,
			want:   155,
			wantOK: true,
		},
		{
			name:  "no candidate matches",
			known: []int64{700},
			rawID: 55,
		},
		{
			name:  "empty node table",
			rawID: 55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.known...)
			got, ok := r.Resolve(tt.rawID)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%d) ok = %v, want %v", tt.rawID, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%d) = %d, want %d", tt.rawID, got, tt.want)
			}
		})
	}
}

func TestResolverIsDeterministic(t *testing.T) {
	r := newTestResolver(155, 355, 655, 955)
	first, _ := r.Resolve(55)
	for i := 0; i < 10; i++ {
		got, _ := r.Resolve(55)
		if got != first {
			t.Fatalf("Resolve(55) changed between calls: %d then %d", first, got)
		}
	}
}
