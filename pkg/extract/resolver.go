package extract

import (
	"strconv"

	"questscribe/pkg/corpus"
)

// Resolver maps legacy dialogue identifiers to canonical node identifiers.
//
// Newer corpus generations prepend a single decimal digit (usually 6) to the
// legacy numeric identifier, but the digit is not stable across revisions,
// so all ten prefixes are tried. This is a bounded heuristic, not a proven
// bijection: the corpus offers no authoritative legacy-to-canonical mapping,
// and a colliding prefix match would go undetected. Trial order is fixed
// ascending so results are reproducible across runs.
type Resolver struct {
	nodes map[int64]corpus.DialogueNode
}

// NewResolver creates a Resolver over the corpus dialogue node table.
func NewResolver(c *corpus.Corpus) *Resolver {
	return &Resolver{nodes: c.Nodes}
}

// Resolve returns the canonical node identifier for rawID. A known
// identifier is returned unchanged. Otherwise each decimal digit 0-9 is
// prepended in ascending order and the first candidate present in the node
// table wins. Returns false when no candidate matches.
func (r *Resolver) Resolve(rawID int64) (int64, bool) {
	if _, ok := r.nodes[rawID]; ok {
		return rawID, true
	}

	raw := strconv.FormatInt(rawID, 10)
	for digit := 0; digit <= 9; digit++ {
		candidate, err := strconv.ParseInt(strconv.Itoa(digit)+raw, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := r.nodes[candidate]; ok {
			return candidate, true
		}
	}

	return 0, false
}
