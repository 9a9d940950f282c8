package extract

// Traverse walks the dialogue graph depth-first from rootID and returns the
// lines in pre-order. Every identifier, the root included, passes through
// the Resolver before the visited check, so legacy successor references
// resolve the same way entry identifiers do.
//
// Malformed input never fails: an unresolvable identifier or an absent node
// simply terminates that branch. The visited set makes back-edges and
// diamond convergence safe; a node reachable via two paths appears once, at
// its first-discovered position.
func (e *Extractor) Traverse(rootID int64) []Line {
	var lines []Line
	visited := make(map[int64]struct{})
	stack := []int64{rootID}

	for len(stack) > 0 {
		raw := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id, ok := e.resolver.Resolve(raw)
		if !ok {
			continue
		}
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}

		node, ok := e.corpus.Node(id)
		if !ok {
			continue
		}

		if text := e.corpus.Text.Resolve(node.ContentHash); text != "" {
			lines = append(lines, Line{
				Speaker: e.speakerName(node),
				Text:    text,
				NodeID:  id,
			})
		}

		// Successors pushed in reverse so they pop in stored order.
		for i := len(node.Next) - 1; i >= 0; i-- {
			stack = append(stack, node.Next[i])
		}
	}

	return lines
}
