package trie

import (
	"container/heap"
	"sort"
)

type candidate struct {
	word   string
	weight float64
}

// beats reports whether c outranks other: higher weight first, ties
// broken by ascending word. The same ordering is used for admission
// into the bounded candidate set and for the final sort, so the word
// kept on a tie is always the word the output would prefer.
func (c candidate) beats(other candidate) bool {
	if c.weight != other.weight {
		return c.weight > other.weight
	}
	return c.word < other.word
}

// candidateHeap is a min-heap with the worst candidate at the root.
type candidateHeap []candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[j].beats(h[i]) }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// Complete returns up to k stored words starting with prefix, ordered by
// descending weight and then ascending word. A missing prefix or a
// non-positive k yields no results. Traversal uses an explicit stack, so
// word length only bounds memory, not call depth.
//
// Cost is O(nodes under prefix + matches*log k).
func (t *Trie) Complete(prefix string, k int) []string {
	if k <= 0 {
		return nil
	}
	start, _ := t.walk(prefix)
	if start == nil {
		return nil
	}

	type frame struct {
		n    *node
		word string
	}
	// k only bounds the result and may be huge; the heap never grows
	// past the number of matches, so cap the allocation hint.
	hint := k
	if hint > 64 {
		hint = 64
	}
	cands := make(candidateHeap, 0, hint)
	stack := []frame{{start, prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.terminal {
			c := candidate{word: f.word, weight: f.n.weight}
			if len(cands) < k {
				heap.Push(&cands, c)
			} else if c.beats(cands[0]) {
				cands[0] = c
				heap.Fix(&cands, 0)
			}
		}
		syms := f.n.sortedSymbols()
		for i := len(syms) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.n.children[syms[i]], f.word + string(syms[i])})
		}
	}

	sort.Slice(cands, func(i, j int) bool { return cands[i].beats(cands[j]) })
	words := make([]string, len(cands))
	for i, c := range cands {
		words[i] = c.word
	}
	return words
}
