// Package trie implements the weighted prefix tree that backs completions.
//
// Words are stored one symbol per node with a float64 weight on terminal
// nodes. Mutations keep the tree free of dead branches: a non-terminal
// leaf never survives an operation. The structure is not safe for
// concurrent mutation; callers sharing a Trie across goroutines must
// serialize writes externally.
package trie

import "sort"

type node struct {
	children map[rune]*node
	terminal bool
	weight   float64
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// sortedSymbols returns the child symbols in ascending order. Traversals
// with observable output walk children in this order so results are
// reproducible across runs.
func (n *node) sortedSymbols() []rune {
	syms := make([]rune, 0, len(n.children))
	for r := range n.children {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Trie is a prefix tree over (word, weight) pairs. The zero value is not
// usable; call New.
type Trie struct {
	root  *node
	words int
	nodes int
}

// New returns an empty Trie holding only the root node.
func New() *Trie {
	return &Trie{root: newNode(), nodes: 1}
}

type pathStep struct {
	n   *node
	sym rune
}

// walk traverses the tree along word. It returns the final node together
// with the full root-to-node path, or nil when the path does not exist.
func (t *Trie) walk(word string) (*node, []pathStep) {
	n := t.root
	path := make([]pathStep, 0, len(word)+1)
	path = append(path, pathStep{n: n})
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return nil, nil
		}
		n = child
		path = append(path, pathStep{n: n, sym: r})
	}
	return n, path
}

// Insert stores word with the given weight, creating nodes for missing
// symbols along the path. Re-inserting an existing word only overwrites
// its weight. The empty word is valid and marks the root terminal.
func (t *Trie) Insert(word string, weight float64) {
	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
			t.nodes++
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
	n.weight = weight
}

// Remove deletes word from the tree and reports whether it was present.
// Nodes left as non-terminal leaves are pruned bottom-up; pruning stops
// at the first ancestor that is terminal or still has other children.
func (t *Trie) Remove(word string) bool {
	n, path := t.walk(word)
	if n == nil || !n.terminal {
		return false
	}
	n.terminal = false
	n.weight = 0
	t.words--

	for i := len(path) - 1; i > 0; i-- {
		child := path[i].n
		if child.terminal || len(child.children) > 0 {
			break
		}
		delete(path[i-1].n.children, path[i].sym)
		t.nodes--
	}
	return true
}

// Contains reports whether word was inserted and not since removed.
func (t *Trie) Contains(word string) bool {
	n, _ := t.walk(word)
	return n != nil && n.terminal
}

// Weight returns the stored weight for word, with ok false when the
// word is not present.
func (t *Trie) Weight(word string) (weight float64, ok bool) {
	n, _ := t.walk(word)
	if n == nil || !n.terminal {
		return 0, false
	}
	return n.weight, true
}

// Stats returns the number of stored words, the height of the tree
// (edges on the longest root-to-leaf path, 0 when empty) and the number
// of live nodes, root included. The counters are maintained; height is
// computed by traversal.
func (t *Trie) Stats() (words, height, nodes int) {
	return t.words, t.height(), t.nodes
}

func (t *Trie) height() int {
	type frame struct {
		n     *node
		depth int
	}
	max := 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		for _, child := range f.n.children {
			stack = append(stack, frame{child, f.depth + 1})
		}
	}
	return max
}

// Entry is one stored word with its weight.
type Entry struct {
	Word   string
	Weight float64
}

// Items returns every stored (word, weight) pair sorted by word. The
// order carries no ranking meaning; it is fixed so persistence output
// is deterministic.
func (t *Trie) Items() []Entry {
	type frame struct {
		n    *node
		word string
	}
	var out []Entry

	// Preorder DFS in sorted child order emits words already in
	// ascending lexical order.
	stack := []frame{{t.root, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.terminal {
			out = append(out, Entry{Word: f.word, Weight: f.n.weight})
		}
		syms := f.n.sortedSymbols()
		for i := len(syms) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.n.children[syms[i]], f.word + string(syms[i])})
		}
	}
	return out
}
