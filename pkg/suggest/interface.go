// Package suggest wraps the core trie with the completion surface the
// CLI and IPC layers consume, plus an optional cached fast path for
// repeated prefix queries.
package suggest

import "github.com/kelsivan/trieserve/pkg/trie"

// ICompleter defines the operations the command and server layers need
// from a completion engine.
type ICompleter interface {
	// AddWord inserts or updates a word with its weight.
	AddWord(word string, weight float64)

	// Remove deletes a word, reporting whether it was present.
	Remove(word string) bool

	// Contains reports exact membership.
	Contains(word string) bool

	// Complete returns up to limit suggestions for prefix, ranked by
	// descending weight then ascending word.
	Complete(prefix string, limit int) []Suggestion

	// Stats returns word count, tree height and node count.
	Stats() (words, height, nodes int)

	// Items lists every stored (word, weight) pair sorted by word.
	Items() []trie.Entry

	// Reset discards all stored words.
	Reset()
}
