package suggest

import (
	"github.com/charmbracelet/log"

	"github.com/kelsivan/trieserve/pkg/trie"
)

// Suggestion is one ranked completion result.
type Suggestion struct {
	Word   string
	Weight float64
}

// Completer answers ranked prefix completions over an in-memory trie.
// It is single-writer: callers sharing one Completer across goroutines
// must serialize mutating calls externally.
type Completer struct {
	index *trie.Trie
	cache *resultCache
}

// NewCompleter returns a Completer without a result cache.
func NewCompleter() *Completer {
	return &Completer{index: trie.New()}
}

// NewCachedCompleter returns a Completer that memoizes completion
// results per prefix, holding at most maxEntries cached prefixes.
func NewCachedCompleter(maxEntries int) *Completer {
	return &Completer{
		index: trie.New(),
		cache: newResultCache(maxEntries),
	}
}

// AddWord inserts or updates a word. Cached results for every prefix of
// the word are stale afterwards and get dropped.
func (c *Completer) AddWord(word string, weight float64) {
	c.index.Insert(word, weight)
	if c.cache != nil {
		c.cache.invalidate(word)
	}
}

// Remove deletes a word, reporting whether it was present.
func (c *Completer) Remove(word string) bool {
	found := c.index.Remove(word)
	if found && c.cache != nil {
		c.cache.invalidate(word)
	}
	return found
}

// Contains reports exact membership.
func (c *Completer) Contains(word string) bool {
	return c.index.Contains(word)
}

// Complete returns up to limit suggestions for prefix, best first.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if limit <= 0 {
		return nil
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(prefix, limit); ok {
			log.Debugf("cache hit for prefix %q", prefix)
			return cached
		}
	}

	words := c.index.Complete(prefix, limit)
	if len(words) == 0 {
		return nil
	}
	suggestions := make([]Suggestion, 0, len(words))
	for _, w := range words {
		weight, ok := c.index.Weight(w)
		if !ok {
			log.Errorf("completion %q vanished from index", w)
			continue
		}
		suggestions = append(suggestions, Suggestion{Word: w, Weight: weight})
	}

	if c.cache != nil {
		c.cache.put(prefix, limit, suggestions)
	}
	return suggestions
}

// Stats returns word count, tree height and node count.
func (c *Completer) Stats() (words, height, nodes int) {
	return c.index.Stats()
}

// Items lists every stored (word, weight) pair sorted by word.
func (c *Completer) Items() []trie.Entry {
	return c.index.Items()
}

// Reset discards all stored words and any cached results.
func (c *Completer) Reset() {
	c.index = trie.New()
	if c.cache != nil {
		c.cache.reset()
	}
}

// CacheStats exposes cache hit counters, nil when caching is off.
func (c *Completer) CacheStats() map[string]int {
	if c.cache == nil {
		return nil
	}
	return c.cache.stats()
}
