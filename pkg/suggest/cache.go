package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// resultCache memoizes completion result lists per prefix. Keys live in
// a patricia trie so that a mutation of word w can drop exactly the
// cached entries whose prefix covers w, via VisitPrefixes. Like the
// Completer it serves, the cache is single-writer and carries no lock.
type resultCache struct {
	results    *patricia.Trie
	maxEntries int
	entries    int
	hits       int
	misses     int
}

type cachedResult struct {
	limit       int
	suggestions []Suggestion
}

func newResultCache(maxEntries int) *resultCache {
	return &resultCache{
		results:    patricia.NewTrie(),
		maxEntries: maxEntries,
	}
}

// get returns the cached result for prefix when one exists for the same
// limit.
func (rc *resultCache) get(prefix string, limit int) ([]Suggestion, bool) {
	if prefix == "" {
		return nil, false
	}
	item := rc.results.Get(patricia.Prefix(prefix))
	if item == nil {
		rc.misses++
		return nil, false
	}
	cached := item.(cachedResult)
	if cached.limit != limit {
		rc.misses++
		return nil, false
	}
	rc.hits++
	return cached.suggestions, true
}

func (rc *resultCache) put(prefix string, limit int, suggestions []Suggestion) {
	if prefix == "" {
		return
	}
	if rc.entries >= rc.maxEntries {
		// wholesale reset keeps the bookkeeping trivial; the cache
		// refills from live queries
		log.Debugf("result cache full (%d entries), resetting", rc.entries)
		rc.reset()
	}
	if rc.results.Insert(patricia.Prefix(prefix), cachedResult{limit: limit, suggestions: suggestions}) {
		rc.entries++
	} else {
		rc.results.Set(patricia.Prefix(prefix), cachedResult{limit: limit, suggestions: suggestions})
	}
}

// invalidate drops every cached prefix of word; those result lists may
// have contained (or now should contain) the mutated word.
func (rc *resultCache) invalidate(word string) {
	if word == "" || rc.entries == 0 {
		return
	}
	var stale []patricia.Prefix
	_ = rc.results.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, p)
		return nil
	})
	for _, p := range stale {
		if rc.results.Delete(p) {
			rc.entries--
		}
	}
}

func (rc *resultCache) reset() {
	rc.results = patricia.NewTrie()
	rc.entries = 0
}

func (rc *resultCache) stats() map[string]int {
	return map[string]int{
		"cacheEntries": rc.entries,
		"cacheHits":    rc.hits,
		"cacheMisses":  rc.misses,
		"cacheMax":     rc.maxEntries,
	}
}
