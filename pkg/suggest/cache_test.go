package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCachePutGet(t *testing.T) {
	t.Parallel()

	rc := newResultCache(8)
	want := []Suggestion{{Word: "car", Weight: 5}}
	rc.put("ca", 2, want)

	got, ok := rc.get("ca", 2)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = rc.get("ca", 3)
	assert.False(t, ok, "limit is part of the cached identity")

	_, ok = rc.get("c", 2)
	assert.False(t, ok)
}

func TestResultCacheIgnoresEmptyPrefix(t *testing.T) {
	t.Parallel()

	rc := newResultCache(8)
	rc.put("", 2, []Suggestion{{Word: "x", Weight: 1}})
	_, ok := rc.get("", 2)
	assert.False(t, ok)
	assert.Equal(t, 0, rc.stats()["cacheEntries"])
}

func TestResultCacheInvalidatePrefixesOfWord(t *testing.T) {
	t.Parallel()

	rc := newResultCache(16)
	rc.put("c", 5, nil)
	rc.put("ca", 5, nil)
	rc.put("cart", 5, nil)
	rc.put("dog", 5, nil)

	// mutation of "cart" covers cached prefixes "c", "ca" and "cart",
	// but not "dog"
	rc.invalidate("cart")

	for _, p := range []string{"c", "ca", "cart"} {
		_, ok := rc.get(p, 5)
		assert.False(t, ok, "prefix %q must be dropped", p)
	}
	_, ok := rc.get("dog", 5)
	assert.True(t, ok)
	assert.Equal(t, 1, rc.stats()["cacheEntries"])
}

func TestResultCacheResetWhenFull(t *testing.T) {
	t.Parallel()

	rc := newResultCache(2)
	rc.put("aa", 1, nil)
	rc.put("bb", 1, nil)
	rc.put("cc", 1, nil)

	assert.Equal(t, 1, rc.stats()["cacheEntries"], "overflow resets before admitting")
	_, ok := rc.get("cc", 1)
	assert.True(t, ok)
}

func TestResultCacheOverwriteKeepsCount(t *testing.T) {
	t.Parallel()

	rc := newResultCache(8)
	rc.put("ab", 1, nil)
	rc.put("ab", 2, nil)
	assert.Equal(t, 1, rc.stats()["cacheEntries"])

	_, ok := rc.get("ab", 2)
	assert.True(t, ok)
}
