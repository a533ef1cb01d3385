package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsivan/trieserve/pkg/trie"
)

func TestCompleterRanking(t *testing.T) {
	t.Parallel()

	c := NewCompleter()
	c.AddWord("cat", 5)
	c.AddWord("car", 5)
	c.AddWord("cart", 3)

	got := c.Complete("ca", 2)
	assert.Equal(t, []Suggestion{
		{Word: "car", Weight: 5},
		{Word: "cat", Weight: 5},
	}, got)

	assert.Nil(t, c.Complete("ca", 0))
	assert.Nil(t, c.Complete("z", 5))
}

func TestCompleterMutations(t *testing.T) {
	t.Parallel()

	c := NewCompleter()
	c.AddWord("go", 1)
	c.AddWord("golang", 2)

	assert.True(t, c.Contains("go"))
	assert.True(t, c.Remove("go"))
	assert.False(t, c.Remove("go"))
	assert.False(t, c.Contains("go"))

	words, height, nodes := c.Stats()
	assert.Equal(t, 1, words)
	assert.Equal(t, 6, height)
	assert.Equal(t, 7, nodes)
}

func TestCompleterItems(t *testing.T) {
	t.Parallel()

	c := NewCompleter()
	c.AddWord("pear", 1)
	c.AddWord("apple", 2)

	assert.Equal(t, []trie.Entry{
		{Word: "apple", Weight: 2},
		{Word: "pear", Weight: 1},
	}, c.Items())
}

func TestCompleterReset(t *testing.T) {
	t.Parallel()

	c := NewCachedCompleter(16)
	c.AddWord("one", 1)
	require.NotEmpty(t, c.Complete("o", 5))

	c.Reset()
	words, _, nodes := c.Stats()
	assert.Equal(t, 0, words)
	assert.Equal(t, 1, nodes)
	assert.Empty(t, c.Complete("o", 5))
}

func TestCachedCompleterServesAndInvalidates(t *testing.T) {
	t.Parallel()

	c := NewCachedCompleter(64)
	c.AddWord("sun", 3)
	c.AddWord("sunny", 8)

	first := c.Complete("sun", 5)
	require.Equal(t, []Suggestion{{Word: "sunny", Weight: 8}, {Word: "sun", Weight: 3}}, first)

	// second identical query is a cache hit and must agree
	second := c.Complete("sun", 5)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.CacheStats()["cacheHits"])

	// inserting a better word under the same prefix must show up
	c.AddWord("sunset", 10)
	third := c.Complete("sun", 5)
	assert.Equal(t, "sunset", third[0].Word)

	// removal invalidates too
	require.True(t, c.Remove("sunset"))
	fourth := c.Complete("sun", 5)
	assert.Equal(t, first, fourth)
}

func TestCachedCompleterLimitChangeMisses(t *testing.T) {
	t.Parallel()

	c := NewCachedCompleter(64)
	c.AddWord("alpha", 1)
	c.AddWord("alps", 2)

	require.Len(t, c.Complete("al", 1), 1)
	assert.Len(t, c.Complete("al", 2), 2, "different limit must bypass the cached entry")
}
