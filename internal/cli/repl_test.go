package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsivan/trieserve/pkg/suggest"
)

// runScript feeds newline-separated commands through a fresh Repl and
// returns everything written to its output stream.
func runScript(t *testing.T, commands ...string) string {
	t.Helper()

	var out bytes.Buffer
	r := NewRepl(suggest.NewCompleter(), strings.NewReader(strings.Join(commands, "\n")+"\n"), &out, 256)
	require.NoError(t, r.Run())
	return out.String()
}

func TestReplInsertContainsRemove(t *testing.T) {
	t.Parallel()

	got := runScript(t,
		"insert cat 5.0",
		"contains cat",
		"contains dog",
		"remove cat",
		"remove cat",
		"contains cat",
		"quit",
	)
	assert.Equal(t, "YES\nNO\nOK\nMISS\nNO\n", got)
}

func TestReplComplete(t *testing.T) {
	t.Parallel()

	got := runScript(t,
		"insert cat 5.0",
		"insert car 5.0",
		"insert cart 3.0",
		"complete ca 2",
		"complete z 5",
		"complete ca 0",
		"quit",
	)
	assert.Equal(t, "car,cat\n\n\n", got)
}

func TestReplStats(t *testing.T) {
	t.Parallel()

	got := runScript(t,
		"insert a 1",
		"insert ab 1",
		"insert abc 1",
		"stats",
		"remove abc",
		"stats",
		"quit",
	)
	assert.Equal(t, "words=3 height=3 nodes=4\nOK\nwords=2 height=2 nodes=3\n", got)
}

func TestReplLowercasesInput(t *testing.T) {
	t.Parallel()

	got := runScript(t,
		"insert Apple 2",
		"contains APPLE",
		"complete AP 5",
		"quit",
	)
	assert.Equal(t, "YES\napple\n", got)
}

func TestReplIgnoresMalformedCommands(t *testing.T) {
	t.Parallel()

	got := runScript(t,
		"bogus",
		"insert onlyword",
		"insert word not-a-number",
		"complete ca",
		"complete ca two",
		"remove",
		"stats extra",
		"contains x",
		"quit",
	)
	assert.Equal(t, "NO\n", got, "malformed lines produce no output at all")
}

func TestReplQuitStopsProcessing(t *testing.T) {
	t.Parallel()

	got := runScript(t,
		"insert cat 1",
		"quit",
		"contains cat",
	)
	assert.Empty(t, got)
}

func TestReplEOFEndsLoop(t *testing.T) {
	t.Parallel()

	got := runScript(t, "insert dog 1", "contains dog")
	assert.Equal(t, "YES\n", got)
}

func TestReplLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.csv")
	dst := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(src, []byte("cat,5\ncar,4\n"), 0o644))

	got := runScript(t,
		"insert stale 9",
		fmt.Sprintf("load %s", src),
		"contains stale",
		"contains cat",
		fmt.Sprintf("save %s", dst),
		"quit",
	)
	assert.Equal(t, "NO\nYES\n", got, "load replaces prior contents")

	saved, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "car,4\ncat,5\n", string(saved))
}

// panickyCompleter blows up on Contains to simulate a handler failure.
type panickyCompleter struct {
	suggest.ICompleter
}

func (panickyCompleter) Contains(string) bool { panic("engine failure") }

func TestReplSurvivesPanicInDispatch(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := strings.NewReader("contains boom\nstats\nquit\n")
	r := NewRepl(panickyCompleter{suggest.NewCompleter()}, in, &out, 256)
	require.NoError(t, r.Run())
	assert.Equal(t, "words=0 height=0 nodes=1\n", out.String(),
		"loop must keep serving commands after a handler panic")
}

func TestReplHandlesVeryLongLines(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 100_000)
	got := runScript(t,
		"insert "+long+" 1",
		"contains "+long,
		"quit",
	)
	assert.Equal(t, "YES\n", got)
}

func TestReplLoadMissingFileKeepsState(t *testing.T) {
	t.Parallel()

	got := runScript(t,
		"insert keep 1",
		"load /no/such/file.csv",
		"contains keep",
		"quit",
	)
	assert.Equal(t, "YES\n", got, "failed load must not clear the index")
}
