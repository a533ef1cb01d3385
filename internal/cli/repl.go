// Package cli implements the line-oriented command surface over a
// completion engine.
//
// Commands: load <path>, save <path>, insert <word> <freq>,
// remove <word>, contains <word>, complete <prefix> <k>, stats, quit.
// Malformed commands are ignored without comment; only a missing file
// on load is reported. Words are lowercased at this boundary, the engine
// below treats symbols literally.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kelsivan/trieserve/internal/logger"
	"github.com/kelsivan/trieserve/pkg/dictionary"
	"github.com/kelsivan/trieserve/pkg/suggest"
)

// Repl reads commands line by line from in and writes results to out.
type Repl struct {
	completer suggest.ICompleter
	in        io.Reader
	out       io.Writer
	maxPrefix int
	log       *log.Logger
}

// NewRepl wires a Repl over the given streams. maxPrefix bounds the
// prefix length accepted by complete; longer prefixes yield no results.
func NewRepl(completer suggest.ICompleter, in io.Reader, out io.Writer, maxPrefix int) *Repl {
	return &Repl{
		completer: completer,
		in:        in,
		out:       out,
		maxPrefix: maxPrefix,
		log:       logger.New("repl"),
	}
}

// Run processes commands until quit or end of input. Lines are read
// unbounded; a command longer than any fixed buffer is still a command.
func (r *Repl) Run() error {
	reader := bufio.NewReader(r.in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" && !r.execute(line) {
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// execute dispatches one command line and reports whether the loop
// should keep running. Anything it cannot parse is dropped silently,
// and a handler blowing up must not take the loop with it: bad input
// never ends the session, only quit does.
func (r *Repl) execute(line string) (keep bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Debugf("recovered from command %q: %v", line, rec)
			keep = true
		}
	}()

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	switch cmd := strings.ToLower(parts[0]); {
	case cmd == "quit":
		return false
	case cmd == "load" && len(parts) == 2:
		r.handleLoad(parts[1])
	case cmd == "save" && len(parts) == 2:
		r.handleSave(parts[1])
	case cmd == "insert" && len(parts) == 3:
		r.handleInsert(parts[1], parts[2])
	case cmd == "remove" && len(parts) == 2:
		r.handleRemove(parts[1])
	case cmd == "contains" && len(parts) == 2:
		r.handleContains(parts[1])
	case cmd == "complete" && len(parts) == 3:
		r.handleComplete(parts[1], parts[2])
	case cmd == "stats" && len(parts) == 1:
		r.handleStats()
	default:
		r.log.Debugf("ignoring command: %q", line)
	}
	return true
}

// handleLoad replaces the index contents with the file's entries. A
// missing file is the one load failure worth surfacing.
func (r *Repl) handleLoad(path string) {
	entries, err := dictionary.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.log.Errorf("File not found: %s", path)
		} else {
			r.log.Debugf("load %s: %v", path, err)
		}
		return
	}
	r.completer.Reset()
	for _, e := range entries {
		r.completer.AddWord(e.Word, e.Weight)
	}
	r.log.Debugf("loaded %d entries from %s", len(entries), path)
}

func (r *Repl) handleSave(path string) {
	if err := dictionary.Save(path, r.completer.Items()); err != nil {
		r.log.Debugf("save %s: %v", path, err)
	}
}

func (r *Repl) handleInsert(word, rawWeight string) {
	weight, err := strconv.ParseFloat(rawWeight, 64)
	if err != nil {
		r.log.Debugf("bad weight %q: %v", rawWeight, err)
		return
	}
	r.completer.AddWord(strings.ToLower(word), weight)
}

func (r *Repl) handleRemove(word string) {
	if r.completer.Remove(strings.ToLower(word)) {
		fmt.Fprintln(r.out, "OK")
	} else {
		fmt.Fprintln(r.out, "MISS")
	}
}

func (r *Repl) handleContains(word string) {
	if r.completer.Contains(strings.ToLower(word)) {
		fmt.Fprintln(r.out, "YES")
	} else {
		fmt.Fprintln(r.out, "NO")
	}
}

func (r *Repl) handleComplete(prefix, rawK string) {
	k, err := strconv.Atoi(rawK)
	if err != nil {
		r.log.Debugf("bad k %q: %v", rawK, err)
		return
	}
	if r.maxPrefix > 0 && len(prefix) > r.maxPrefix {
		r.log.Debugf("prefix longer than %d symbols", r.maxPrefix)
		fmt.Fprintln(r.out)
		return
	}

	suggestions := r.completer.Complete(strings.ToLower(prefix), k)
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = s.Word
	}
	fmt.Fprintln(r.out, strings.Join(words, ","))
}

func (r *Repl) handleStats() {
	words, height, nodes := r.completer.Stats()
	fmt.Fprintf(r.out, "words=%d height=%d nodes=%d\n", words, height, nodes)
}
