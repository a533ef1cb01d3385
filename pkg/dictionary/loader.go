// Package dictionary reads and writes the persisted (word, weight)
// formats. The index itself holds no persisted state; these files are
// the only externally observable artifacts.
package dictionary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kelsivan/trieserve/pkg/trie"
)

// LoadCSV reads a two-column word,weight file. Words are lowercased,
// blank lines are skipped and a missing or unparsable weight column
// falls back to 0.0. The returned error wraps os.ErrNotExist when the
// file is absent, so callers can report that case distinctly.
func LoadCSV(path string) ([]trie.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var entries []trie.Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return entries, fmt.Errorf("read dictionary %s: %w", path, err)
		}
		if len(record) == 0 {
			continue
		}
		// the empty word is a valid entry; only whole blank lines are
		// skipped, and the csv reader already drops those
		word := strings.ToLower(strings.TrimSpace(record[0]))

		weight := 0.0
		if len(record) > 1 {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
			if err != nil {
				log.Debugf("bad weight %q for word %q, using 0", record[1], word)
			} else {
				weight = parsed
			}
		}
		entries = append(entries, trie.Entry{Word: word, Weight: weight})
	}
	return entries, nil
}

// SaveCSV writes entries as word,weight records, overwriting any prior
// content at path.
func SaveCSV(path string, entries []trie.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dictionary %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, e := range entries {
		record := []string{e.Word, strconv.FormatFloat(e.Weight, 'g', -1, 64)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write dictionary %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush dictionary %s: %w", path, err)
	}
	return nil
}
