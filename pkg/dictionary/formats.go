package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kelsivan/trieserve/pkg/trie"
)

// FileFormat identifies a dictionary file encoding.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatCSV                // word,weight text records
	FormatBinary             // msgpack snapshot
)

const snapshotVersion = 1

// snapshot is the on-disk shape of the binary format.
type snapshot struct {
	Version int             `msgpack:"v"`
	Entries []snapshotEntry `msgpack:"e"`
}

type snapshotEntry struct {
	Word   string  `msgpack:"w"`
	Weight float64 `msgpack:"f"`
}

// DetectFormat picks a format from the file extension. Anything that is
// not a known binary extension is treated as CSV, matching how plain
// word lists usually arrive.
func DetectFormat(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin", ".msgpack":
		return FormatBinary
	default:
		return FormatCSV
	}
}

// Load reads entries from path, choosing the decoder by extension.
func Load(path string) ([]trie.Entry, error) {
	if DetectFormat(path) == FormatBinary {
		return loadBinary(path)
	}
	return LoadCSV(path)
}

// Save writes entries to path, choosing the encoder by extension. The
// target is overwritten wholesale.
func Save(path string, entries []trie.Entry) error {
	if DetectFormat(path) == FormatBinary {
		return saveBinary(path, entries)
	}
	return SaveCSV(path, entries)
}

func loadBinary(path string) ([]trie.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode dictionary %s: %w", path, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("dictionary %s: unsupported snapshot version %d", path, snap.Version)
	}
	entries := make([]trie.Entry, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		entries = append(entries, trie.Entry{Word: strings.ToLower(e.Word), Weight: e.Weight})
	}
	return entries, nil
}

func saveBinary(path string, entries []trie.Entry) error {
	snap := snapshot{Version: snapshotVersion}
	snap.Entries = make([]snapshotEntry, 0, len(entries))
	for _, e := range entries {
		snap.Entries = append(snap.Entries, snapshotEntry{Word: e.Word, Weight: e.Weight})
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dictionary %s: %w", path, err)
	}
	return nil
}
